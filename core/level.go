package core

import "strings"

// Level represents the severity level of a log record
type Level int8

const (
	// ErrorLevel for unrecoverable failures
	ErrorLevel Level = iota
	// CriticalLevel for failures the application can survive
	CriticalLevel
	// WarningLevel for unexpected but handled conditions
	WarningLevel
	// MessageLevel for ordinary user-facing messages
	MessageLevel
	// InfoLevel for general informational messages
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// TraceLevel for function entry/exit tracing
	TraceLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	case WarningLevel:
		return "WARNING"
	case MessageLevel:
		return "MESSAGE"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// MinVerbosity returns the verbosity counter needed for l to be shown.
// Unknown levels need none.
func (l Level) MinVerbosity() int {
	switch l {
	case MessageLevel:
		return 1
	case InfoLevel:
		return 2
	case DebugLevel:
		return 3
	case TraceLevel:
		return 4
	default:
		return 0
	}
}

// ParseLevel converts a level name to a Level. It accepts the names
// returned by String in any case, plus WARN.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return ErrorLevel, true
	case "CRITICAL":
		return CriticalLevel, true
	case "WARNING", "WARN":
		return WarningLevel, true
	case "MESSAGE":
		return MessageLevel, true
	case "INFO":
		return InfoLevel, true
	case "DEBUG":
		return DebugLevel, true
	case "TRACE":
		return TraceLevel, true
	default:
		return MessageLevel, false
	}
}
