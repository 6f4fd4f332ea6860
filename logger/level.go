package logger

import "github.com/philipp01105/idelog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
	WarningLevel  = core.WarningLevel
	MessageLevel  = core.MessageLevel
	InfoLevel     = core.InfoLevel
	DebugLevel    = core.DebugLevel
	TraceLevel    = core.TraceLevel
)
