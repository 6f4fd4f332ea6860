package logger

import "github.com/philipp01105/idelog/core"

// ShouldLog reports whether a record at level is visible with the given
// verbosity counter. ERROR, CRITICAL and WARNING are always visible, as
// are levels this package doesn't know about.
func ShouldLog(level core.Level, counter int) bool {
	return counter >= level.MinVerbosity()
}
