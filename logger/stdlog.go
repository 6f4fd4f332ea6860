package logger

import (
	"strings"

	"github.com/philipp01105/idelog/core"
)

// StdWriter is an io.Writer for the standard library log package. Each
// Write becomes one record with the trailing newline removed.
type StdWriter struct {
	svc    *Service
	domain string
	level  core.Level
}

// NewStdWriter creates a writer emitting at level under domain
func NewStdWriter(svc *Service, domain string, level core.Level) *StdWriter {
	return &StdWriter{svc: svc, domain: domain, level: level}
}

// Write emits p and always reports success
func (w *StdWriter) Write(p []byte) (int, error) {
	w.svc.Emit(w.domain, w.level, strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
