package logger

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

var linePattern = regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\.\d{4} \S+: +\S+\[\d+\]: +[A-Z]+: .*$`)

// newConsoleService returns an initialized service writing to a buffer,
// without touching the process-wide handlers.
func newConsoleService(t *testing.T, opts ...Option) (*Service, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	opts = append([]Option{
		WithStdout(&buf),
		WithHostname("testhost"),
		WithoutGlobalHandlers(),
	}, opts...)
	svc := NewService(opts...)
	svc.Init(true, "")
	t.Cleanup(func() { _ = svc.Shutdown() })
	return svc, &buf
}

// lines splits output into lines without the trailing newlines
func lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
