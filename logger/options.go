package logger

import "io"

// Option configures a Service
type Option func(*Service)

// WithStdout replaces standard output as the writer behind the console
// destination.
func WithStdout(w io.Writer) Option {
	return func(s *Service) {
		s.stdout = w
	}
}

// WithHostname fixes the hostname written on each line instead of asking
// the operating system.
func WithHostname(name string) Option {
	return func(s *Service) {
		s.hostname = name
	}
}

// WithDomainWidth sets the width of the domain column
func WithDomainWidth(n int) Option {
	return func(s *Service) {
		s.domainWidth = n
	}
}

// WithoutGlobalHandlers keeps Init from installing the service as the
// log/slog, zap and log package default.
func WithoutGlobalHandlers() Option {
	return func(s *Service) {
		s.installGlobals = false
	}
}
