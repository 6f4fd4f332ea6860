package logger

import "github.com/philipp01105/idelog/core"

// Domain is a Service bound to one domain name, the short string that
// identifies the emitting subsystem ("git", "buildsystem", "lsp", ...).
type Domain struct {
	svc  *Service
	name string
}

// Domain returns a logger that tags every record with name
func (s *Service) Domain(name string) *Domain {
	return &Domain{svc: s, name: name}
}

// Name returns the domain name
func (d *Domain) Name() string {
	return d.name
}

// Enabled reports whether records at level would be written
func (d *Domain) Enabled(level core.Level) bool {
	return d.svc.Enabled(level)
}

// Log logs a message at the specified level
func (d *Domain) Log(level core.Level, msg string) {
	d.svc.Emit(d.name, level, msg)
}

// Logf logs a formatted message at the specified level
func (d *Domain) Logf(level core.Level, format string, args ...interface{}) {
	d.svc.Emitf(d.name, level, format, args...)
}

// Error logs an error message
func (d *Domain) Error(msg string) {
	d.svc.Emit(d.name, core.ErrorLevel, msg)
}

// Critical logs a critical message
func (d *Domain) Critical(msg string) {
	d.svc.Emit(d.name, core.CriticalLevel, msg)
}

// Warning logs a warning message
func (d *Domain) Warning(msg string) {
	d.svc.Emit(d.name, core.WarningLevel, msg)
}

// Message logs a message at MESSAGE level
func (d *Domain) Message(msg string) {
	d.svc.Emit(d.name, core.MessageLevel, msg)
}

// Info logs an info message
func (d *Domain) Info(msg string) {
	d.svc.Emit(d.name, core.InfoLevel, msg)
}

// Debug logs a debug message
func (d *Domain) Debug(msg string) {
	d.svc.Emit(d.name, core.DebugLevel, msg)
}

// Trace logs a trace message
func (d *Domain) Trace(msg string) {
	d.svc.Emit(d.name, core.TraceLevel, msg)
}

// Errorf logs a formatted error message
func (d *Domain) Errorf(format string, args ...interface{}) {
	d.svc.Emitf(d.name, core.ErrorLevel, format, args...)
}

// Criticalf logs a formatted critical message
func (d *Domain) Criticalf(format string, args ...interface{}) {
	d.svc.Emitf(d.name, core.CriticalLevel, format, args...)
}

// Warningf logs a formatted warning message
func (d *Domain) Warningf(format string, args ...interface{}) {
	d.svc.Emitf(d.name, core.WarningLevel, format, args...)
}

// Messagef logs a formatted message at MESSAGE level
func (d *Domain) Messagef(format string, args ...interface{}) {
	d.svc.Emitf(d.name, core.MessageLevel, format, args...)
}

// Infof logs a formatted info message
func (d *Domain) Infof(format string, args ...interface{}) {
	d.svc.Emitf(d.name, core.InfoLevel, format, args...)
}

// Debugf logs a formatted debug message
func (d *Domain) Debugf(format string, args ...interface{}) {
	d.svc.Emitf(d.name, core.DebugLevel, format, args...)
}

// Tracef logs a formatted trace message
func (d *Domain) Tracef(format string, args ...interface{}) {
	d.svc.Emitf(d.name, core.TraceLevel, format, args...)
}

// Enter logs "ENTRY: fn():line" at TRACE level for the calling function
// and returns a func that logs the matching "EXIT: fn()". Typical use:
//
//	defer log.Enter()()
func (d *Domain) Enter() func() {
	if !d.svc.Enabled(core.TraceLevel) {
		return func() {}
	}
	caller := core.GetCaller(2)
	fn := caller.ShortFunction()
	d.Tracef("ENTRY: %s():%d", fn, caller.Line)
	return func() {
		d.Tracef("EXIT: %s()", fn)
	}
}
