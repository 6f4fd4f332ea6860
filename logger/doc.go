// Package logger is the public API of idelog: the process-wide
// diagnostics service every other part of the IDE writes to.
//
// A Service is created explicitly and passed by reference to the
// components that log:
//
//	svc := logger.NewService()
//	svc.Init(true, "/tmp/ide.log")
//	defer svc.Shutdown()
//
//	git := svc.Domain("git")
//	git.Warningf("fetch of %s failed: %v", remote, err)
//
// Init opens the destinations (file first, then standard output) exactly
// once; later calls are ignored. Emit filters on the verbosity counter,
// formats the line outside any lock, then writes and flushes it to every
// destination under a single mutex, so lines from concurrent goroutines
// never interleave.
//
// ERROR, CRITICAL and WARNING are always written. Each IncreaseVerbosity
// call reveals one more level: MESSAGE at 1, INFO at 2, DEBUG at 3 and
// TRACE at 4.
//
// Logging never fails. A log file that cannot be opened is skipped, and
// write errors are counted in Stats instead of being returned.
//
// Unless WithoutGlobalHandlers is given, Init also makes the service the
// default for log/slog, zap's global loggers and the standard log package.
// Shutdown puts the previous ones back.
package logger
