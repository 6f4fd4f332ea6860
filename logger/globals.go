package logger

import (
	"io"
	"log"
	"log/slog"

	"go.uber.org/zap"

	"github.com/philipp01105/idelog/core"
)

// globalState is what the process used for logging before Init. Only one
// level is kept: Shutdown restores it, nothing more.
type globalState struct {
	slogDefault *slog.Logger
	undoZap     func()
	logWriter   io.Writer
	logFlags    int
	logPrefix   string
}

// installGlobals routes log/slog, zap's global loggers and the log
// package to s, returning what was there before.
func installGlobals(s *Service) *globalState {
	prev := &globalState{
		slogDefault: slog.Default(),
		logWriter:   log.Writer(),
		logFlags:    log.Flags(),
		logPrefix:   log.Prefix(),
	}

	slog.SetDefault(slog.New(NewSlogHandler(s, "slog")))
	prev.undoZap = zap.ReplaceGlobals(zap.New(NewZapCore(s, "zap")))

	// slog.SetDefault redirects the log package too; point it straight at
	// the service so messages are not routed through slog twice.
	log.SetOutput(NewStdWriter(s, "log", core.MessageLevel))
	log.SetFlags(0)
	log.SetPrefix("")

	return prev
}

func (g *globalState) restore() {
	g.undoZap()
	slog.SetDefault(g.slogDefault)
	log.SetOutput(g.logWriter)
	log.SetFlags(g.logFlags)
	log.SetPrefix(g.logPrefix)
}
