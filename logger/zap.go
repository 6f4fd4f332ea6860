package logger

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/idelog/core"
)

// ZapCore is a zapcore.Core that writes through a Service. The zap logger
// name becomes the domain; fields are appended to the message as sorted
// key=value pairs.
type ZapCore struct {
	svc    *Service
	domain string
	fields []zapcore.Field
}

// NewZapCore creates a core writing to svc. Entries from unnamed loggers
// use domain.
func NewZapCore(svc *Service, domain string) *ZapCore {
	return &ZapCore{svc: svc, domain: domain}
}

// Enabled reports whether entries at level would be written
func (c *ZapCore) Enabled(level zapcore.Level) bool {
	return c.svc.Enabled(zapLevelToCore(level))
}

// With returns a core that adds fields to every entry
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &ZapCore{svc: c.svc, domain: c.domain, fields: merged}
}

// Check adds c to ce when the entry's level is enabled
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write emits the entry
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	domain := ent.LoggerName
	if domain == "" {
		domain = c.domain
	}

	msg := ent.Message
	if len(c.fields)+len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range c.fields {
			f.AddTo(enc)
		}
		for _, f := range fields {
			f.AddTo(enc)
		}
		msg = appendZapFields(msg, enc.Fields)
	}

	c.svc.Emit(domain, zapLevelToCore(ent.Level), msg)
	return nil
}

// Sync is a no-op: every emitted line is already flushed
func (c *ZapCore) Sync() error {
	return nil
}

func appendZapFields(msg string, fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(msg)
	for _, k := range keys {
		appendKV(&b, k, fmt.Sprint(fields[k]))
	}
	return b.String()
}

// zapLevelToCore converts a zapcore.Level to a core.Level
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.DPanicLevel:
		return core.ErrorLevel
	case level == zapcore.ErrorLevel:
		return core.CriticalLevel
	case level == zapcore.WarnLevel:
		return core.WarningLevel
	case level == zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
