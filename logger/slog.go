package logger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/philipp01105/idelog/core"
)

// DomainKey is the slog attribute key that selects the record's domain
const DomainKey = "domain"

// SlogHandler is an adapter that implements slog.Handler on top of a
// Service. Attributes are appended to the message as key=value pairs; a
// top-level "domain" string attribute sets the domain instead.
type SlogHandler struct {
	svc    *Service
	domain string
	attrs  string // pre-rendered " key=value" pairs from WithAttrs
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter writing to svc under
// the given default domain.
func NewSlogHandler(svc *Service, domain string) *SlogHandler {
	return &SlogHandler{
		svc:    svc,
		domain: domain,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.svc.Enabled(slogLevelToCore(level))
}

// Handle renders the record and emits it.
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	domain := h.domain

	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(h.attrs)
	record.Attrs(func(a slog.Attr) bool {
		if d, ok := h.domainAttr(a); ok {
			domain = d
			return true
		}
		appendSlogAttr(&b, h.group, a)
		return true
	})

	h.svc.Emit(domain, slogLevelToCore(record.Level), b.String())
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		if d, ok := h.domainAttr(a); ok {
			clone.domain = d
			continue
		}
		appendSlogAttr(&b, h.group, a)
	}
	clone.attrs = b.String()
	return &clone
}

// WithGroup returns a new SlogHandler with the given group name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if h.group != "" {
		clone.group = h.group + "." + name
	} else {
		clone.group = name
	}
	return &clone
}

func (h *SlogHandler) domainAttr(a slog.Attr) (string, bool) {
	if h.group != "" || a.Key != DomainKey {
		return "", false
	}
	v := a.Value.Resolve()
	if v.Kind() != slog.KindString {
		return "", false
	}
	return v.String(), true
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level > slog.LevelError:
		return core.ErrorLevel
	case level == slog.LevelError:
		return core.CriticalLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level > slog.LevelInfo:
		return core.MessageLevel
	case level == slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendSlogAttr writes a as " key=value", flattening groups into dotted keys.
func appendSlogAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendSlogAttr(b, key, ga)
		}
		return
	}
	appendKV(b, key, a.Value.String())
}
