package formatter

import (
	"bytes"
	"strconv"

	"github.com/philipp01105/idelog/core"
)

// LineFormatter formats log records as single text lines
type LineFormatter struct {
	Config
}

var _ BufferFormatter = (*LineFormatter)(nil)

// NewLineFormatter creates a new line formatter
func NewLineFormatter(cfg Config) *LineFormatter {
	if cfg.Hostname == "" {
		cfg.Hostname = "localhost"
	}
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	if cfg.DomainWidth <= 0 {
		cfg.DomainWidth = DefaultDomainWidth
	}
	if cfg.LevelWidth <= 0 {
		cfg.LevelWidth = DefaultLevelWidth
	}
	return &LineFormatter{Config: cfg}
}

// FormatEntry writes the formatted record into the given buffer
func (f *LineFormatter) FormatEntry(record *core.Record, buf *bytes.Buffer) {
	buf.Write(record.Time.Local().AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte(' ')
	buf.WriteString(f.Hostname)
	buf.WriteString(": ")

	writePadded(buf, record.Domain, f.DomainWidth)
	buf.WriteByte('[')
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), record.ThreadID, 10))
	buf.WriteString("]: ")

	writePadded(buf, record.Level.String(), f.LevelWidth)
	buf.WriteString(": ")

	buf.WriteString(record.Message)
	buf.WriteByte('\n')
}

// writePadded right-aligns s in a column of the given width
func writePadded(buf *bytes.Buffer, s string, width int) {
	for i := len(s); i < width; i++ {
		buf.WriteByte(' ')
	}
	buf.WriteString(s)
}
