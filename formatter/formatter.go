package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/idelog/core"
)

// BufferFormatter formats records directly into a caller-provided buffer,
// usually one taken from GetBuffer.
type BufferFormatter interface {
	// FormatEntry formats a log record into the given buffer.
	FormatEntry(record *core.Record, buf *bytes.Buffer)
}

// Config holds formatter configuration
type Config struct {
	// Hostname is written after the timestamp (default: "localhost")
	Hostname string
	// TimestampFormat specifies the time layout (default: "2006/01/02 15:04:05.0000")
	TimestampFormat string
	// DomainWidth is the minimum width of the right-aligned domain column (default: 20)
	DomainWidth int
	// LevelWidth is the minimum width of the right-aligned level column (default: 8)
	LevelWidth int
}

const (
	// DefaultTimestampFormat is the local date, time and four digit fraction
	DefaultTimestampFormat = "2006/01/02 15:04:05.0000"
	// DefaultDomainWidth is the default domain column width
	DefaultDomainWidth = 20
	// DefaultLevelWidth fits the longest level name, CRITICAL
	DefaultLevelWidth = 8
)

var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer returns an empty buffer from the shared pool.
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to the shared pool.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
