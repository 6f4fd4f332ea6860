package destination

import "io"

// Destination is an open sink for formatted log lines
type Destination interface {
	io.Writer

	// Name identifies the destination, e.g. a file path or "stdout"
	Name() string

	// Flush pushes buffered lines to the underlying writer
	Flush() error

	// Close flushes and releases the destination
	Close() error
}
