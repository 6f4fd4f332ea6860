package destination

import (
	"bufio"
	"io"
	"os"
)

// StdoutName is the name of the standard output destination
const StdoutName = "stdout"

// Console writes lines to an io.Writer, by default standard output
type Console struct {
	name   string
	out    io.Writer
	w      *bufio.Writer
	closed bool
}

// NewConsole creates a console destination. A nil writer means os.Stdout.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{
		name: StdoutName,
		out:  w,
		w:    bufio.NewWriterSize(w, 4096),
	}
}

// Name returns "stdout"
func (c *Console) Name() string {
	return c.name
}

// Write buffers p. On failure the buffered data is dropped so the next
// write starts clean.
func (c *Console) Write(p []byte) (int, error) {
	if c.closed {
		return 0, os.ErrClosed
	}
	n, err := c.w.Write(p)
	if err != nil {
		c.w.Reset(c.out)
	}
	return n, err
}

// Flush writes buffered data to the underlying writer. A failed flush
// drops the buffered data.
func (c *Console) Flush() error {
	if c.closed {
		return nil
	}
	err := c.w.Flush()
	if err != nil {
		c.w.Reset(c.out)
	}
	return err
}

// Close flushes the destination. The underlying writer stays open.
func (c *Console) Close() error {
	if c.closed {
		return nil
	}
	err := c.w.Flush()
	c.closed = true
	return err
}
