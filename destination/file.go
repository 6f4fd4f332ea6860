package destination

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// File appends lines to a file on disk
type File struct {
	path string
	file *os.File
	w    *bufio.Writer
}

// NewFile opens path for appending, creating the file and its parent
// directory if they don't exist.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("log file path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, "create log directory for %s", path)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", path)
	}

	return &File{
		path: path,
		file: file,
		w:    bufio.NewWriterSize(file, 32*1024),
	}, nil
}

// Name returns the file path
func (f *File) Name() string {
	return f.path
}

// Write buffers p
func (f *File) Write(p []byte) (int, error) {
	if f.file == nil {
		return 0, os.ErrClosed
	}
	n, err := f.w.Write(p)
	if err != nil {
		// bufio keeps the first error forever; start over with an empty buffer
		f.w.Reset(f.file)
	}
	return n, err
}

// Flush writes buffered data to the file. Data that could not be written
// is dropped.
func (f *File) Flush() error {
	if f.file == nil {
		return nil
	}
	err := f.w.Flush()
	if err != nil {
		f.w.Reset(f.file)
	}
	return err
}

// Close flushes and closes the file
func (f *File) Close() error {
	if f.file == nil {
		return nil
	}
	err := multierr.Combine(
		errors.Wrapf(f.w.Flush(), "flush %s", f.path),
		errors.Wrapf(f.file.Close(), "close %s", f.path),
	)
	f.file = nil
	return err
}
