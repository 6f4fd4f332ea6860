//go:build !linux

package core

import (
	"bytes"
	"runtime"
	"strconv"
)

// ThreadID returns the id of the calling goroutine. Platforms without a
// cheap kernel thread id get this stable per-goroutine identifier instead.
func ThreadID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// "goroutine 18 [running]:"
	b := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
