//go:build linux

package core

import "golang.org/x/sys/unix"

// ThreadID returns the kernel thread id of the OS thread currently running
// the caller.
func ThreadID() int64 {
	return int64(unix.Gettid())
}
