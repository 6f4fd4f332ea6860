// Package destination provides the sinks that receive formatted log lines.
//
// A Destination is an open writable target with a name, a Flush and a
// Close. Two are built in:
//
//   - Console writes to any io.Writer (default: os.Stdout) and never closes it.
//   - File appends to a file on disk, creating it and its parent
//     directories if needed. Logs are never rotated or truncated.
//
// Both buffer writes with a bufio.Writer; Flush pushes the buffered bytes
// to the operating system.
//
// A Set holds destinations in insertion order and fans a line out to all of
// them. Set is not safe for concurrent use on its own: the caller serializes
// WriteAll and Close, so that one line is written and flushed everywhere
// before the next one starts. Write and flush failures are counted in Stats
// and otherwise ignored, since a failing sink must never take down the
// program that is logging.
package destination
