// Package formatter renders log records into text lines.
//
// The only built-in formatter, LineFormatter, produces one line per record:
//
//	2026/10/19 14:03:22.1234 devbox:                  git[48121]:  WARNING: fetch failed
//
// Date and time use the local wall clock with a four digit fraction. The
// domain and level columns are right-aligned to fixed widths so that
// messages from different subsystems line up; values wider than the column
// are written in full. The message is passed through untouched and a
// single newline is appended.
//
// LineFormatter implements BufferFormatter. Callers format into a pooled
// bytes.Buffer from GetBuffer, and the formatter relies on Append-style
// functions (time.AppendFormat, strconv.AppendInt) to avoid per-call
// allocations. PutBuffer drops buffers larger than 64 KiB.
package formatter
