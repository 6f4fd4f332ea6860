package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/idelog/core"
	"github.com/philipp01105/idelog/formatter"
)

func ExampleNewLineFormatter() {
	f := formatter.NewLineFormatter(formatter.Config{Hostname: "devbox"})
	record := &core.Record{
		Time:     time.Date(2026, 1, 15, 12, 0, 0, 0, time.Local),
		Level:    core.MessageLevel,
		Domain:   "buildsystem",
		Message:  "build finished",
		ThreadID: 7,
	}
	buf := formatter.GetBuffer()
	defer formatter.PutBuffer(buf)
	f.FormatEntry(record, buf)
	fmt.Print(buf.String())
	// Output:
	// 2026/01/15 12:00:00.0000 devbox:          buildsystem[7]:  MESSAGE: build finished
}
