package core

import (
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Record represents a single log event
type Record struct {
	Time     time.Time
	Level    Level
	Domain   string
	Message  string
	ThreadID int64
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool, stamped with the current
// time and the calling thread.
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Now()
	r.ThreadID = ThreadID()
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	*r = Record{}
	recordPool.Put(r)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}

// ShortFunction strips the package path from a fully qualified function
// name: "github.com/a/b/pkg.(*T).Method" becomes "(*T).Method".
func (c CallerInfo) ShortFunction() string {
	name := c.Function
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}
