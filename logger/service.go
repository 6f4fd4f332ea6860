package logger

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/idelog/core"
	"github.com/philipp01105/idelog/destination"
	"github.com/philipp01105/idelog/formatter"
)

const (
	stateUninitialized int32 = iota
	stateInitialized
	stateShutdown
)

// Service is the process-wide diagnostics sink. Create one with
// NewService, configure it once with Init, and hand the pointer to
// every component that needs to log.
type Service struct {
	initOnce     sync.Once
	shutdownOnce sync.Once
	state        atomic.Int32
	active       atomic.Bool // initialized with at least one destination
	verbosity    atomic.Int32

	// mu serializes writes to dests; formatting happens outside it
	mu    sync.Mutex
	dests *destination.Set

	formatter   formatter.BufferFormatter
	hostname    string
	domainWidth int
	stdout      io.Writer
	stats       *destination.Stats

	installGlobals bool
	prev           *globalState
}

// NewService creates an uninitialized service. Emit is a no-op until Init
// has been called.
func NewService(opts ...Option) *Service {
	s := &Service{
		stats:          destination.NewStats(),
		installGlobals: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init opens the destinations: the file at filePath first when the path is
// not empty, then standard output when writeStdout is set. Only the first
// call has any effect; concurrent callers wait for it to finish.
//
// A file that cannot be opened is left out of the set and counted in
// Stats().OpenFailures.
func (s *Service) Init(writeStdout bool, filePath string) {
	s.initOnce.Do(func() {
		set := destination.NewSet(s.stats)
		if filePath != "" {
			f, err := destination.NewFile(filePath)
			if err != nil {
				s.stats.IncrementOpenFailures()
			} else {
				set.Add(f)
			}
		}
		if writeStdout {
			set.Add(destination.NewConsole(s.stdout))
		}

		if s.hostname == "" {
			s.hostname = lookupHostname()
		}
		s.formatter = formatter.NewLineFormatter(formatter.Config{
			Hostname:    s.hostname,
			DomainWidth: s.domainWidth,
		})

		s.mu.Lock()
		s.dests = set
		s.mu.Unlock()

		if s.installGlobals {
			s.prev = installGlobals(s)
		}

		s.state.Store(stateInitialized)
		s.active.Store(set.Len() > 0)
	})
}

// Shutdown restores the global handlers that were in place before Init,
// then flushes and closes every destination. Later calls do nothing and
// return nil. Emit is a no-op afterwards, and so is Init.
func (s *Service) Shutdown() error {
	// Wait for an Init in progress and keep later ones from running.
	s.initOnce.Do(func() {})

	var err error
	s.shutdownOnce.Do(func() {
		s.active.Store(false)
		if s.state.Swap(stateShutdown) != stateInitialized {
			return
		}

		if s.prev != nil {
			s.prev.restore()
			s.prev = nil
		}

		s.mu.Lock()
		err = s.dests.Close()
		s.dests = nil
		s.mu.Unlock()
	})
	return err
}

// Emit writes message to every destination if level passes the verbosity
// filter. It never fails: write errors are counted in Stats().WriteErrors.
func (s *Service) Emit(domain string, level core.Level, message string) {
	if !s.active.Load() {
		return
	}
	if !ShouldLog(level, s.Verbosity()) {
		s.stats.IncrementFiltered()
		return
	}
	s.dispatch(domain, level, message)
}

// Emitf is Emit with fmt.Sprintf formatting. Arguments are only formatted
// when the record will be written.
func (s *Service) Emitf(domain string, level core.Level, format string, args ...interface{}) {
	if !s.active.Load() {
		return
	}
	if !ShouldLog(level, s.Verbosity()) {
		s.stats.IncrementFiltered()
		return
	}
	s.dispatch(domain, level, fmt.Sprintf(format, args...))
}

func (s *Service) dispatch(domain string, level core.Level, message string) {
	record := core.GetRecord()
	record.Domain = domain
	record.Level = level
	record.Message = message

	buf := formatter.GetBuffer()
	s.formatter.FormatEntry(record, buf)
	core.PutRecord(record)

	s.mu.Lock()
	if s.dests != nil {
		s.dests.WriteAll(buf.Bytes())
	}
	s.mu.Unlock()

	formatter.PutBuffer(buf)
}

// Enabled reports whether Emit would write a record at level right now.
func (s *Service) Enabled(level core.Level) bool {
	return s.active.Load() && ShouldLog(level, s.Verbosity())
}

// IncreaseVerbosity reveals one more level below WARNING. It is usually
// called once per -v on the command line.
func (s *Service) IncreaseVerbosity() {
	for {
		v := s.verbosity.Load()
		if v == math.MaxInt32 {
			return
		}
		if s.verbosity.CompareAndSwap(v, v+1) {
			return
		}
	}
}

// Verbosity returns the current verbosity counter
func (s *Service) Verbosity() int {
	return int(s.verbosity.Load())
}

// Hostname returns the hostname captured by Init
func (s *Service) Hostname() string {
	if s.state.Load() == stateUninitialized {
		return ""
	}
	return s.hostname
}

// Destinations returns the names of the open destinations in write order
func (s *Service) Destinations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dests == nil {
		return nil
	}
	return s.dests.Names()
}

// Stats returns a snapshot of the current statistics
func (s *Service) Stats() destination.Snapshot {
	return s.stats.GetSnapshot()
}

func lookupHostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "unknownhost"
	}
	return name
}
