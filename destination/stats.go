package destination

import "sync/atomic"

// Stats tracks fan-out statistics
type Stats struct {
	// Written counts lines accepted by at least one destination
	Written uint64
	// Filtered counts records rejected by the verbosity filter
	Filtered uint64
	// WriteErrors counts failed writes or flushes, one per destination
	WriteErrors uint64
	// OpenFailures counts destinations that could not be opened
	OpenFailures uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten atomically increments the written counter
func (s *Stats) IncrementWritten() {
	atomic.AddUint64(&s.Written, 1)
}

// IncrementFiltered atomically increments the filtered counter
func (s *Stats) IncrementFiltered() {
	atomic.AddUint64(&s.Filtered, 1)
}

// IncrementWriteErrors atomically increments the write error counter
func (s *Stats) IncrementWriteErrors() {
	atomic.AddUint64(&s.WriteErrors, 1)
}

// IncrementOpenFailures atomically increments the open failure counter
func (s *Stats) IncrementOpenFailures() {
	atomic.AddUint64(&s.OpenFailures, 1)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Written      uint64
	Filtered     uint64
	WriteErrors  uint64
	OpenFailures uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Written:      atomic.LoadUint64(&s.Written),
		Filtered:     atomic.LoadUint64(&s.Filtered),
		WriteErrors:  atomic.LoadUint64(&s.WriteErrors),
		OpenFailures: atomic.LoadUint64(&s.OpenFailures),
	}
}
