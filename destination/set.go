package destination

import "go.uber.org/multierr"

// Set is an insertion-ordered collection of destinations
type Set struct {
	dests []Destination
	stats *Stats
}

// NewSet creates an empty set that records write results in stats.
// A nil stats gets a private instance.
func NewSet(stats *Stats) *Set {
	if stats == nil {
		stats = NewStats()
	}
	return &Set{stats: stats}
}

// Add appends d to the set
func (s *Set) Add(d Destination) {
	if d == nil {
		return
	}
	s.dests = append(s.dests, d)
}

// Len returns the number of destinations
func (s *Set) Len() int {
	return len(s.dests)
}

// Names returns the destination names in write order
func (s *Set) Names() []string {
	names := make([]string, len(s.dests))
	for i, d := range s.dests {
		names[i] = d.Name()
	}
	return names
}

// WriteAll writes line to every destination in order, flushing each one
// before moving to the next. Failures are counted, not returned. The line
// counts as written when at least one destination accepted it.
func (s *Set) WriteAll(line []byte) {
	delivered := false
	for _, d := range s.dests {
		_, err := d.Write(line)
		if err == nil {
			err = d.Flush()
		}
		if err != nil {
			s.stats.IncrementWriteErrors()
			continue
		}
		delivered = true
	}
	if delivered {
		s.stats.IncrementWritten()
	}
}

// Close closes every destination and empties the set
func (s *Set) Close() error {
	var err error
	for _, d := range s.dests {
		err = multierr.Append(err, d.Close())
	}
	s.dests = nil
	return err
}
