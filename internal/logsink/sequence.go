package logsink

import (
	"strconv"
	"sync/atomic"
)

// Sequence hands out increasing identifiers. It is safe for concurrent use,
// as one sequence is typically shared by every recorder created from a mapper.
type Sequence struct {
	prefix string
	last   atomic.Uint64
}

// NewSequence creates a sequence whose identifiers start with prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// Next returns the next identifier, e.g. "rec1", "rec2".
func (s *Sequence) Next() string {
	return s.prefix + strconv.FormatUint(s.last.Add(1), 10)
}

// Last returns how many identifiers have been handed out.
func (s *Sequence) Last() uint64 {
	return s.last.Load()
}
