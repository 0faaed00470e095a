package storage

import "fmt"

// Sequence issues prefixed, zero-padded IDs (F001, F002, ...). The counter
// never resets and never reuses a retired ID within a process lifetime.
type Sequence struct {
	prefix string
	last   int
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) Next() string {
	s.last++
	return fmt.Sprintf("%s%03d", s.prefix, s.last)
}
