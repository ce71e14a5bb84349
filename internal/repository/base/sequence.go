package base

// Sequence hands out strictly increasing int64 identifiers starting at 1.
// Identifiers are never reused, even across snapshot reloads.
type Sequence struct {
	next int64
}

func NewSequence() *Sequence {
	return &Sequence{next: 1}
}

// Next allocates and returns the next identifier.
func (s *Sequence) Next() int64 {
	id := s.next
	s.next++
	return id
}

// Peek returns the identifier the next call to Next would allocate.
func (s *Sequence) Peek() int64 {
	return s.next
}

// Reset sets the next identifier to hand out. Only the snapshot restore
// path calls it.
func (s *Sequence) Reset(next int64) {
	s.next = next
}
