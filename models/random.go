package models

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// IntSource produces uniformly distributed integers in [0, n).
// *rand.Rand satisfies it.
type IntSource interface {
	Intn(n int) int
}

func NewRandSource(seed int64) IntSource {
	return rand.New(rand.NewSource(seed))
}

// NewSeed reads a seed from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// SequenceSource replays a fixed list of draws. Each value is reduced
// into [0, n), so callers can write linear grid indexes directly and
// negative values count back from n.
type SequenceSource struct {
	values []int
	next   int
}

func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Intn(n int) int {
	if s.next >= len(s.values) {
		panic(fmt.Sprintf("sequence source exhausted after %d draws", len(s.values)))
	}
	v := s.values[s.next]
	s.next++
	return ((v % n) + n) % n
}

// Draws reports how many values have been consumed.
func (s *SequenceSource) Draws() int {
	return s.next
}
