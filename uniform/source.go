package uniform

import (
	"math"
	"math/rand/v2"
)

// Source adapts a math/rand/v2 source to the Generator contract.
type Source struct {
	src rand.Source
}

// FromSource wraps src. The wrapped source is assumed to produce the full
// 64-bit range.
func FromSource(src rand.Source) *Source {
	return &Source{src: src}
}

func (s *Source) Next() uint64 { return s.src.Uint64() }
func (s *Source) Min() uint64  { return 0 }
func (s *Source) Max() uint64  { return math.MaxUint64 }
