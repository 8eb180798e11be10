package rng

// SplitMix64 is the fixed-increment generator behind Java's
// SplittableRandom. It is mostly used here to expand a single seed into the
// state of the other generators.
type SplitMix64 struct {
	state uint64
}

// NewSplitMix64 returns a generator starting at state.
func NewSplitMix64(state uint64) *SplitMix64 {
	return &SplitMix64{state: state}
}

// Uint64 returns the next output.
func (s *SplitMix64) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func (s *SplitMix64) Next() uint64 { return s.Uint64() }
func (s *SplitMix64) Min() uint64  { return 0 }
func (s *SplitMix64) Max() uint64  { return max64 }
