package rng

import "math/bits"

// Xoroshiro128Plus is xoroshiro128+ with the 2018 parameters (a=24, b=16,
// c=37). The lowest bits have weak linear structure, so uniform.Float32
// takes the top 32 bits of its output.
type Xoroshiro128Plus struct {
	s0, s1 uint64
}

// NewXoroshiro128Plus seeds both state words through SplitMix64.
func NewXoroshiro128Plus(seed uint64) *Xoroshiro128Plus {
	sm := NewSplitMix64(seed)
	return &Xoroshiro128Plus{s0: sm.Uint64(), s1: sm.Uint64()}
}

// Uint64 returns the next output.
func (x *Xoroshiro128Plus) Uint64() uint64 {
	s0, s1 := x.s0, x.s1
	result := s0 + s1

	s1 ^= s0
	x.s0 = bits.RotateLeft64(s0, 24) ^ s1 ^ (s1 << 16)
	x.s1 = bits.RotateLeft64(s1, 37)

	return result
}

func (x *Xoroshiro128Plus) Next() uint64 { return x.Uint64() }
func (x *Xoroshiro128Plus) Min() uint64  { return 0 }
func (x *Xoroshiro128Plus) Max() uint64  { return max64 }

// Xoroshiro64Star is xoroshiro64* (a=26, b=9, c=13), a 32-bit output
// generator with 64 bits of state.
type Xoroshiro64Star struct {
	s0, s1 uint32
}

// NewXoroshiro64Star splits one SplitMix64 output into the two state words.
func NewXoroshiro64Star(seed uint64) *Xoroshiro64Star {
	v := NewSplitMix64(seed).Uint64()
	return &Xoroshiro64Star{s0: uint32(v), s1: uint32(v >> 32)}
}

// Uint32 returns the next output.
func (x *Xoroshiro64Star) Uint32() uint32 {
	s0, s1 := x.s0, x.s1
	result := s0 * 0x9e3779bb

	s1 ^= s0
	x.s0 = bits.RotateLeft32(s0, 26) ^ s1 ^ (s1 << 9)
	x.s1 = bits.RotateLeft32(s1, 13)

	return result
}

func (x *Xoroshiro64Star) Next() uint64 { return uint64(x.Uint32()) }
func (x *Xoroshiro64Star) Min() uint64  { return min32 }
func (x *Xoroshiro64Star) Max() uint64  { return max32 }
