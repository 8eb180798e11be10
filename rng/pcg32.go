package rng

import "math/bits"

const pcg32Multiplier = 6364136223846793005

// PCG32 is the 64-bit state, 32-bit output PCG generator (XSH RR variant).
type PCG32 struct {
	state uint64
	inc   uint64
}

// NewPCG32 returns a PCG32 in the reference default state. The LDS
// permutation tables are scrambled with this generator.
func NewPCG32() *PCG32 {
	return &PCG32{state: 0x853c49e6748fea9b, inc: 0xda3e39cb94b95bdb}
}

// NewPCG32Seeded derives state and stream from seed through SplitMix64.
func NewPCG32Seeded(seed uint64) *PCG32 {
	p := &PCG32{}
	p.Seed(seed)
	return p
}

// NewPCG32Stream seeds with an explicit initial state and stream selector.
func NewPCG32Stream(initState, initSeq uint64) *PCG32 {
	p := &PCG32{}
	p.SeedStream(initState, initSeq)
	return p
}

// Seed reseeds the generator from a single 64-bit value.
func (p *PCG32) Seed(seed uint64) {
	sm := NewSplitMix64(seed)
	initState := sm.Uint64()
	initSeq := sm.Uint64()
	p.SeedStream(initState, initSeq)
}

// SeedStream follows the reference pcg32_srandom_r initialization.
func (p *PCG32) SeedStream(initState, initSeq uint64) {
	p.state = 0
	p.inc = initSeq<<1 | 1
	p.Uint32()
	p.state += initState
	p.Uint32()
}

// Uint32 returns the next output.
func (p *PCG32) Uint32() uint32 {
	old := p.state
	p.state = old*pcg32Multiplier + p.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)
	return bits.RotateLeft32(xorshifted, -rot)
}

func (p *PCG32) Next() uint64 { return uint64(p.Uint32()) }
func (p *PCG32) Min() uint64  { return min32 }
func (p *PCG32) Max() uint64  { return max32 }
