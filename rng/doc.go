// Package rng provides bit generators that satisfy the uniform.Generator
// contract: PCG32, SplitMix64, xoroshiro64*, xoroshiro128+, the Mersenne
// Twister (MT19937) and a combined Tausworthe generator.
//
// None of the generators are safe for concurrent use; give each goroutine
// its own instance.
package rng

import "math"

const (
	min32 = 0
	max32 = math.MaxUint32
	max64 = math.MaxUint64
)
