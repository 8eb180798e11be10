package lds

import (
	fmath "github.com/nozzle/sampling/internal/math"
	"github.com/nozzle/sampling/uniform"
)

// RadicalInverse mirrors the base-b digits of value around the radix point:
// a value with digits d0 d1 ... (least significant first) maps to
// d0/b + d1/b^2 + .... Digits are accumulated as an integer and scaled once
// in T's arithmetic. It panics if base < 2.
func RadicalInverse[T uniform.Scalar](base uint32, value uint64) T {
	if base < 2 {
		panic("lds: radical inverse base must be at least 2")
	}
	b := uint64(base)
	invBase := T(1) / T(base)
	invBaseN := T(1)
	var inverse uint64
	for value > 0 {
		n := value / b
		inverse = inverse*b + (value - n*b)
		invBaseN *= invBase
		value = n
	}
	return fmath.Variate(T(inverse) * invBaseN)
}

// RadicalInverseScrambled is RadicalInverse with every digit d replaced by
// perm[d] first. perm must be a permutation of [0, base) with perm[0] == 0.
func RadicalInverseScrambled[T uniform.Scalar](base uint32, perm []uint16, value uint64) T {
	if base < 2 {
		panic("lds: radical inverse base must be at least 2")
	}
	b := uint64(base)
	perm = perm[:base]
	invBase := T(1) / T(base)
	invBaseN := T(1)
	var inverse uint64
	for value > 0 {
		n := value / b
		inverse = inverse*b + uint64(perm[value-n*b])
		invBaseN *= invBase
		value = n
	}
	return fmath.Variate(T(inverse) * invBaseN)
}

// Sample returns coordinate dim of the value-th point of the scrambled
// Halton sequence. Dimensions 0 and 1 (bases 2 and 3) are not scrambled and
// skip the table lookup.
func Sample[T uniform.Scalar](t *Tables, dim int, value uint64) T {
	switch dim {
	case 0:
		return RadicalInverse[T](2, value)
	case 1:
		return RadicalInverse[T](3, value)
	}
	return RadicalInverseScrambled[T](t.primes.p[dim], t.perms.Slice(dim), value)
}
