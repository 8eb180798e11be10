// Package uniform turns the raw output of any pseudo-random generator into
// unbiased integers in [0, n) and floats in [0, 1).
//
// The functions are generic over the generator type so that a call with a
// concrete generator such as *rng.PCG32 is resolved at compile time. Callers
// may not assume a generator produces values starting at zero: every draw
// subtracts the generator's declared minimum first.
package uniform

import (
	"math"
	"math/bits"
	"unsafe"

	fmath "github.com/nozzle/sampling/internal/math"
)

// Generator is the capability the engine needs from a bit generator: a
// uniformly distributed integer in the closed range [Min(), Max()].
// Max must be greater than Min.
type Generator interface {
	Next() uint64
	Min() uint64
	Max() uint64
}

// Scalar is the floating point type samples are produced in.
type Scalar interface {
	~float32 | ~float64
}

// Integer is any integer type accepted by Range.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Uint32 returns the generator's next raw value truncated to 32 bits.
func Uint32[G Generator](g G) uint32 {
	return uint32(g.Next())
}

// Uint64 returns the generator's next raw value.
func Uint64[G Generator](g G) uint64 {
	return g.Next()
}

// Bounded32 returns a uniform value in [0, n) using Lemire's multiply-high
// method. The rejection threshold is only computed when the low half of the
// product falls below n, so most draws cost a single multiplication.
// Generators whose range is neither 32 nor 64 bits wide go through Bounded64.
func Bounded32[G Generator](g G, n uint32) uint32 {
	if n == 0 {
		panic("uniform: Bounded32 called with zero range")
	}
	lo := g.Min()
	if span := g.Max() - lo; span != math.MaxUint32 && span != math.MaxUint64 {
		return uint32(Bounded64(g, uint64(n)))
	}
	x := uint32(g.Next() - lo)
	m := uint64(x) * uint64(n)
	l := uint32(m)
	if l < n {
		t := -n % n
		for l < t {
			x = uint32(g.Next() - lo)
			m = uint64(x) * uint64(n)
			l = uint32(m)
		}
	}
	return uint32(m >> 32)
}

// Bounded64 returns a uniform value in [0, n) by debiased modulo. Values in
// the incomplete last bucket of the generator's range are redrawn. When n
// exceeds the generator's range, successive draws are combined as digits
// in base (Max-Min+1) and out-of-range results are redrawn.
func Bounded64[G Generator](g G, n uint64) uint64 {
	if n == 0 {
		panic("uniform: Bounded64 called with zero range")
	}
	lo := g.Min()
	span := g.Max() - lo
	switch {
	case span == math.MaxUint64:
		for {
			x := g.Next() - lo
			r := x % n
			if x-r <= -n {
				return r
			}
		}
	case n-1 <= span:
		size := span + 1
		limit := size - size%n
		for {
			x := g.Next() - lo
			if x < limit {
				return x % n
			}
		}
	}
	return boundedWide(g, n, lo, span+1)
}

// boundedWide draws from [0, n) for n > size, the generator's range size.
func boundedWide[G Generator](g G, n, lo, size uint64) uint64 {
	q := (n-1)/size + 1
	for {
		high := Bounded64(g, q)
		carry, v := bits.Mul64(high, size)
		v, c := bits.Add64(v, g.Next()-lo, 0)
		if carry == 0 && c == 0 && v < n {
			return v
		}
	}
}

// Range returns a uniform value in [min, max). 64-bit types use Bounded64,
// everything narrower uses Bounded32. It panics if min >= max.
func Range[T Integer, G Generator](g G, min, max T) T {
	if min >= max {
		panic("uniform: Range called with min >= max")
	}
	// Both ends sign-extend identically, so the wrapped difference is
	// the width of the range for signed and unsigned T alike.
	d := uint64(max) - uint64(min)
	if unsafe.Sizeof(min) == 8 {
		return min + T(Bounded64(g, d))
	}
	return min + T(Bounded32(g, uint32(d)))
}

// Float32 returns a float32 in [0, 1).
//
// Generators with a full 32- or 64-bit range have their top bits written
// straight into the mantissa. Other ranges are scaled by 1/(max-min).
func Float32[G Generator](g G) float32 {
	lo, hi := g.Min(), g.Max()
	x := g.Next() - lo
	switch hi - lo {
	case math.MaxUint32:
		return fmath.Variate(fmath.U32AsFloat(uint32(x)))
	case math.MaxUint64:
		return fmath.Variate(fmath.U32AsFloat(uint32(x >> 32)))
	}
	return fmath.Variate(float32(float64(x) * (1 / float64(hi-lo))))
}

// Float64 returns a float64 in [0, 1). 32-bit generators only carry 23
// random mantissa bits.
func Float64[G Generator](g G) float64 {
	lo, hi := g.Min(), g.Max()
	x := g.Next() - lo
	switch hi - lo {
	case math.MaxUint32:
		return fmath.Variate(float64(fmath.U32AsFloat(uint32(x))))
	case math.MaxUint64:
		return fmath.Variate(fmath.U64AsDouble(x))
	}
	return fmath.Variate(float64(x) * (1 / float64(hi-lo)))
}

// Float returns a value in [0, 1) in T's precision.
func Float[T Scalar, G Generator](g G) T {
	if fmath.Is32[T]() {
		return T(Float32(g))
	}
	return T(Float64(g))
}

// Uniform returns a value in [min, max) in T's precision.
func Uniform[T Scalar, G Generator](g G, min, max T) T {
	if !(min < max) {
		panic("uniform: Uniform called with min >= max")
	}
	v := min + Float[T](g)*(max-min)
	if v >= max {
		return min + fmath.OneMinusEpsilon[T]()*(max-min)
	}
	return v
}
