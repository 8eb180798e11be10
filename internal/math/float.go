// Package math provides generic floating point helpers shared by the
// samplers and warps. Functions are parameterized over float32 and float64
// so that each sampler instantiation stays in its native precision.
package math

import (
	"math"
	"unsafe"
)

// Float is satisfied by float32 and float64 and types derived from them.
type Float interface {
	~float32 | ~float64
}

// Largest representable values strictly below 1.
const (
	OneMinusEpsilon32 float32 = 0x1.fffffep-1
	OneMinusEpsilon64 float64 = 0x1.fffffffffffffp-1
)

const (
	Pi    = math.Pi
	InvPi = 1 / math.Pi
)

// Is32 reports whether T is a 32-bit float.
func Is32[T Float]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// OneMinusEpsilon returns the largest T below 1.
func OneMinusEpsilon[T Float]() T {
	if Is32[T]() {
		return T(OneMinusEpsilon32)
	}
	return T(OneMinusEpsilon64)
}

// Variate keeps a random variate inside [0, 1) by replacing any value that
// rounded up to 1 (or above) with OneMinusEpsilon. NaN passes through.
func Variate[T Float](v T) T {
	if m := OneMinusEpsilon[T](); v > m {
		return m
	}
	return v
}

// U32AsFloat maps the top 23 bits of v onto the mantissa of a float32 in
// [1, 2) and shifts the result down to [0, 1).
func U32AsFloat(v uint32) float32 {
	return math.Float32frombits(0x3f800000|v>>9) - 1
}

// U64AsDouble maps the top 52 bits of v onto the mantissa of a float64 in
// [1, 2) and shifts the result down to [0, 1).
func U64AsDouble(v uint64) float64 {
	return math.Float64frombits(0x3ff0000000000000|v>>12) - 1
}

// Sqrt computes the square root in T's precision.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Cos computes cosine in T's precision.
func Cos[T Float](x T) T {
	return T(math.Cos(float64(x)))
}

// Sin computes sine in T's precision.
func Sin[T Float](x T) T {
	return T(math.Sin(float64(x)))
}

// Pow computes x^y in T's precision.
func Pow[T Float](x, y T) T {
	return T(math.Pow(float64(x), float64(y)))
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Floor returns the greatest integer value less than or equal to x.
func Floor[T Float](x T) T {
	return T(math.Floor(float64(x)))
}
