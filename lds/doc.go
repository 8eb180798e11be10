// Package lds holds the machinery behind low-discrepancy sequences: a table
// of the first K primes, one digit-scrambling permutation per prime base,
// and the radical inverse functions that turn a sample index into a
// coordinate in [0, 1).
//
// The tables live in a Tables value built once with NewTables and passed by
// reference to every sampler that needs them. A built Tables is never
// mutated again, so any number of goroutines may read it concurrently; it
// must not be closed while samplers still use it.
//
// Basic usage:
//
//	tables, err := lds.NewTables(lds.MaxDimensions)
//	if err != nil {
//		return err
//	}
//	defer tables.Close()
//	x := lds.Sample[float64](tables, 3, 17)
package lds

import "github.com/pkg/errors"

const (
	// MaxDimensions is the default number of prime bases, and therefore the
	// number of low-discrepancy dimensions, a Tables provides.
	MaxDimensions = 128
	// MinDimensions is the smallest capacity NewTables accepts.
	MinDimensions = 2
	// MaxCapacity is the number of primes below 65536. Permutation digits
	// are stored as uint16, which bounds the largest usable base.
	MaxCapacity = 6542
)

var (
	// ErrOutOfMemory is returned when an Allocator cannot satisfy a request.
	ErrOutOfMemory = errors.New("lds: allocation failed")
	// ErrPrimesNotBuilt is returned when permutations are built before the
	// prime table they are sliced by.
	ErrPrimesNotBuilt = errors.New("lds: prime table not built")
)
