// Package sampler produces points in the unit hypercube [0, 1)^N.
//
// Five strategies are provided: independent random points, the scrambled
// Halton and Hammersley low-discrepancy sequences, jittered stratified grids
// and Latin hypercube sampling. Halton and Hammersley are deterministic and
// read the scrambling permutations from an *lds.Tables; the others draw from
// a uniform.Generator owned by the sampler.
//
// Output goes into caller-owned buffers, either interleaved (dims values per
// point, points back to back) or as rows of a [][]T. A sampler keeps no
// reference to a buffer after a call returns. Samplers are not safe for
// concurrent use, but independent samplers sharing one Tables are.
package sampler

import (
	"fmt"

	"github.com/nozzle/sampling/uniform"
)

// Options is a bitmask of sampler flags.
type Options uint8

const (
	// None places stratified and LHS points at cell centers, in
	// enumeration order.
	None Options = 0
	// Jitter offsets each coordinate randomly inside its cell.
	Jitter Options = 1 << 0
	// Shuffle permutes whole points after a stratified grid is filled.
	Shuffle Options = 1 << 1
)

// Has reports whether all bits of o2 are set in o.
func (o Options) Has(o2 Options) bool { return o&o2 == o2 }

func (o Options) String() string {
	switch o {
	case None:
		return "none"
	case Jitter:
		return "jitter"
	case Shuffle:
		return "shuffle"
	case Jitter | Shuffle:
		return "jitter|shuffle"
	}
	return fmt.Sprintf("Options(%d)", uint8(o))
}

// Filler is implemented by every sampler: Fill writes count points of dims
// coordinates each into buf, interleaved.
type Filler[T uniform.Scalar] interface {
	Fill(buf []T, dims, count int)
}

func checkInterleaved(n, dims, count int) {
	if dims <= 0 {
		panic("sampler: dimension count must be positive")
	}
	if count < 0 || n < dims*count {
		panic(fmt.Sprintf("sampler: buffer of %d values cannot hold %d points of %d dimensions", n, count, dims))
	}
}

func checkRows[T any](rows [][]T, dims int) {
	if dims <= 0 {
		panic("sampler: dimension count must be positive")
	}
	for i, row := range rows {
		if len(row) < dims {
			panic(fmt.Sprintf("sampler: row %d has %d values, need %d", i, len(row), dims))
		}
	}
}
