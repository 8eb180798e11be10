package sampler

import (
	fmath "github.com/nozzle/sampling/internal/math"
	"github.com/nozzle/sampling/shuffle"
	"github.com/nozzle/sampling/uniform"
)

// LHS is a Latin hypercube sampler. Each axis is cut into count equal
// cells and receives exactly one coordinate per cell; the columns are then
// permuted independently so the joint placement is random while every
// marginal stays perfectly stratified.
type LHS[T uniform.Scalar, G uniform.Generator] struct {
	g    G
	opts Options
}

// NewLHS returns an LHS sampler drawing from g. Only the Jitter option is
// used; without it coordinates sit at cell centers.
func NewLHS[T uniform.Scalar, G uniform.Generator](g G, opts Options) *LHS[T, G] {
	return &LHS[T, G]{g: g, opts: opts}
}

// Fill writes count points of dims coordinates into buf.
func (l *LHS[T, G]) Fill(buf []T, dims, count int) {
	fillLHS(l.g, l.opts, buf, dims, count)
}

// FillVec writes one point into each row, shuffling each dimension with its
// own pass over the rows.
func (l *LHS[T, G]) FillVec(rows [][]T, dims int) {
	fillLHSRows(l.g, l.opts, rows, dims)
}

func fillLHS[T uniform.Scalar, G uniform.Generator](g G, opts Options, buf []T, dims, count int) {
	checkInterleaved(len(buf), dims, count)
	if count == 0 {
		return
	}
	n := T(count)
	k := 0
	for i := range count {
		for range dims {
			buf[k] = fmath.Variate((T(i) + cellOffset[T](g, opts)) / n)
			k++
		}
	}
	shuffle.Inner(g, buf[:dims*count], dims)
}

func fillLHSRows[T uniform.Scalar, G uniform.Generator](g G, opts Options, rows [][]T, dims int) {
	checkRows(rows, dims)
	if len(rows) == 0 {
		return
	}
	n := T(len(rows))
	for i, row := range rows {
		for dim := range dims {
			row[dim] = fmath.Variate((T(i) + cellOffset[T](g, opts)) / n)
		}
	}
	for dim := range dims {
		shuffle.Column(g, rows, dim)
	}
}

// cellOffset is the position inside a cell: random with Jitter, else the
// center.
func cellOffset[T uniform.Scalar, G uniform.Generator](g G, opts Options) T {
	if opts.Has(Jitter) {
		return uniform.Float[T](g)
	}
	return 0.5
}
