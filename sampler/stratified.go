package sampler

import (
	"fmt"

	"github.com/nozzle/sampling/grid"
	fmath "github.com/nozzle/sampling/internal/math"
	"github.com/nozzle/sampling/shuffle"
	"github.com/nozzle/sampling/uniform"
)

// Stratified splits [0, 1)^N into a grid with strata[d] cells along axis d
// and places one point in every cell. Cells are enumerated with dimension 0
// varying fastest.
//
// A grid only exists for one point count: the product of the strata. When
// a different count is requested the sampler falls back to Latin hypercube
// sampling with the same options and generator.
type Stratified[T uniform.Scalar, G uniform.Generator] struct {
	g      G
	strata []int
	opts   Options
}

// NewStratified returns a sampler with per-dimension strata counts. It
// panics if strata is empty or any count is zero.
func NewStratified[T uniform.Scalar, G uniform.Generator](g G, strata []uint32, opts Options) *Stratified[T, G] {
	if len(strata) == 0 {
		panic("sampler: at least one stratified dimension required")
	}
	s := &Stratified[T, G]{g: g, strata: make([]int, len(strata)), opts: opts}
	for i, n := range strata {
		if n == 0 {
			panic(fmt.Sprintf("sampler: dimension %d has zero strata", i))
		}
		s.strata[i] = int(n)
	}
	return s
}

// NewUniformStratified returns a sampler with n strata along each of dims
// dimensions.
func NewUniformStratified[T uniform.Scalar, G uniform.Generator](g G, dims int, n uint32, opts Options) *Stratified[T, G] {
	if dims <= 0 {
		panic("sampler: dimension count must be positive")
	}
	strata := make([]uint32, dims)
	for i := range strata {
		strata[i] = n
	}
	return NewStratified[T](g, strata, opts)
}

// Dims returns the number of dimensions the sampler has strata for.
func (s *Stratified[T, G]) Dims() int { return len(s.strata) }

// Strata returns the number of cells along dim.
func (s *Stratified[T, G]) Strata(dim int) int { return s.strata[dim] }

// TotalStrata returns the number of cells in the grid over the first dims
// dimensions.
func (s *Stratified[T, G]) TotalStrata(dims int) int {
	s.checkDims(dims)
	total := 1
	for _, n := range s.strata[:dims] {
		total *= n
	}
	return total
}

// Fill writes count points of dims coordinates into buf. A count of zero
// means one point per cell.
func (s *Stratified[T, G]) Fill(buf []T, dims, count int) {
	total := s.TotalStrata(dims)
	if count == 0 {
		count = total
	}
	if count != total {
		fillLHS(s.g, s.opts, buf, dims, count)
		return
	}
	checkInterleaved(len(buf), dims, count)

	r := grid.New(s.strata[:dims], dims)
	for off, idx := range r.All() {
		for dim, cell := range idx {
			buf[off+dim] = s.coordinate(cell, dim)
		}
	}
	if s.opts.Has(Shuffle) {
		shuffle.Blocks(s.g, buf[:dims*count], dims)
	}
}

// FillVec writes one point into each row. When len(rows) differs from the
// number of cells the rows are filled by Latin hypercube sampling.
func (s *Stratified[T, G]) FillVec(rows [][]T, dims int) {
	total := s.TotalStrata(dims)
	if len(rows) != total {
		fillLHSRows(s.g, s.opts, rows, dims)
		return
	}
	checkRows(rows, dims)

	r := grid.New(s.strata[:dims], 1)
	for off, idx := range r.All() {
		row := rows[off]
		for dim, cell := range idx {
			row[dim] = s.coordinate(cell, dim)
		}
	}
	if s.opts.Has(Shuffle) {
		shuffle.Slice(s.g, rows)
	}
}

func (s *Stratified[T, G]) coordinate(cell, dim int) T {
	return fmath.Variate((T(cell) + cellOffset[T](s.g, s.opts)) / T(s.strata[dim]))
}

func (s *Stratified[T, G]) checkDims(dims int) {
	if dims <= 0 || dims > len(s.strata) {
		panic(fmt.Sprintf("sampler: %d dimensions requested, stratified sampler has %d", dims, len(s.strata)))
	}
}
