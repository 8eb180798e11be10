package sampler

import (
	"github.com/nozzle/sampling/lds"
	"github.com/nozzle/sampling/uniform"
)

// Halton generates the scrambled Halton sequence. Coordinate d of point k
// is the radical inverse of k in the prime base of dimension baseDim+d.
// Giving different samplers disjoint baseDim ranges keeps their coordinates
// uncorrelated.
type Halton[T uniform.Scalar] struct {
	tables  *lds.Tables
	baseDim int
	dims    int
	offset  uint64
}

// NewHalton returns a sampler over dimensions [baseDim, baseDim+dims) of
// tables whose first point is offset. It panics if the tables do not
// provide those dimensions.
func NewHalton[T uniform.Scalar](tables *lds.Tables, baseDim, dims int, offset uint64) *Halton[T] {
	if dims <= 0 {
		panic("sampler: dimension count must be positive")
	}
	tables.CheckDims(baseDim, dims)
	return &Halton[T]{tables: tables, baseDim: baseDim, dims: dims, offset: offset}
}

// Dims returns the number of dimensions the sampler was built for.
func (h *Halton[T]) Dims() int { return h.dims }

// Offset returns the index of the next point.
func (h *Halton[T]) Offset() uint64 { return h.offset }

// Reset moves the cursor to offset.
func (h *Halton[T]) Reset(offset uint64) { h.offset = offset }

// At returns coordinate dim of point k without moving the cursor.
func (h *Halton[T]) At(dim int, k uint64) T {
	if dim < 0 || dim >= h.dims {
		panic("sampler: Halton dimension out of range")
	}
	return lds.Sample[T](h.tables, h.baseDim+dim, k)
}

// Sample returns the first coordinate of the next point.
func (h *Halton[T]) Sample() T {
	v := lds.Sample[T](h.tables, h.baseDim, h.offset)
	h.offset++
	return v
}

// SampleVec fills dst with the first len(dst) coordinates of the next
// point.
func (h *Halton[T]) SampleVec(dst []T) {
	h.checkDims(len(dst))
	for dim := range dst {
		dst[dim] = lds.Sample[T](h.tables, h.baseDim+dim, h.offset)
	}
	h.offset++
}

// Fill writes the next count points of dims coordinates into buf.
func (h *Halton[T]) Fill(buf []T, dims, count int) {
	checkInterleaved(len(buf), dims, count)
	h.checkDims(dims)
	i := 0
	for range count {
		for dim := range dims {
			buf[i] = lds.Sample[T](h.tables, h.baseDim+dim, h.offset)
			i++
		}
		h.offset++
	}
}

// FillVec writes the next len(rows) points into rows.
func (h *Halton[T]) FillVec(rows [][]T, dims int) {
	checkRows(rows, dims)
	for _, row := range rows {
		h.SampleVec(row[:dims])
	}
}

func (h *Halton[T]) checkDims(dims int) {
	if dims > h.dims {
		panic("sampler: requested more dimensions than the sampler was built for")
	}
}
