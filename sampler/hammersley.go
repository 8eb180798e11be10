package sampler

import (
	"fmt"

	fmath "github.com/nozzle/sampling/internal/math"
	"github.com/nozzle/sampling/lds"
	"github.com/nozzle/sampling/uniform"
)

// Hammersley generates a Hammersley point set of a fixed size. The first
// coordinate of point k is k/maxSamples; the remaining coordinates follow
// the scrambled Halton sequence starting at dimension baseDim. Because the
// first axis depends on the set size, the cursor may never pass
// maxSamples.
type Hammersley[T uniform.Scalar] struct {
	tables     *lds.Tables
	baseDim    int
	dims       int
	maxSamples uint64
	invMax     T
	offset     uint64
}

// NewHammersley returns a sampler for a set of maxSamples points with dims
// coordinates each. Coordinates past the first use dimensions
// [baseDim, baseDim+dims-1) of tables.
func NewHammersley[T uniform.Scalar](tables *lds.Tables, maxSamples uint64, baseDim, dims int, offset uint64) *Hammersley[T] {
	if maxSamples == 0 {
		panic("sampler: Hammersley set size must be positive")
	}
	if dims <= 0 {
		panic("sampler: dimension count must be positive")
	}
	tables.CheckDims(baseDim, dims-1)
	h := &Hammersley[T]{
		tables:     tables,
		baseDim:    baseDim,
		dims:       dims,
		maxSamples: maxSamples,
		invMax:     T(1) / T(maxSamples),
	}
	h.Reset(offset)
	return h
}

// Dims returns the number of dimensions the sampler was built for.
func (h *Hammersley[T]) Dims() int { return h.dims }

// MaxSamples returns the size of the point set.
func (h *Hammersley[T]) MaxSamples() uint64 { return h.maxSamples }

// Offset returns the index of the next point.
func (h *Hammersley[T]) Offset() uint64 { return h.offset }

// Remaining returns how many points can still be drawn.
func (h *Hammersley[T]) Remaining() uint64 { return h.maxSamples - h.offset }

// Reset moves the cursor to offset, which may not exceed the set size.
func (h *Hammersley[T]) Reset(offset uint64) {
	if offset > h.maxSamples {
		panic(fmt.Sprintf("sampler: Hammersley offset %d past set size %d", offset, h.maxSamples))
	}
	h.offset = offset
}

// At returns coordinate dim of point k without moving the cursor.
func (h *Hammersley[T]) At(dim int, k uint64) T {
	if dim < 0 || dim >= h.dims {
		panic("sampler: Hammersley dimension out of range")
	}
	return h.value(dim, k)
}

// Sample returns the first coordinate of the next point.
func (h *Hammersley[T]) Sample() T {
	h.reserve(1)
	v := h.value(0, h.offset)
	h.offset++
	return v
}

// SampleVec fills dst with the first len(dst) coordinates of the next
// point.
func (h *Hammersley[T]) SampleVec(dst []T) {
	h.checkDims(len(dst))
	h.reserve(1)
	for dim := range dst {
		dst[dim] = h.value(dim, h.offset)
	}
	h.offset++
}

// Fill writes count points into buf. A count of zero writes every
// remaining point of the set.
func (h *Hammersley[T]) Fill(buf []T, dims, count int) {
	if count == 0 {
		count = int(h.Remaining())
	}
	checkInterleaved(len(buf), dims, count)
	h.checkDims(dims)
	h.reserve(uint64(count))
	i := 0
	for range count {
		for dim := range dims {
			buf[i] = h.value(dim, h.offset)
			i++
		}
		h.offset++
	}
}

// FillVec writes the next len(rows) points into rows.
func (h *Hammersley[T]) FillVec(rows [][]T, dims int) {
	checkRows(rows, dims)
	h.checkDims(dims)
	h.reserve(uint64(len(rows)))
	for _, row := range rows {
		for dim := range dims {
			row[dim] = h.value(dim, h.offset)
		}
		h.offset++
	}
}

func (h *Hammersley[T]) value(dim int, k uint64) T {
	if dim == 0 {
		return fmath.Variate(T(k) * h.invMax)
	}
	return lds.Sample[T](h.tables, h.baseDim+dim-1, k)
}

func (h *Hammersley[T]) reserve(n uint64) {
	if n > h.Remaining() {
		panic(fmt.Sprintf("sampler: Hammersley set of %d points exhausted at offset %d (requested %d)", h.maxSamples, h.offset, n))
	}
}

func (h *Hammersley[T]) checkDims(dims int) {
	if dims > h.dims {
		panic("sampler: requested more dimensions than the sampler was built for")
	}
}
