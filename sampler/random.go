package sampler

import "github.com/nozzle/sampling/uniform"

// Random draws every coordinate independently from its generator.
type Random[T uniform.Scalar, G uniform.Generator] struct {
	g G
}

// NewRandom returns a Random sampler drawing from g.
func NewRandom[T uniform.Scalar, G uniform.Generator](g G) *Random[T, G] {
	return &Random[T, G]{g: g}
}

// Sample returns one coordinate.
func (r *Random[T, G]) Sample() T {
	return uniform.Float[T](r.g)
}

// SampleVec fills dst with one point.
func (r *Random[T, G]) SampleVec(dst []T) {
	for i := range dst {
		dst[i] = uniform.Float[T](r.g)
	}
}

// Fill writes count points of dims coordinates into buf.
func (r *Random[T, G]) Fill(buf []T, dims, count int) {
	checkInterleaved(len(buf), dims, count)
	for i := range buf[:dims*count] {
		buf[i] = uniform.Float[T](r.g)
	}
}

// FillVec writes one point of dims coordinates into each row.
func (r *Random[T, G]) FillVec(rows [][]T, dims int) {
	checkRows(rows, dims)
	for _, row := range rows {
		r.SampleVec(row[:dims])
	}
}
