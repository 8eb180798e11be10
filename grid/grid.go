// Package grid walks the cells of an N-dimensional grid laid over a flat
// buffer. Cells are visited with dimension 0 varying fastest, and each cell
// owns stride consecutive buffer elements.
package grid

import "iter"

// Range describes a grid of size[0] x size[1] x ... cells.
type Range struct {
	size   []int
	stride int
	total  int
}

// New returns a Range over the given per-dimension sizes. It panics when
// there are no dimensions, a size is not positive, or stride is not
// positive.
func New(size []int, stride int) *Range {
	if len(size) == 0 {
		panic("grid: at least one dimension required")
	}
	if stride <= 0 {
		panic("grid: stride must be positive")
	}
	total := 1
	for _, s := range size {
		if s <= 0 {
			panic("grid: dimension size must be positive")
		}
		total *= s
	}
	return &Range{size: size, stride: stride, total: total}
}

// Dims returns the number of dimensions.
func (r *Range) Dims() int { return len(r.size) }

// Size returns the number of cells along dim.
func (r *Range) Size(dim int) int { return r.size[dim] }

// Total returns the number of cells.
func (r *Range) Total() int { return r.total }

// Len returns the buffer length the grid covers.
func (r *Range) Len() int { return r.total * r.stride }

// Iterator is a cursor over the cells of a Range.
type Iterator struct {
	r      *Range
	index  []int
	n      int
	offset int
}

// Begin returns an iterator positioned on the first cell.
func (r *Range) Begin() *Iterator {
	return &Iterator{r: r, index: make([]int, len(r.size))}
}

// Valid reports whether the iterator points at a cell.
func (it *Iterator) Valid() bool { return it.n < it.r.total }

// Index returns the per-dimension cell coordinates. The slice is reused by
// Next.
func (it *Iterator) Index() []int { return it.index }

// Offset returns the position of the cell's first element in the buffer.
func (it *Iterator) Offset() int { return it.offset }

// Next advances to the following cell.
func (it *Iterator) Next() {
	it.n++
	it.offset += it.r.stride
	for dim := range it.index {
		it.index[dim]++
		if it.index[dim] < it.r.size[dim] {
			return
		}
		it.index[dim] = 0
	}
}

// All yields the buffer offset and cell coordinates of every cell in order.
// The coordinate slice is reused between iterations.
func (r *Range) All() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		for it := r.Begin(); it.Valid(); it.Next() {
			if !yield(it.Offset(), it.Index()) {
				return
			}
		}
	}
}

// Cell writes the coordinates of the n-th cell into dst.
func (r *Range) Cell(n int, dst []int) {
	for dim, s := range r.size {
		dst[dim] = n % s
		n /= s
	}
}
