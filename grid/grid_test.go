package grid_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nozzle/sampling/grid"
)

func TestRangeOrder(t *testing.T) {
	r := grid.New([]int{2, 3}, 2)
	require.Equal(t, 6, r.Total())
	require.Equal(t, 12, r.Len())

	var offsets []int
	var cells [][]int
	for off, idx := range r.All() {
		offsets = append(offsets, off)
		cells = append(cells, slices.Clone(idx))
	}
	assert.Equal(t, []int{0, 2, 4, 6, 8, 10}, offsets)
	assert.Equal(t, [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}}, cells)
}

func TestCellMatchesIteration(t *testing.T) {
	r := grid.New([]int{3, 4, 2}, 1)
	dst := make([]int, 3)
	n := 0
	for it := r.Begin(); it.Valid(); it.Next() {
		r.Cell(n, dst)
		require.Equal(t, it.Index(), dst)
		n++
	}
	assert.Equal(t, r.Total(), n)
}

func TestAllEarlyStop(t *testing.T) {
	r := grid.New([]int{10}, 1)
	seen := 0
	for range r.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestRangePanics(t *testing.T) {
	assert.Panics(t, func() { grid.New(nil, 1) })
	assert.Panics(t, func() { grid.New([]int{2, 0}, 1) })
	assert.Panics(t, func() { grid.New([]int{2}, 0) })
}
