package lds_test

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nozzle/sampling/lds"
	"github.com/nozzle/sampling/rng"
)

func TestPrimeTable(t *testing.T) {
	var pt lds.PrimeTable
	require.NoError(t, pt.Build(10, lds.HeapAllocator{}))

	want := []uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	require.Equal(t, len(want), pt.Len())
	var sum uint32
	for i, p := range want {
		assert.Equal(t, p, pt.Prime(i))
		assert.Equal(t, sum, pt.Sum(i))
		sum += p
	}
	assert.Equal(t, sum, pt.Sum(10))

	// A second build keeps the existing table.
	require.NoError(t, pt.Build(20, lds.HeapAllocator{}))
	assert.Equal(t, 10, pt.Len())

	pt.Teardown(lds.HeapAllocator{})
	assert.Zero(t, pt.Len())
}

func TestPrimeTableLargest(t *testing.T) {
	var pt lds.PrimeTable
	require.NoError(t, pt.Build(lds.MaxCapacity, lds.HeapAllocator{}))
	assert.Equal(t, uint32(65521), pt.Prime(lds.MaxCapacity-1))
	for i := 1; i < pt.Len(); i++ {
		require.Less(t, pt.Prime(i-1), pt.Prime(i))
	}
	assert.Panics(t, func() {
		var other lds.PrimeTable
		_ = other.Build(lds.MaxCapacity+1, lds.HeapAllocator{})
	})
	assert.Panics(t, func() {
		var other lds.PrimeTable
		_ = other.Build(1, lds.HeapAllocator{})
	})
}

func TestPrimeTableRollback(t *testing.T) {
	// 10 primes take 40 bytes and their prefix sums another 44.
	alloc := lds.NewBudgetAllocator(60)
	var pt lds.PrimeTable
	err := pt.Build(10, alloc)
	require.Error(t, err)
	assert.Equal(t, lds.ErrOutOfMemory, errors.Cause(err))
	assert.Zero(t, alloc.Used())
	assert.Zero(t, pt.Len())
}

func TestNewTablesRollback(t *testing.T) {
	// Enough for the primes (84 bytes) but not the 129 uint16 digits.
	alloc := lds.NewBudgetAllocator(200)
	tables, err := lds.NewTables(10, lds.WithAllocator(alloc))
	require.Error(t, err)
	assert.Nil(t, tables)
	assert.ErrorIs(t, err, lds.ErrOutOfMemory)
	assert.Zero(t, alloc.Used())
}

func TestNewTablesBudgetFits(t *testing.T) {
	alloc := lds.NewBudgetAllocator(84 + 258)
	tables, err := lds.NewTables(10, lds.WithAllocator(alloc))
	require.NoError(t, err)
	assert.Equal(t, 84+258, alloc.Used())
	tables.Close()
	assert.Zero(t, alloc.Used())
}

func TestPermutationsRequirePrimes(t *testing.T) {
	var pt lds.PrimeTable
	var perms lds.PermutationTable
	err := perms.Build(&pt, rng.NewPCG32(), lds.HeapAllocator{})
	assert.Equal(t, lds.ErrPrimesNotBuilt, err)
}

func TestPermutationsAreBijections(t *testing.T) {
	tables, err := lds.NewTables(lds.MaxDimensions)
	require.NoError(t, err)
	defer tables.Close()

	shuffled := 0
	for dim := 0; dim < tables.Len(); dim++ {
		p := int(tables.Prime(dim))
		perm := tables.Permutation(dim)
		require.Len(t, perm, p)
		require.Zero(t, perm[0], "dimension %d", dim)

		sorted := slices.Clone(perm)
		slices.Sort(sorted)
		for j, v := range sorted {
			require.Equal(t, uint16(j), v, "dimension %d", dim)
		}

		identity := true
		for j, v := range perm {
			if int(v) != j {
				identity = false
				break
			}
		}
		if dim < 2 {
			assert.True(t, identity, "dimension %d must not be scrambled", dim)
		} else if !identity {
			shuffled++
		}
	}
	assert.Greater(t, shuffled, tables.Len()-4)
}

func TestTablesDeterministic(t *testing.T) {
	a, err := lds.NewTables(32)
	require.NoError(t, err)
	b, err := lds.NewTables(32)
	require.NoError(t, err)
	for dim := 0; dim < 32; dim++ {
		require.Equal(t, a.Permutation(dim), b.Permutation(dim))
	}

	c, err := lds.NewTables(32, lds.WithGenerator(rng.NewPCG32Seeded(1)))
	require.NoError(t, err)
	assert.NotEqual(t, a.Permutation(20), c.Permutation(20))
}

func TestCheckDims(t *testing.T) {
	tables, err := lds.NewTables(8)
	require.NoError(t, err)
	assert.NotPanics(t, func() { tables.CheckDims(2, 6) })
	assert.Panics(t, func() { tables.CheckDims(3, 6) })
	assert.Panics(t, func() { tables.CheckDims(-1, 1) })
}

func TestAllocators(t *testing.T) {
	var heap lds.HeapAllocator
	u32, err := heap.AllocUint32(5)
	require.NoError(t, err)
	assert.Len(t, u32, 5)
	heap.FreeUint32(u32)

	budget := lds.NewBudgetAllocator(10)
	u16, err := budget.AllocUint16(3)
	require.NoError(t, err)
	assert.Equal(t, 6, budget.Used())
	_, err = budget.AllocUint32(2)
	assert.ErrorIs(t, err, lds.ErrOutOfMemory)
	budget.FreeUint16(u16)
	assert.Zero(t, budget.Used())
}
