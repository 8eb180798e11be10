// Package shuffle permutes slices in place with Fisher–Yates style swaps
// driven by any uniform.Generator.
//
// Every variant visits positions 0..count-1 and swaps position i with a
// position drawn uniformly from the whole range [0, count). This is not the
// narrowing [i, count) form, so permutations are not exactly uniform and a
// seeded run does not match implementations that narrow. Runs seeded here
// depend on this draw sequence and change if it is switched.
package shuffle

import (
	"math"

	"github.com/nozzle/sampling/uniform"
)

// Slice permutes s.
func Slice[T any, G uniform.Generator](g G, s []T) {
	count := checkedCount(len(s))
	for i := uint32(0); i < count; i++ {
		r := uniform.Bounded32(g, count)
		s[i], s[r] = s[r], s[i]
	}
}

// Blocks permutes s as a sequence of len(s)/block items of block contiguous
// elements each. Elements inside a block keep their order. A trailing
// partial block is left in place.
func Blocks[T any, G uniform.Generator](g G, s []T, block int) {
	if block <= 0 {
		panic("shuffle: block size must be positive")
	}
	count := checkedCount(len(s) / block)
	for i := uint32(0); i < count; i++ {
		r := uniform.Bounded32(g, count)
		swapBlocks(s, int(i)*block, int(r)*block, block)
	}
}

// Inner treats s as len(s)/block records of block fields and permutes each
// field column independently: field j of every record is shuffled with its
// own draws, one full pass per field.
func Inner[T any, G uniform.Generator](g G, s []T, block int) {
	if block <= 0 {
		panic("shuffle: block size must be positive")
	}
	count := checkedCount(len(s) / block)
	for j := 0; j < block; j++ {
		for i := uint32(0); i < count; i++ {
			r := uniform.Bounded32(g, count)
			a, b := int(i)*block+j, int(r)*block+j
			s[a], s[b] = s[b], s[a]
		}
	}
}

// Column permutes field col across rows, leaving the other fields in place.
// This is the per-dimension pass used for row-of-vectors sample layouts.
func Column[T any, G uniform.Generator](g G, rows [][]T, col int) {
	count := checkedCount(len(rows))
	for i := uint32(0); i < count; i++ {
		r := uniform.Bounded32(g, count)
		rows[i][col], rows[r][col] = rows[r][col], rows[i][col]
	}
}

func swapBlocks[T any](s []T, a, b, block int) {
	if a == b {
		return
	}
	for j := 0; j < block; j++ {
		s[a+j], s[b+j] = s[b+j], s[a+j]
	}
}

func checkedCount(n int) uint32 {
	if uint64(n) > math.MaxUint32 {
		panic("shuffle: more than 2^32-1 items")
	}
	return uint32(n)
}
