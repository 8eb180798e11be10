package lds

import (
	"github.com/pkg/errors"

	"github.com/nozzle/sampling/shuffle"
	"github.com/nozzle/sampling/uniform"
)

// PermutationTable stores one digit permutation per prime base in a single
// flat array sliced by the prime prefix sums. Every permutation maps 0 to 0.
// Bases 2 and 3 keep the identity: their sequences are well distributed
// without scrambling.
type PermutationTable struct {
	p   []uint16
	sum []uint32
}

// Build fills the table for every prime in primes, shuffling digits
// [1, p) of each base past the first two with g. Calling Build on a table
// that is already built does nothing.
func (t *PermutationTable) Build(primes *PrimeTable, g uniform.Generator, alloc Allocator) error {
	if len(t.p) > 0 {
		return nil
	}
	if primes.Len() == 0 {
		return ErrPrimesNotBuilt
	}

	n := primes.Sum(primes.Len())
	p, err := alloc.AllocUint16(int(n))
	if err != nil {
		return errors.Wrap(err, "allocating permutations")
	}

	for i := 0; i < primes.Len(); i++ {
		slice := p[primes.Sum(i):primes.Sum(i+1)]
		for j := range slice {
			slice[j] = uint16(j)
		}
		if i >= 2 {
			shuffle.Slice(g, slice[1:])
		}
	}

	t.p = p
	t.sum = primes.sum
	return nil
}

// Teardown releases the storage and resets the table to empty.
func (t *PermutationTable) Teardown(alloc Allocator) {
	if t.p == nil {
		return
	}
	alloc.FreeUint16(t.p)
	t.p = nil
	t.sum = nil
}

// Len returns the total number of stored digits.
func (t *PermutationTable) Len() int { return len(t.p) }

// Slice returns the permutation of base i. The result must not be modified.
func (t *PermutationTable) Slice(i int) []uint16 {
	return t.p[t.sum[i]:t.sum[i+1]:t.sum[i+1]]
}
