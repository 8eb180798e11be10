package lds

import (
	"fmt"

	"github.com/pkg/errors"
)

// PrimeTable holds the first K primes and their prefix sums. Sum(i) is the
// total of the first i primes and is the offset of base i's permutation in
// the flat permutation array.
type PrimeTable struct {
	p   []uint32
	sum []uint32
}

// Build computes the first capacity primes by trial division. Calling Build
// on a table that is already built does nothing. If the second allocation
// fails the first one is released before the error is returned.
func (t *PrimeTable) Build(capacity int, alloc Allocator) error {
	if len(t.p) > 0 {
		return nil
	}
	if capacity < MinDimensions || capacity > MaxCapacity {
		panic(fmt.Sprintf("lds: prime table capacity %d outside [%d, %d]", capacity, MinDimensions, MaxCapacity))
	}

	p, err := alloc.AllocUint32(capacity)
	if err != nil {
		return errors.Wrap(err, "allocating primes")
	}
	sum, err := alloc.AllocUint32(capacity + 1)
	if err != nil {
		alloc.FreeUint32(p)
		return errors.Wrap(err, "allocating prime prefix sums")
	}

	p[0] = 2
	p[1] = 3
	i := 2
	for np := uint32(5); i < capacity; np += 2 {
		if isOddPrime(np) {
			p[i] = np
			i++
		}
	}

	sum[0] = 0
	for i := 1; i <= capacity; i++ {
		sum[i] = sum[i-1] + p[i-1]
	}

	t.p = p
	t.sum = sum
	return nil
}

// Teardown releases the storage and resets the table to empty.
func (t *PrimeTable) Teardown(alloc Allocator) {
	if t.p == nil {
		return
	}
	alloc.FreeUint32(t.p)
	alloc.FreeUint32(t.sum)
	t.p = nil
	t.sum = nil
}

// Len returns the number of primes.
func (t *PrimeTable) Len() int { return len(t.p) }

// Prime returns the i-th prime, starting with Prime(0) == 2.
func (t *PrimeTable) Prime(i int) uint32 { return t.p[i] }

// Sum returns the sum of the first i primes, for i in [0, Len()].
func (t *PrimeTable) Sum(i int) uint32 { return t.sum[i] }

func isOddPrime(n uint32) bool {
	for d := uint32(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
