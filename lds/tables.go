package lds

import (
	"fmt"

	"github.com/nozzle/sampling/rng"
	"github.com/nozzle/sampling/uniform"
)

// Tables owns a prime table and the permutation table sliced by it.
type Tables struct {
	primes PrimeTable
	perms  PermutationTable
	alloc  Allocator
}

type tablesOptions struct {
	alloc     Allocator
	generator uniform.Generator
}

// Option configures NewTables.
type Option func(*tablesOptions)

// WithAllocator routes table storage through alloc.
func WithAllocator(alloc Allocator) Option {
	return func(o *tablesOptions) { o.alloc = alloc }
}

// WithGenerator scrambles the permutations with g instead of the default
// PCG32 stream. The default makes the scrambling identical across runs.
func WithGenerator(g uniform.Generator) Option {
	return func(o *tablesOptions) { o.generator = g }
}

// NewTables builds the first capacity primes and their permutations. On
// error nothing stays allocated. It panics if capacity is outside
// [MinDimensions, MaxCapacity].
func NewTables(capacity int, opts ...Option) (*Tables, error) {
	o := tablesOptions{alloc: HeapAllocator{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.generator == nil {
		o.generator = rng.NewPCG32()
	}

	t := &Tables{alloc: o.alloc}
	if err := t.primes.Build(capacity, o.alloc); err != nil {
		return nil, err
	}
	if err := t.perms.Build(&t.primes, o.generator, o.alloc); err != nil {
		t.primes.Teardown(o.alloc)
		return nil, err
	}
	return t, nil
}

// Close releases both tables. Samplers built on t must not be used after.
func (t *Tables) Close() {
	t.perms.Teardown(t.alloc)
	t.primes.Teardown(t.alloc)
}

// Len returns the number of dimensions (prime bases) available.
func (t *Tables) Len() int { return t.primes.Len() }

// Prime returns the base used by dimension dim.
func (t *Tables) Prime(dim int) uint32 { return t.primes.Prime(dim) }

// Permutation returns the digit permutation of dimension dim.
func (t *Tables) Permutation(dim int) []uint16 { return t.perms.Slice(dim) }

// Primes exposes the prime table.
func (t *Tables) Primes() *PrimeTable { return &t.primes }

// Permutations exposes the permutation table.
func (t *Tables) Permutations() *PermutationTable { return &t.perms }

// CheckDims panics unless dimensions [base, base+n) all exist.
func (t *Tables) CheckDims(base, n int) {
	if base < 0 || n < 0 || base+n > t.Len() {
		panic(fmt.Sprintf("lds: dimensions [%d, %d) outside the %d built", base, base+n, t.Len()))
	}
}
