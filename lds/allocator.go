package lds

import (
	"sync"

	"github.com/pkg/errors"
)

// Allocator supplies the backing storage of the tables. Hosts can route
// allocations through an arena or a budget; a failed allocation is reported
// to the caller and never retried.
type Allocator interface {
	AllocUint32(n int) ([]uint32, error)
	AllocUint16(n int) ([]uint16, error)
	FreeUint32(s []uint32)
	FreeUint16(s []uint16)
}

// HeapAllocator allocates from the Go heap. Free is a no-op; the garbage
// collector reclaims the slices once the tables drop them.
type HeapAllocator struct{}

// AllocUint32 returns a zeroed slice of n uint32s.
func (HeapAllocator) AllocUint32(n int) ([]uint32, error) { return make([]uint32, n), nil }

// AllocUint16 returns a zeroed slice of n uint16s.
func (HeapAllocator) AllocUint16(n int) ([]uint16, error) { return make([]uint16, n), nil }

// FreeUint32 does nothing.
func (HeapAllocator) FreeUint32([]uint32) {}

// FreeUint16 does nothing.
func (HeapAllocator) FreeUint16([]uint16) {}

// BudgetAllocator allocates from the heap but refuses requests that would
// take the live total above Limit bytes.
type BudgetAllocator struct {
	Limit int

	mu   sync.Mutex
	used int
}

// NewBudgetAllocator returns an allocator capped at limit bytes.
func NewBudgetAllocator(limit int) *BudgetAllocator {
	return &BudgetAllocator{Limit: limit}
}

// Used returns the number of bytes currently allocated.
func (a *BudgetAllocator) Used() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.used
}

func (a *BudgetAllocator) reserve(bytes int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.used+bytes > a.Limit {
		return errors.Wrapf(ErrOutOfMemory, "budget %d bytes, in use %d, requested %d", a.Limit, a.used, bytes)
	}
	a.used += bytes
	return nil
}

func (a *BudgetAllocator) release(bytes int) {
	a.mu.Lock()
	a.used -= bytes
	a.mu.Unlock()
}

// AllocUint32 reserves 4n bytes of the budget and returns a zeroed slice.
// It fails with ErrOutOfMemory when the budget cannot cover the request.
func (a *BudgetAllocator) AllocUint32(n int) ([]uint32, error) {
	if err := a.reserve(4 * n); err != nil {
		return nil, err
	}
	return make([]uint32, n), nil
}

// AllocUint16 reserves 2n bytes of the budget and returns a zeroed slice.
func (a *BudgetAllocator) AllocUint16(n int) ([]uint16, error) {
	if err := a.reserve(2 * n); err != nil {
		return nil, err
	}
	return make([]uint16, n), nil
}

// FreeUint32 returns the bytes of s to the budget.
func (a *BudgetAllocator) FreeUint32(s []uint32) { a.release(4 * len(s)) }

// FreeUint16 returns the bytes of s to the budget.
func (a *BudgetAllocator) FreeUint16(s []uint16) { a.release(2 * len(s)) }
