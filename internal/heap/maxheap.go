// Package heap provides a bounded max-heap for k-nearest-neighbor tracking.
package heap

import "math"

// MaxHeap keeps the k smallest distances pushed into it. The largest kept
// distance is always at the root (index 0).
type MaxHeap struct {
	Indices   []int32
	Distances []float64
	Size      int
	K         int
}

// New creates a new max-heap with capacity k.
func New(k int) *MaxHeap {
	h := &MaxHeap{
		Indices:   make([]int32, k),
		Distances: make([]float64, k),
		K:         k,
	}
	h.Reset()
	return h
}

// MaxDist returns the largest kept distance, or +Inf while the heap has
// free slots. A heap with no capacity keeps nothing and returns -Inf, so no
// distance compares below it.
func (h *MaxHeap) MaxDist() float64 {
	if h.K == 0 {
		return math.Inf(-1)
	}
	return h.Distances[0]
}

// Push offers a neighbor to the heap. It returns true if the neighbor was
// kept, that is if it is closer than the current worst.
func (h *MaxHeap) Push(idx int32, dist float64) bool {
	if h.K == 0 || dist >= h.Distances[0] {
		return false
	}

	h.Distances[0] = dist
	h.Indices[0] = idx
	h.siftDown(0, h.K)

	if h.Size < h.K {
		h.Size++
	}
	return true
}

// siftDown restores the heap property below i within the first n entries.
func (h *MaxHeap) siftDown(i, n int) {
	for {
		left := 2*i + 1
		right := 2*i + 2

		if left >= n {
			break
		}

		swap := i
		if h.Distances[left] > h.Distances[swap] {
			swap = left
		}
		if right < n && h.Distances[right] > h.Distances[swap] {
			swap = right
		}

		if swap == i {
			break
		}

		h.Distances[i], h.Distances[swap] = h.Distances[swap], h.Distances[i]
		h.Indices[i], h.Indices[swap] = h.Indices[swap], h.Indices[i]
		i = swap
	}
}

// Sort converts the heap to ascending order by distance. Unfilled slots
// (index -1, distance +Inf) end up last. After sorting, the heap property
// no longer holds.
func (h *MaxHeap) Sort() {
	for i := h.K - 1; i > 0; i-- {
		h.Distances[0], h.Distances[i] = h.Distances[i], h.Distances[0]
		h.Indices[0], h.Indices[i] = h.Indices[i], h.Indices[0]
		h.siftDown(0, i)
	}
}

// Reset clears the heap.
func (h *MaxHeap) Reset() {
	for i := range h.K {
		h.Indices[i] = -1
		h.Distances[i] = math.Inf(1)
	}
	h.Size = 0
}
