package minheap

import (
	"errors"
	"math"
)

// Infinity marks a key that has not been reached yet. It is larger than any
// sum of uint32 weights along a path of fewer than 2^31 legs.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by IndexedMinHeap.
var (
	// ErrEmptyHeap indicates ExtractMin or Peek was called with no live entries.
	ErrEmptyHeap = errors.New("minheap: heap is empty")

	// ErrNotInHeap indicates DecreaseKey referenced a node that is out of range
	// or has already been extracted.
	ErrNotInHeap = errors.New("minheap: node not in heap")
)

// Entry is one heap record: the node and its (distance, duration, cost) triple.
// Only Distance participates in ordering; Duration and Cost ride along.
type Entry struct {
	Node     int
	Distance int64
	Duration int64
	Cost     int64
}

// IndexedMinHeap is a binary min-heap keyed by Entry.Distance with a dense
// position index over node identifiers.
//
// The zero value is an empty heap with zero capacity; use New.
// Not safe for concurrent use.
type IndexedMinHeap struct {
	entries  []Entry // slot → entry; [0,size) is the live range
	position []int   // node → slot
	size     int
}

// New allocates a heap with capacity for exactly n entries. It starts empty.
func New(n int) *IndexedMinHeap {
	if n < 0 {
		n = 0
	}

	return &IndexedMinHeap{
		entries:  make([]Entry, 0, n),
		position: make([]int, 0, n),
	}
}

// FillInfinite resets the heap to hold one entry per node 0..n-1, every key
// at Infinity, with position[v] == v. Runs in O(n) with no sifting: an array
// of equal keys is already a valid heap.
func (h *IndexedMinHeap) FillInfinite(n int) {
	if n < 0 {
		n = 0
	}
	if cap(h.entries) < n {
		h.entries = make([]Entry, n)
		h.position = make([]int, n)
	} else {
		h.entries = h.entries[:n]
		h.position = h.position[:n]
	}

	for v := 0; v < n; v++ {
		h.entries[v] = Entry{Node: v, Distance: Infinity, Duration: Infinity, Cost: Infinity}
		h.position[v] = v
	}
	h.size = n
}

// Len returns the number of live entries.
func (h *IndexedMinHeap) Len() int { return h.size }

// Cap returns the number of node identifiers the heap can index without
// reallocating.
func (h *IndexedMinHeap) Cap() int { return cap(h.entries) }

// IsEmpty reports whether no live entries remain.
func (h *IndexedMinHeap) IsEmpty() bool { return h.size == 0 }

// Contains reports whether node is still live (not yet extracted).
func (h *IndexedMinHeap) Contains(node int) bool {
	if node < 0 || node >= len(h.position) {
		return false
	}

	return h.position[node] < h.size
}

// Peek returns the minimum entry without removing it.
func (h *IndexedMinHeap) Peek() (Entry, error) {
	if h.size == 0 {
		return Entry{}, ErrEmptyHeap
	}

	return h.entries[0], nil
}

// ExtractMin removes and returns the entry with the smallest Distance.
//
// Steps:
//  1. Swap the root with the last live slot and fix both positions.
//  2. Shrink the live range; the old root now sits just outside it.
//  3. Sift the new root down.
func (h *IndexedMinHeap) ExtractMin() (Entry, error) {
	if h.size == 0 {
		return Entry{}, ErrEmptyHeap
	}

	last := h.size - 1
	h.swap(0, last)
	h.size--
	h.siftDown(0)

	return h.entries[last], nil
}

// DecreaseKey lowers node's key to distance and replaces its secondary
// values, then sifts the entry up. Calling it with a larger distance than the
// current one breaks the heap invariant and is not supported.
func (h *IndexedMinHeap) DecreaseKey(node int, distance, duration, cost int64) error {
	if !h.Contains(node) {
		return ErrNotInHeap
	}

	i := h.position[node]
	h.entries[i].Distance = distance
	h.entries[i].Duration = duration
	h.entries[i].Cost = cost
	h.siftUp(i)

	return nil
}

func (h *IndexedMinHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.entries[i].Distance >= h.entries[parent].Distance {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *IndexedMinHeap) siftDown(i int) {
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < h.size && h.entries[left].Distance < h.entries[smallest].Distance {
			smallest = left
		}
		if right < h.size && h.entries[right].Distance < h.entries[smallest].Distance {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges two slots and keeps the position index in step.
func (h *IndexedMinHeap) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.position[h.entries[i].Node] = i
	h.position[h.entries[j].Node] = j
}
