// Package minheap provides an indexed binary min-heap with decrease-key,
// the priority queue behind the airroute shortest-path engine.
//
// Unlike container/heap with a "lazy decrease-key" (push duplicates, skip
// stale entries), IndexedMinHeap keeps exactly one entry per node identifier
// 0..n-1 and a dense position index, so any entry can be located in O(1)
// and re-prioritized in O(log n).
//
// Complexity:
//
//   - FillInfinite: O(n)  (direct placement, every key = Infinity)
//   - ExtractMin:   O(log n)
//   - DecreaseKey:  O(log n)
//   - Contains:     O(1)
//   - Space:        O(n) for entries + O(n) for positions
//
// Invariants:
//
//   - For every slot i in the live range [0, Len()) with children 2i+1, 2i+2
//     also in range: key(i) ≤ key(child).
//   - position[entries[i].Node] == i for every slot i in [0, n).
//   - An extracted node keeps a position ≥ Len(), which is what Contains tests.
//
// Tie-break: comparisons are strict (<). Equal keys never swap, and during
// sift-down the left child wins a tie between two children.
//
// Errors (sentinel):
//
//   - ErrEmptyHeap  ExtractMin or Peek on an empty heap.
//   - ErrNotInHeap  DecreaseKey for a node outside the range or already extracted.
//
// Example:
//
//	h := minheap.New(3)
//	h.FillInfinite(3)
//	_ = h.DecreaseKey(2, 5, 0, 0)
//	e, _ := h.ExtractMin() // e.Node == 2, e.Distance == 5
package minheap
