// Package dijkstra implements single-source shortest paths over a
// core.Network, optimizing distance and carrying duration and cost along.
//
// Overview:
//
//   - ShortestPath runs Dijkstra's algorithm with an indexed binary min-heap
//     (minheap.IndexedMinHeap): every airport enters the heap once at
//     Infinity and is re-prioritized in place by decrease-key, so the heap
//     never holds stale duplicates.
//   - The search stops as soon as the target is extracted. Its distance is
//     final at that point because weights are non-negative.
//   - Duration and cost are not minimized. They are whatever accrues along
//     the distance-optimal path.
//   - Reconstruct walks the predecessor array back from a target.
//   - FindRoute wraps code resolution, search and reconstruction.
//
// Algorithm:
//
//  1. dist/dur/cost = ∞ and prev = none for every airport; source = (0,0,0).
//  2. Heap filled with every airport at ∞; one decrease-key moves the source up.
//  3. Extract-min. Stop at the target, on an empty heap, or when the minimum is ∞.
//  4. For each route u→v with v still in the heap and dist[u]+d < dist[v]:
//     update dist/dur/cost/prev of v and decrease-key v.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V), all per-query and released when the call returns.
//
// Unreachable targets:
//
//	Not an error. Result.Distance[dst] stays Infinity, Result.Reachable(dst)
//	is false, and FindRoute returns an Itinerary with Reachable == false.
//
// Concurrency:
//
//	ShortestPath only reads the network, so concurrent queries are safe as
//	long as nothing mutates the network meanwhile.
//
// Example usage:
//
//	it, err := dijkstra.FindRoute(n, "DEL", "COK")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if it.Reachable {
//	    fmt.Println(strings.Join(it.Codes, " -> "), it.Totals.Distance)
//	}
package dijkstra
