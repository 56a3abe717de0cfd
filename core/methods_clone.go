// File: methods_clone.go
// Role: Cloning network instances.
// Determinism:
//   - Clone preserves identifiers and adjacency order.

package core

// Clone returns a deep copy of the network: configuration, airports, index,
// and adjacency lists. Mutating the clone never affects the original.
//
// Complexity: O(A + R).
func (n *Network) Clone() *Network {
	clone := NewNetwork(n.Options()...)
	clone.airports = make([]Airport, len(n.airports))
	copy(clone.airports, n.airports)

	clone.adjacency = make([][]Route, len(n.adjacency))
	for id, list := range n.adjacency {
		if len(list) == 0 {
			continue
		}
		clone.adjacency[id] = make([]Route, len(list))
		copy(clone.adjacency[id], list)
	}

	for code, id := range n.index {
		clone.index[code] = id
	}
	clone.routeCount = n.routeCount

	return clone
}
