// File: methods_routes.go
// Role: Route lifecycle & queries.
//
// Determinism:
//   - RoutesFrom() returns routes in insertion order.
//   - Routes() groups by source identifier ascending, insertion order within a group.

package core

import "fmt"

// AddRoute adds a directed route src → dst.
//
// Steps:
//  1. Resolve both codes; an unknown code fails with ErrUnknownEndpoint
//     and the network is left untouched.
//  2. With WithPositiveWeights, reject any zero weight (ErrBadWeight).
//  3. Append the route to the source's adjacency list.
//
// Parallel routes and self-loops are accepted.
// Complexity: O(1) amortized.
func (n *Network) AddRoute(src, dst string, distance, duration, cost uint32) error {
	from, ok := n.index[src]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEndpoint, src)
	}
	to, ok := n.index[dst]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEndpoint, dst)
	}

	if n.positiveWeights && (distance == 0 || duration == 0 || cost == 0) {
		return fmt.Errorf("%w: %s→%s (%d, %d, %d)", ErrBadWeight, src, dst, distance, duration, cost)
	}

	n.adjacency[from] = append(n.adjacency[from], Route{
		From:     from,
		To:       to,
		Distance: distance,
		Duration: duration,
		Cost:     cost,
	})
	n.routeCount++

	return nil
}

// RoutesFrom returns a copy of the routes leaving id. The result is empty
// when id has no outgoing routes or is not a valid identifier.
func (n *Network) RoutesFrom(id AirportID) []Route {
	if !n.Valid(id) || len(n.adjacency[id]) == 0 {
		return nil
	}
	out := make([]Route, len(n.adjacency[id]))
	copy(out, n.adjacency[id])

	return out
}

// ForRoutesFrom calls fn for each route leaving id without copying the
// adjacency list. fn must not mutate the network.
func (n *Network) ForRoutesFrom(id AirportID, fn func(Route)) {
	if !n.Valid(id) {
		return
	}
	for _, r := range n.adjacency[id] {
		fn(r)
	}
}

// Routes returns every route, grouped by source identifier.
func (n *Network) Routes() []Route {
	out := make([]Route, 0, n.routeCount)
	for _, list := range n.adjacency {
		out = append(out, list...)
	}

	return out
}

// RouteCount returns the number of routes.
func (n *Network) RouteCount() int { return n.routeCount }
