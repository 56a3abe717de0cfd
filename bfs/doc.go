// Package bfs provides breadth-first search over a core.Network, answering
// "how few flights does it take" rather than "how far is it".
//
// What
//
//   - Explore airports in non-decreasing leg count from a start airport.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Legs: airport → number of routes from the start (Unreached if never seen)
//   - Parent: airport → predecessor in the BFS tree
//   - OnVisit hook (may abort with an error).
//   - Route filtering via WithFilterRoute (e.g. skip long legs).
//   - MaxLegs limit (d>0) or no limit (d==0).
//
// Determinism
//
//	Routes are followed in insertion order, so the visit sequence and the
//	chosen path among equally short ones are reproducible.
//
// Complexity (V = airports, E = routes)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	codes, err := bfs.FewestLegs(n, "DEL", "COK")
//
//	res, err := bfs.BFS(n, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxLegs(2),
//	    bfs.WithFilterRoute(func(r core.Route) bool { return r.Duration <= 120 }),
//	)
//
// Errors
//
//   - ErrNetworkNil       if the network pointer is nil.
//   - ErrStartNotFound    if the start identifier is invalid.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxLegs).
//   - ErrNoPath           from PathTo and FewestLegs for unreached airports.
//   - Wrapped hook errors from OnVisit.
package bfs
