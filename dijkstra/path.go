package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/airroute/core"
)

// Reconstruct returns the airports on the shortest path from res.Source to
// dst, source first.
//
// It follows res.Prev backwards from dst until it meets core.NoAirport, then
// reverses. The walk is bounded by len(res.Prev) steps, so a corrupt chain
// yields ErrBrokenChain instead of looping.
//
// Errors:
//   - ErrInvalidNode if dst is outside the result.
//   - ErrUnreachable if res.Distance[dst] is Infinity.
//   - ErrBrokenChain if the chain does not end at res.Source.
//
// Reconstruct only reads res; calling it repeatedly yields identical slices.
func Reconstruct(res *Result, dst core.AirportID) ([]core.AirportID, error) {
	if res == nil || !res.valid(dst) {
		return nil, fmt.Errorf("%w: target %d", ErrInvalidNode, dst)
	}
	if res.Distance[dst] == Infinity {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dst)
	}

	path := make([]core.AirportID, 0, 8)
	cur := dst
	for steps := 0; cur != core.NoAirport; steps++ {
		if steps >= len(res.Prev) || !res.valid(cur) {
			return nil, ErrBrokenChain
		}
		path = append(path, cur)
		cur = res.Prev[cur]
	}
	if path[len(path)-1] != res.Source {
		return nil, fmt.Errorf("%w: chain ends at %d, source is %d", ErrBrokenChain, path[len(path)-1], res.Source)
	}

	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
