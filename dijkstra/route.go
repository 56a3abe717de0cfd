package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/airroute/core"
)

// Itinerary is a resolved, code-level answer to "how do I fly from A to B".
type Itinerary struct {
	From string
	To   string

	// Reachable is false when no sequence of routes connects From to To.
	// Codes and Totals are empty in that case.
	Reachable bool

	// Codes lists the airports on the path, From first.
	Codes []string

	Totals Totals
}

// FindRoute resolves two airport codes, runs ShortestPath and reconstructs
// the path. Codes are matched exactly; normalize them first.
//
// An unknown code fails with core.ErrAirportNotFound. An unreachable
// destination is reported through Itinerary.Reachable, not as an error.
func FindRoute(n *core.Network, from, to string, opts ...Option) (*Itinerary, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	src, err := n.Find(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, from)
	}
	dst, err := n.Find(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, to)
	}

	res, err := ShortestPath(n, src, dst, opts...)
	if err != nil {
		return nil, err
	}

	it := &Itinerary{From: from, To: to}
	totals, ok := res.Totals(dst)
	if !ok {
		return it, nil
	}

	path, err := Reconstruct(res, dst)
	if err != nil {
		return nil, err
	}
	it.Reachable = true
	it.Totals = totals
	it.Codes = make([]string, len(path))
	for i, id := range path {
		it.Codes[i] = n.Code(id)
	}

	return it, nil
}
