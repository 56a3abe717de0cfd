package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/minheap"
)

// ShortestPath computes the minimum-distance path from src to dst over n,
// accumulating duration and cost along that path.
//
// Returns:
//
//   - res: per-airport distance/duration/cost and predecessors. With early
//     exit enabled (default) only airports extracted before dst, plus
//     their tentative neighbors, carry meaningful values.
//   - err: ErrNilNetwork or ErrInvalidNode; an unreachable dst is NOT an
//     error, it shows up as res.Distance[dst] == Infinity.
//
// Preconditions and validation (in order):
//  1. n must be non-nil (ErrNilNetwork).
//  2. src and dst must be valid identifiers (ErrInvalidNode).
//
// Complexity:
//
//   - Time:  O((V + E) log V), one extraction per airport at most and one
//     decrease-key per successful relaxation.
//   - Space: O(V) for the heap and result arrays.
func ShortestPath(n *core.Network, src, dst core.AirportID, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if n == nil {
		return nil, ErrNilNetwork
	}
	if !n.Valid(src) {
		return nil, fmt.Errorf("%w: source %d", ErrInvalidNode, src)
	}
	if !n.Valid(dst) {
		return nil, fmt.Errorf("%w: target %d", ErrInvalidNode, dst)
	}

	// 3) Allocate per-query state; nothing here outlives the call except res.
	V := n.AirportCount()
	r := &runner{
		n:       n,
		options: cfg,
		res: &Result{
			Source:   src,
			Target:   dst,
			Distance: make([]int64, V),
			Duration: make([]int64, V),
			Cost:     make([]int64, V),
			Prev:     make([]core.AirportID, V),
		},
		pq: minheap.New(V),
	}

	// 4) Initialize and run.
	if err := r.init(); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single ShortestPath execution.
type runner struct {
	n       *core.Network           // read-only during the run
	options Options                 // EarlyExit, MaxDistance
	res     *Result                 // arrays filled in place
	pq      *minheap.IndexedMinHeap // one entry per airport
}

// init sets every airport to (∞, ∞, ∞) with no predecessor, fills the heap at
// Infinity, and pulls the source to (0, 0, 0) with one decrease-key.
func (r *runner) init() error {
	res := r.res
	V := len(res.Distance)

	// 1) dist = dur = cost = ∞, prev = none.
	for v := 0; v < V; v++ {
		res.Distance[v] = Infinity
		res.Duration[v] = Infinity
		res.Cost[v] = Infinity
		res.Prev[v] = core.NoAirport
	}

	// 2) Source starts at zero.
	src := res.Source
	res.Distance[src] = 0
	res.Duration[src] = 0
	res.Cost[src] = 0

	// 3) Heap over every airport at ∞, then move the source to the root.
	r.pq.FillInfinite(V)
	if err := r.pq.DecreaseKey(int(src), 0, 0, 0); err != nil {
		return fmt.Errorf("dijkstra: seed source %d: %w", src, err)
	}

	return nil
}

// process is the main loop. It stops when:
//
//   - the target is extracted (early exit; its distance is final because
//     every remaining key is ≥ the extracted one and weights are ≥ 0),
//   - the heap is empty, or
//   - the smallest remaining key is Infinity (nothing left is reachable).
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		// 1) Pop the closest unsettled airport.
		item, err := r.pq.ExtractMin()
		if err != nil {
			return fmt.Errorf("dijkstra: extract: %w", err)
		}
		u := core.AirportID(item.Node)

		// 2) Early exit at the target.
		if r.options.EarlyExit && u == r.res.Target {
			return nil
		}

		// 3) Everything still queued is unreachable.
		if r.res.Distance[u] == Infinity {
			return nil
		}

		// 4) Relax outgoing routes.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor v of u that is still in the heap.
// A strict "<" comparison keeps the first-found predecessor on ties, so
// among parallel routes the effective weight is the minimum one.
func (r *runner) relax(u core.AirportID) error {
	res := r.res
	du := res.Distance[u]
	if du == Infinity {
		return nil
	}

	var err error
	r.n.ForRoutesFrom(u, func(e core.Route) {
		if err != nil {
			return
		}
		v := e.To
		if !r.pq.Contains(int(v)) {
			return // already settled
		}

		newDist := du + int64(e.Distance)
		if newDist > r.options.MaxDistance || newDist >= res.Distance[v] {
			return
		}

		res.Distance[v] = newDist
		res.Duration[v] = res.Duration[u] + int64(e.Duration)
		res.Cost[v] = res.Cost[u] + int64(e.Cost)
		res.Prev[v] = u

		if derr := r.pq.DecreaseKey(int(v), newDist, res.Duration[v], res.Cost[v]); derr != nil {
			err = fmt.Errorf("dijkstra: decrease-key %d: %w", v, derr)
		}
	})

	return err
}
