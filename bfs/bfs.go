// Package bfs provides breadth-first search over a core.Network,
// returning fewest-leg distances, parent links, and visit order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/airroute/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	n     *core.Network
	opts  Options
	queue []core.AirportID
	res   *Result
}

// BFS runs breadth-first search on n starting from start, applying any
// number of functional Options.
// Returns ErrNetworkNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ctx errors on cancellation,
// or any user-supplied hook error.
func BFS(n *core.Network, start core.AirportID, opts ...Option) (*Result, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !n.Valid(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	// Prepare walker
	count := n.AirportCount()
	w := &walker{
		n:     n,
		opts:  o,
		queue: make([]core.AirportID, 0, count),
		res: &Result{
			Start:  start,
			Order:  make([]core.AirportID, 0, count),
			Legs:   make([]int, count),
			Parent: make([]core.AirportID, count),
		},
	}
	for i := range w.res.Legs {
		w.res.Legs[i] = Unreached
		w.res.Parent[i] = core.NoAirport
	}

	// Seed queue with start airport (no parent)
	w.enqueue(start, 0, core.NoAirport)

	return w.res, w.loop()
}

// enqueue marks id reached at the given leg count and records its parent.
func (w *walker) enqueue(id core.AirportID, legs int, parent core.AirportID) {
	w.res.Legs[id] = legs
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, u)
		if err := w.opts.OnVisit(u, w.res.Legs[u]); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		w.enqueueNeighbors(u)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxLegs, and enqueues each unseen
// destination in route insertion order.
func (w *walker) enqueueNeighbors(u core.AirportID) {
	next := w.res.Legs[u] + 1
	if w.opts.MaxLegs > 0 && next > w.opts.MaxLegs {
		return
	}
	w.n.ForRoutesFrom(u, func(r core.Route) {
		if !w.opts.FilterRoute(r) {
			return
		}
		// first time seen?
		if w.res.Legs[r.To] == Unreached {
			w.enqueue(r.To, next, u)
		}
	})
}

// FewestLegs returns the path from one code to another that uses the
// fewest routes, as airport codes. Unknown codes fail with
// core.ErrAirportNotFound; an unreachable destination fails with ErrNoPath.
func FewestLegs(n *core.Network, from, to string, opts ...Option) ([]string, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	src, err := n.Find(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, from)
	}
	dst, err := n.Find(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, to)
	}

	res, err := BFS(n, src, opts...)
	if err != nil {
		return nil, err
	}
	path, err := res.PathTo(dst)
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(path))
	for i, id := range path {
		codes[i] = n.Code(id)
	}

	return codes, nil
}
