// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Network.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/airroute/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start identifier is outside the airport table.
	ErrStartNotFound = errors.New("bfs: start airport not found")

	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("bfs: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for an airport the search did not reach.
	ErrNoPath = errors.New("bfs: no path")
)

// Unreached is the Legs value of an airport the search did not reach.
const Unreached = -1

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting an airport with its leg count from
	// the start. If it returns an error, BFS aborts and propagates it.
	OnVisit func(id core.AirportID, legs int) error

	// MaxLegs, if > 0, stops exploring beyond this many legs.
	// A value of 0 disables the limit.
	MaxLegs int

	// FilterRoute can skip routes by returning false.
	FilterRoute func(r core.Route) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no leg limit (MaxLegs == 0)
//   - no filtering (all routes allowed)
//   - a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnVisit:     func(core.AirportID, int) error { return nil },
		FilterRoute: func(core.Route) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id core.AirportID, legs int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxLegs stops the search after d legs.
//
//	d > 0: limit to d legs
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxLegs(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxLegs cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxLegs = d
	}
}

// WithFilterRoute skips routes for which fn returns false.
func WithFilterRoute(fn func(r core.Route) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterRoute = fn
		}
	}
}

// Result holds the outcome of a BFS traversal, indexed by AirportID:
//   - Order: airports visited, in visit sequence.
//   - Legs: number of routes from the start, or Unreached.
//   - Parent: predecessor in the BFS tree, core.NoAirport for the start
//     and for unreached airports.
type Result struct {
	Start  core.AirportID
	Order  []core.AirportID
	Legs   []int
	Parent []core.AirportID
}

// Reached reports whether id was visited.
func (r *Result) Reached(id core.AirportID) bool {
	return id >= 0 && int(id) < len(r.Legs) && r.Legs[id] != Unreached
}

// PathTo reconstructs the path from the start airport to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest core.AirportID) ([]core.AirportID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	// build reversed path
	path := make([]core.AirportID, 0, r.Legs[dest]+1)
	for cur := dest; cur != core.NoAirport; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
