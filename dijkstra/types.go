// Package dijkstra defines the result types, sentinel errors and
// configuration options for the flight-network shortest-path engine.
//
// Options:
//
//	– EarlyExit:   stop as soon as the target is extracted (default true).
//	– MaxDistance: optional cap; airports farther than this stay unreached.
//
// Errors (sentinel):
//
//	– ErrNilNetwork      if the network pointer is nil.
//	– ErrInvalidNode     if source or target is outside the airport table.
//	– ErrUnreachable     if a path is requested for an unreached airport.
//	– ErrBrokenChain     if a predecessor chain does not lead back to the source.
//	– ErrBadMaxDistance  if MaxDistance < 0.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/minheap"
)

// Infinity is the distance (and duration, cost) of an airport that was not reached.
const Infinity = minheap.Infinity

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrNilNetwork indicates that a nil *core.Network was passed.
	ErrNilNetwork = errors.New("dijkstra: network is nil")

	// ErrInvalidNode indicates a source or target identifier outside the airport table.
	// Callers resolve codes with core.Network.Find before querying.
	ErrInvalidNode = errors.New("dijkstra: airport id out of range")

	// ErrUnreachable indicates a path was requested for an airport with infinite distance.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")

	// ErrBrokenChain indicates the predecessor chain loops or ends away from the source.
	ErrBrokenChain = errors.New("dijkstra: predecessor chain does not reach source")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Totals is the accumulated (distance, duration, cost) triple of a path.
type Totals struct {
	Distance int64
	Duration int64
	Cost     int64
}

// Result holds the outcome of one ShortestPath call.
//
// Distance, Duration, Cost and Prev are indexed by core.AirportID. An airport
// that was not reached has Distance == Infinity and Prev == core.NoAirport.
// Duration and Cost are the sums along the distance-optimal path, not
// independently minimized. A Result is never modified after it is returned.
type Result struct {
	Source core.AirportID
	Target core.AirportID

	Distance []int64
	Duration []int64
	Cost     []int64
	Prev     []core.AirportID
}

// Reachable reports whether id received a finite distance.
func (r *Result) Reachable(id core.AirportID) bool {
	return r.valid(id) && r.Distance[id] != Infinity
}

// Totals returns the accumulated triple for id and whether id was reached.
func (r *Result) Totals(id core.AirportID) (Totals, bool) {
	if !r.Reachable(id) {
		return Totals{Distance: Infinity, Duration: Infinity, Cost: Infinity}, false
	}

	return Totals{Distance: r.Distance[id], Duration: r.Duration[id], Cost: r.Cost[id]}, true
}

// Path is shorthand for Reconstruct(r, dst).
func (r *Result) Path(dst core.AirportID) ([]core.AirportID, error) {
	return Reconstruct(r, dst)
}

func (r *Result) valid(id core.AirportID) bool {
	return id >= 0 && int(id) < len(r.Distance)
}

// Options configures the behavior of ShortestPath.
//
// EarlyExit   – stop once the target is finalized. Disabling it runs the
//
//	search to exhaustion; the target's distance is identical either way.
//
// MaxDistance – airports whose distance would exceed this value are not
//
//	relaxed. Must be ≥ 0. Default is Infinity (no cap).
type Options struct {
	EarlyExit   bool
	MaxDistance int64
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithoutEarlyExit makes ShortestPath settle every reachable airport instead
// of stopping at the target.
func WithoutEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = false
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the defaults: early exit on, no distance cap.
func DefaultOptions() Options {
	return Options{
		EarlyExit:   true,
		MaxDistance: Infinity,
	}
}
