// Package core defines the Network, Airport, and Route types, the
// NetworkOption constructors, and the package's sentinel errors.
package core

import "errors"

// Sentinel errors for core network operations.
var (
	// ErrEmptyCode indicates an airport code is the empty string.
	ErrEmptyCode = errors.New("core: airport code is empty")

	// ErrBadCode indicates an airport code is not 2–3 characters long.
	ErrBadCode = errors.New("core: airport code must be 2-3 characters")

	// ErrCapacityExceeded indicates the airport table reached its configured maximum.
	ErrCapacityExceeded = errors.New("core: maximum number of airports reached")

	// ErrAirportNotFound indicates a code lookup found no airport.
	ErrAirportNotFound = errors.New("core: airport not found")

	// ErrUnknownEndpoint indicates a route referenced an airport code that does not exist.
	ErrUnknownEndpoint = errors.New("core: route endpoint not found")

	// ErrInvalidAirport indicates an AirportID outside the airport table.
	ErrInvalidAirport = errors.New("core: airport id out of range")

	// ErrBadWeight indicates a zero weight on a network that requires positive weights.
	ErrBadWeight = errors.New("core: route weights must be positive")
)

// DefaultMaxAirports is the airport capacity of a Network built without WithMaxAirports.
const DefaultMaxAirports = 100

// AirportID identifies an airport by its position in the airport table.
type AirportID int

// NoAirport is the "none" identifier, used as the predecessor of a path's source.
const NoAirport AirportID = -1

// Airport is a node of the network.
type Airport struct {
	// ID is the airport's index in the table.
	ID AirportID

	// Code is the unique short code (e.g. "DEL").
	Code string

	// Name is the display name.
	Name string
}

// Route is a directed flight leg From → To.
//
// Distance is the optimization key; Duration and Cost are carried along.
type Route struct {
	From     AirportID
	To       AirportID
	Distance uint32
	Duration uint32
	Cost     uint32
}

// NetworkOption configures a Network before creation.
type NetworkOption func(n *Network)

// WithMaxAirports caps the airport table at max entries. Zero (or a negative
// value) removes the cap.
func WithMaxAirports(max int) NetworkOption {
	return func(n *Network) {
		if max < 0 {
			max = 0
		}
		n.maxAirports = max
	}
}

// WithPositiveWeights makes AddRoute reject routes with any zero weight.
func WithPositiveWeights() NetworkOption {
	return func(n *Network) { n.positiveWeights = true }
}

// Network is the airport/route graph.
//
// airports and adjacency are parallel: adjacency[id] holds the routes leaving
// airports[id]. index maps codes to identifiers.
type Network struct {
	// Configuration
	maxAirports     int  // 0 = unbounded
	positiveWeights bool // reject zero weights

	// Storage
	airports   []Airport
	index      map[string]AirportID
	adjacency  [][]Route
	routeCount int
}

// NewNetwork creates an empty Network. By default the airport table is capped
// at DefaultMaxAirports and zero weights are accepted.
func NewNetwork(opts ...NetworkOption) *Network {
	n := &Network{
		maxAirports: DefaultMaxAirports,
		index:       make(map[string]AirportID),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// MaxAirports returns the configured capacity (0 means unbounded).
func (n *Network) MaxAirports() int { return n.maxAirports }

// PositiveWeights reports whether zero weights are rejected.
func (n *Network) PositiveWeights() bool { return n.positiveWeights }

// Options returns NetworkOptions that reproduce this network's configuration.
// Loaders use it to rebuild a network with the same policy.
func (n *Network) Options() []NetworkOption {
	opts := []NetworkOption{WithMaxAirports(n.maxAirports)}
	if n.positiveWeights {
		opts = append(opts, WithPositiveWeights())
	}

	return opts
}
