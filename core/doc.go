// Package core provides the in-memory flight network: airports keyed by
// dense integer identifiers and directed, weighted routes between them.
//
// The Network N = (A,R) is a directed multigraph:
//
//   - Airports are appended to a table; an airport's AirportID is its index
//     in that table, assigned in insertion order and never reused.
//   - Airport codes are unique, exact, case-sensitive keys. Normalization
//     (NormalizeCode, ValidateCode) is the caller's job before calling in.
//   - Routes carry three unsigned weights: Distance, Duration, Cost.
//   - Parallel routes between the same ordered pair are kept as-is.
//   - Each airport owns a slice of its outgoing routes (adjacency list).
//
// Configuration Options (NetworkOption):
//
//	– WithMaxAirports(n)
//	    Caps the airport table at n entries (ErrCapacityExceeded beyond it).
//	    n == 0 disables the cap. Default: DefaultMaxAirports (100).
//
//	– WithPositiveWeights()
//	    Rejects routes with any zero weight (ErrBadWeight).
//
// Core Methods:
//
//	// Airports
//	AddAirport(code, name string) (AirportID, error) // O(1), idempotent by code
//	Find(code string) (AirportID, error)             // O(1)
//	Airport(id AirportID) (Airport, error)           // O(1)
//	Airports() []Airport                             // O(A), id order
//
//	// Routes
//	AddRoute(src, dst string, distance, duration, cost uint32) error // O(1) amortized
//	RoutesFrom(id AirportID) []Route                                  // O(deg), insertion order
//	Routes() []Route                                                  // O(A+R), grouped by source
//
//	// Counts & cloning
//	AirportCount() int
//	RouteCount() int
//	Clone() *Network
//
// Concurrency:
//
//	A Network has no internal locking. Mutations and queries must be
//	serialized by the owner (for example one sync.RWMutex per Network:
//	shortest-path queries under RLock, AddAirport/AddRoute under Lock).
//
// Errors:
//
//	ErrEmptyCode         - airport code is empty.
//	ErrBadCode           - code fails ValidateCode (2–3 characters).
//	ErrCapacityExceeded  - airport table is full.
//	ErrAirportNotFound   - code does not resolve.
//	ErrUnknownEndpoint   - a route endpoint code does not resolve.
//	ErrInvalidAirport    - identifier outside [0, AirportCount()).
//	ErrBadWeight         - zero weight while WithPositiveWeights is set.
package core
