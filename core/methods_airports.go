// File: methods_airports.go
// Role: Airport lifecycle & lookups.
//
// Determinism:
//   - Airports() returns airports in identifier (insertion) order.
//   - Identifiers are dense: 0..AirportCount()-1.

package core

import "fmt"

// AddAirport appends an airport and returns its identifier.
//
// Steps:
//  1. Reject an empty code (ErrEmptyCode).
//  2. If the code already exists, return its identifier unchanged (no-op).
//  3. Enforce the capacity cap (ErrCapacityExceeded).
//  4. Append to the table, register the code, allocate an adjacency slot.
//
// The code is used as given: callers normalize case first.
// Complexity: O(1) amortized.
func (n *Network) AddAirport(code, name string) (AirportID, error) {
	if code == "" {
		return NoAirport, ErrEmptyCode
	}

	if id, ok := n.index[code]; ok {
		return id, nil
	}

	if n.maxAirports > 0 && len(n.airports) >= n.maxAirports {
		return NoAirport, fmt.Errorf("%w: limit %d", ErrCapacityExceeded, n.maxAirports)
	}

	id := AirportID(len(n.airports))
	n.airports = append(n.airports, Airport{ID: id, Code: code, Name: name})
	n.adjacency = append(n.adjacency, nil)
	n.index[code] = id

	return id, nil
}

// Find resolves a code to its identifier, or returns ErrAirportNotFound.
func (n *Network) Find(code string) (AirportID, error) {
	if id, ok := n.index[code]; ok {
		return id, nil
	}

	return NoAirport, ErrAirportNotFound
}

// Has reports whether code names an airport.
func (n *Network) Has(code string) bool {
	_, ok := n.index[code]

	return ok
}

// Valid reports whether id is inside the airport table.
func (n *Network) Valid(id AirportID) bool {
	return id >= 0 && int(id) < len(n.airports)
}

// Airport returns the airport with the given identifier.
func (n *Network) Airport(id AirportID) (Airport, error) {
	if !n.Valid(id) {
		return Airport{}, fmt.Errorf("%w: %d", ErrInvalidAirport, id)
	}

	return n.airports[id], nil
}

// Code returns the code of id, or "" if id is invalid.
func (n *Network) Code(id AirportID) string {
	if !n.Valid(id) {
		return ""
	}

	return n.airports[id].Code
}

// Airports returns a copy of the airport table in identifier order.
func (n *Network) Airports() []Airport {
	out := make([]Airport, len(n.airports))
	copy(out, n.airports)

	return out
}

// AirportCount returns the number of airports.
func (n *Network) AirportCount() int { return len(n.airports) }
