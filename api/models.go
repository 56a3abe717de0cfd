package api

import (
	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/dijkstra"
)

// AirportRequest is the body of POST /v1/airports.
type AirportRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// RouteRequest is the body of POST /v1/routes. Every weight must be positive.
type RouteRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance uint32 `json:"distance"`
	Duration uint32 `json:"duration"`
	Cost     uint32 `json:"cost"`
}

// AirportResponse is one airport with its identifier.
type AirportResponse struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// RouteResponse is one directed route by airport code.
type RouteResponse struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance uint32 `json:"distance"`
	Duration uint32 `json:"duration"`
	Cost     uint32 `json:"cost"`
}

// ItineraryResponse answers GET /v1/itinerary. Path and totals are set
// only when Reachable.
type ItineraryResponse struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Reachable bool     `json:"reachable"`
	Path      []string `json:"path,omitempty"`
	Distance  int64    `json:"distance"`
	Duration  int64    `json:"duration"`
	Cost      int64    `json:"cost"`
}

// ConnectionsResponse answers GET /v1/connections.
type ConnectionsResponse struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Reachable bool     `json:"reachable"`
	Path      []string `json:"path,omitempty"`
	Legs      int      `json:"legs"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func airportResponse(a core.Airport) AirportResponse {
	return AirportResponse{ID: int(a.ID), Code: a.Code, Name: a.Name}
}

func itineraryResponse(it *dijkstra.Itinerary) ItineraryResponse {
	resp := ItineraryResponse{From: it.From, To: it.To, Reachable: it.Reachable}
	if it.Reachable {
		resp.Path = it.Codes
		resp.Distance = it.Totals.Distance
		resp.Duration = it.Totals.Duration
		resp.Cost = it.Totals.Cost
	}

	return resp
}
