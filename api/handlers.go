package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/katalvlaran/airroute/bfs"
	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/dijkstra"
)

// ListAirports serves GET /v1/airports.
func (s *Server) ListAirports(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	airports := s.n.Airports()
	s.mu.RUnlock()

	out := make([]AirportResponse, len(airports))
	for i, a := range airports {
		out[i] = airportResponse(a)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"airports": out,
		"count":    len(out),
	})
}

// AddAirport serves POST /v1/airports: 201 on success, 400 for a bad code
// or name, 409 for a duplicate code or a full airport table.
func (s *Server) AddAirport(w http.ResponseWriter, r *http.Request) {
	var req AirportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	code := core.NormalizeCode(req.Code)
	if err := core.ValidateCode(code); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "airport name is empty")
		return
	}
	if strings.ContainsAny(req.Name, "\r\n") {
		writeError(w, http.StatusBadRequest, "airport name must be a single line")
		return
	}

	s.mu.Lock()
	if s.n.Has(code) {
		s.mu.Unlock()
		writeError(w, http.StatusConflict, "airport "+code+" already exists")
		return
	}
	id, err := s.n.AddAirport(code, req.Name)
	if err == nil {
		s.changed = true
	}
	s.mu.Unlock()

	switch {
	case errors.Is(err, core.ErrCapacityExceeded):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.log.Info("airport added", "code", code, "name", req.Name)
	writeJSON(w, http.StatusCreated, AirportResponse{ID: int(id), Code: code, Name: req.Name})
}

// ListRoutes serves GET /v1/routes.
func (s *Server) ListRoutes(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	routes := s.n.Routes()
	out := make([]RouteResponse, len(routes))
	for i, rt := range routes {
		out[i] = RouteResponse{
			From:     s.n.Code(rt.From),
			To:       s.n.Code(rt.To),
			Distance: rt.Distance,
			Duration: rt.Duration,
			Cost:     rt.Cost,
		}
	}
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"routes": out,
		"count":  len(out),
	})
}

// AddRoute serves POST /v1/routes: 201 on success, 400 for a zero weight,
// 404 for an unknown endpoint.
func (s *Server) AddRoute(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.From, req.To = core.NormalizeCode(req.From), core.NormalizeCode(req.To)
	if req.Distance == 0 || req.Duration == 0 || req.Cost == 0 {
		writeError(w, http.StatusBadRequest, "distance, duration and cost must be positive")
		return
	}

	s.mu.Lock()
	err := s.n.AddRoute(req.From, req.To, req.Distance, req.Duration, req.Cost)
	if err == nil {
		s.changed = true
	}
	s.mu.Unlock()

	switch {
	case errors.Is(err, core.ErrUnknownEndpoint):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.log.Info("route added", "from", req.From, "to", req.To,
		"distance", req.Distance, "duration", req.Duration, "cost", req.Cost)
	writeJSON(w, http.StatusCreated, RouteResponse(req))
}

// Itinerary serves GET /v1/itinerary, the shortest route by distance.
func (s *Server) Itinerary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := core.NormalizeCode(q.Get("from")), core.NormalizeCode(q.Get("to"))
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "query parameters from and to are required")
		return
	}

	s.mu.RLock()
	it, err := dijkstra.FindRoute(s.n, from, to, s.search...)
	s.mu.RUnlock()

	switch {
	case errors.Is(err, core.ErrAirportNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, itineraryResponse(it))
}

// Connections answers with the path that uses the fewest routes. The
// optional max-legs parameter bounds the search.
func (s *Server) Connections(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := core.NormalizeCode(q.Get("from")), core.NormalizeCode(q.Get("to"))
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "query parameters from and to are required")
		return
	}
	var opts []bfs.Option
	if v := q.Get("max-legs"); v != "" {
		legs, err := strconv.Atoi(v)
		if err != nil || legs < 0 {
			writeError(w, http.StatusBadRequest, "max-legs must be a non-negative integer")
			return
		}
		opts = append(opts, bfs.WithMaxLegs(legs))
	}
	opts = append(opts, bfs.WithContext(r.Context()))

	s.mu.RLock()
	path, err := bfs.FewestLegs(s.n, from, to, opts...)
	s.mu.RUnlock()

	resp := ConnectionsResponse{From: from, To: to}
	switch {
	case errors.Is(err, core.ErrAirportNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, bfs.ErrNoPath):
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	default:
		resp.Reachable = true
		resp.Path = path
		resp.Legs = len(path) - 1
	}
	writeJSON(w, http.StatusOK, resp)
}
