// Package api exposes a flight network over HTTP/JSON:
//
//	GET  /v1/airports                list airports in id order
//	POST /v1/airports                add an airport {code, name}
//	GET  /v1/routes                  list routes grouped by source
//	POST /v1/routes                  add a route {from, to, distance, duration, cost}
//	GET  /v1/itinerary?from=&to=     shortest route by distance
//	GET  /v1/connections?from=&to=   fewest routes, optional max-legs
//
// Errors are JSON objects {"error": "..."}: 400 for invalid input, 404 for
// unknown airport codes, 409 for duplicates and a full airport table. An
// unreachable destination is a 200 with "reachable": false.
//
// The network is guarded by a read-write lock: searches and listings run
// concurrently, additions are exclusive.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/dijkstra"
	"github.com/katalvlaran/airroute/logging"
)

// ShutdownTimeout bounds how long ListenAndServe waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Server serves one network.
type Server struct {
	mu      sync.RWMutex
	n       *core.Network
	log     *slog.Logger
	search  []dijkstra.Option
	changed bool
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and change logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithSearchOptions sets the options passed to every itinerary search.
func WithSearchOptions(opts ...dijkstra.Option) Option {
	return func(s *Server) { s.search = opts }
}

// NewServer returns a Server over n. The server owns n from now on; use
// Snapshot to read it.
func NewServer(n *core.Network, opts ...Option) *Server {
	s := &Server{n: n, log: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Snapshot returns a copy of the network and whether it changed since
// NewServer.
func (s *Server) Snapshot() (*core.Network, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.n.Clone(), s.changed
}

// RegisterRoutes adds the /v1 endpoints to router.
func (s *Server) RegisterRoutes(router *mux.Router) {
	v1 := router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/airports", s.ListAirports).Methods(http.MethodGet)
	v1.HandleFunc("/airports", s.AddAirport).Methods(http.MethodPost)
	v1.HandleFunc("/routes", s.ListRoutes).Methods(http.MethodGet)
	v1.HandleFunc("/routes", s.AddRoute).Methods(http.MethodPost)
	v1.HandleFunc("/itinerary", s.Itinerary).Methods(http.MethodGet)
	v1.HandleFunc("/connections", s.Connections).Methods(http.MethodGet)
}

// Handler returns a router serving every endpoint with request logging.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	s.RegisterRoutes(r)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "no such endpoint")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("http server stopped", "addr", addr)

	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"took", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
