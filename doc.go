// Package airroute finds optimal flight routes in a directed network of
// airports, from in-memory primitives to a persisted, served network.
//
// What is airroute?
//
//	• Core primitives: airports with unique codes, directed routes carrying
//	  distance, duration and cost
//	• Indexed min-heap with decrease-key
//	• Shortest paths: Dijkstra keyed on distance with early exit,
//	  duration and cost carried along the chosen path
//	• Fewest connections: BFS over routes
//	• Persistence: a line-oriented flat file or SQLite
//	• Surfaces: an interactive menu and an HTTP/JSON API
//
// Under the hood, everything is organized in subpackages:
//
//	minheap/        - IndexedMinHeap keyed by airport, O(log V) decrease-key
//	core/           - Network, Airport, Route & code validation
//	dijkstra/       - ShortestPath, Reconstruct, FindRoute
//	bfs/            - fewest-legs search
//	store/          - Store interface, default network, LoadOrSeed
//	store/flatfile/ - text codec & file store
//	store/sqlite/   - SQLite store
//	config/         - YAML + .env + AIRROUTE_* configuration
//	logging/        - slog loggers
//	cli/            - numbered interactive menu
//	api/            - gorilla/mux HTTP server
//	app/            - wiring for cmd/airroute
//
// Quick ASCII example:
//
//	    DEL ──1760──▶ MAA ──500──▶ COK
//	     │                          ▲
//	     └──1740──▶ BLR ──284──▶ MAA┘
//
// DEL → COK goes through MAA directly (2260 km) rather than via BLR (2524 km).
//
//	go run ./cmd/airroute          # interactive menu
//	go run ./cmd/airroute -serve   # HTTP API on :5002
package airroute
