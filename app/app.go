// Package app wires configuration, logging, storage and the network
// together for the airroute binary.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/airroute/config"
	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/logging"
	"github.com/katalvlaran/airroute/store"
	"github.com/katalvlaran/airroute/store/flatfile"
	"github.com/katalvlaran/airroute/store/sqlite"
)

// ErrUnknownBackend indicates a storage backend name OpenStore does not know.
var ErrUnknownBackend = errors.New("app: unknown storage backend")

// OpenStore opens the backend named by cfg.Backend at cfg.Path. Networks it
// loads are built with netOpts.
func OpenStore(ctx context.Context, cfg config.Storage, log *slog.Logger, netOpts ...core.NetworkOption) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendFlatFile:
		return flatfile.New(cfg.Path,
			flatfile.WithLogger(log),
			flatfile.WithNetworkOptions(netOpts...),
		), nil
	case config.BackendSQLite:
		s, err := sqlite.Open(ctx, cfg.Path,
			sqlite.WithLogger(log),
			sqlite.WithNetworkOptions(netOpts...),
		)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// App holds the long-lived pieces of a running airroute process.
type App struct {
	Config  config.Config
	Log     *slog.Logger
	Store   store.Store
	Network *core.Network
}

// Bootstrap builds the logger (writing to logOut), opens the store and loads
// the saved network, seeding the default one when nothing was saved.
func Bootstrap(ctx context.Context, cfg config.Config, logOut io.Writer) (*App, error) {
	log, err := logging.New(logOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	netOpts := cfg.NetworkOptions()
	s, err := OpenStore(ctx, cfg.Storage, log, netOpts...)
	if err != nil {
		return nil, err
	}

	n, seeded, err := store.LoadOrSeed(ctx, s, log, netOpts...)
	if err != nil {
		s.Close()
		return nil, err
	}
	log.Info("network ready",
		"backend", cfg.Storage.Backend,
		"path", cfg.Storage.Path,
		"airports", n.AirportCount(),
		"routes", n.RouteCount(),
		"seeded", seeded,
	)

	return &App{Config: cfg, Log: log, Store: s, Network: n}, nil
}

// Save writes n (usually a.Network or a snapshot of it) to the store.
func (a *App) Save(ctx context.Context, n *core.Network) error {
	if err := a.Store.Save(ctx, n); err != nil {
		return fmt.Errorf("app: save: %w", err)
	}
	a.Log.Info("network saved", "airports", n.AirportCount(), "routes", n.RouteCount())

	return nil
}

// Close releases the store.
func (a *App) Close() error { return a.Store.Close() }
