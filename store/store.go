// Package store defines how a flight network is persisted between runs.
//
// Backends live in sub-packages:
//
//	store/flatfile - the line-oriented text format (count, airports, routes)
//	store/sqlite   - the same content in two SQLite tables
//
// Both rebuild networks through core.Network, so a loaded network always
// satisfies the core invariants (unique codes, dense ids, resolved endpoints).
package store

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/airroute/core"
)

// ErrNotFound is returned by Load when nothing has been saved yet.
var ErrNotFound = errors.New("store: no saved network")

// Store loads and saves a whole network.
type Store interface {
	// Load rebuilds the saved network. It returns ErrNotFound (possibly
	// wrapped) when there is nothing to load.
	Load(ctx context.Context) (*core.Network, error)

	// Save replaces the saved network with n.
	Save(ctx context.Context, n *core.Network) error

	// Close releases backend resources.
	Close() error
}

// LoadOrSeed loads the saved network, or builds the default one with Seed
// when the store is empty. seeded reports which happened.
func LoadOrSeed(ctx context.Context, s Store, log *slog.Logger, opts ...core.NetworkOption) (n *core.Network, seeded bool, err error) {
	n, err = s.Load(ctx)
	switch {
	case err == nil:
		log.Info("network loaded", "airports", n.AirportCount(), "routes", n.RouteCount())
		return n, false, nil
	case errors.Is(err, ErrNotFound):
		log.Info("no saved network, starting with default network")
	default:
		return nil, false, err
	}

	n = core.NewNetwork(opts...)
	if err := Seed(n); err != nil {
		return nil, false, fmt.Errorf("store: seed: %w", err)
	}

	return n, true, nil
}
