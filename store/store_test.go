package store_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/dijkstra"
	"github.com/katalvlaran/airroute/logging"
	"github.com/katalvlaran/airroute/store"
)

// memStore keeps one network in memory.
type memStore struct {
	saved   *core.Network
	loadErr error
}

func (m *memStore) Load(context.Context) (*core.Network, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.saved == nil {
		return nil, fmt.Errorf("mem: %w", store.ErrNotFound)
	}

	return m.saved.Clone(), nil
}

func (m *memStore) Save(_ context.Context, n *core.Network) error {
	m.saved = n.Clone()
	return nil
}

func (m *memStore) Close() error { return nil }

var _ store.Store = (*memStore)(nil)

func TestSeed(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, store.Seed(n))
	assert.Equal(t, len(store.DefaultAirports), n.AirportCount())
	assert.Equal(t, len(store.DefaultRoutes), n.RouteCount())

	// DEL → COK has no direct leg: DEL→MAA→COK (1760+500) vs DEL→BLR→MAA→COK (1740+284+500)
	it, err := dijkstra.FindRoute(n, "DEL", "COK")
	require.NoError(t, err)
	require.True(t, it.Reachable)
	assert.Equal(t, []string{"DEL", "MAA", "COK"}, it.Codes)
	assert.Equal(t, dijkstra.Totals{Distance: 2260, Duration: 210, Cost: 12000}, it.Totals)
}

func TestSeed_RespectsCapacity(t *testing.T) {
	n := core.NewNetwork(core.WithMaxAirports(3))
	require.ErrorIs(t, store.Seed(n), core.ErrCapacityExceeded)
}

func TestLoadOrSeed(t *testing.T) {
	ctx := context.Background()
	log := logging.Discard()

	t.Run("empty store seeds", func(t *testing.T) {
		n, seeded, err := store.LoadOrSeed(ctx, &memStore{}, log)
		require.NoError(t, err)
		assert.True(t, seeded)
		assert.Equal(t, len(store.DefaultAirports), n.AirportCount())
	})

	t.Run("saved network wins", func(t *testing.T) {
		saved := core.NewNetwork()
		_, _ = saved.AddAirport("SXR", "Srinagar")
		n, seeded, err := store.LoadOrSeed(ctx, &memStore{saved: saved}, log)
		require.NoError(t, err)
		assert.False(t, seeded)
		assert.Equal(t, 1, n.AirportCount())
	})

	t.Run("other errors propagate", func(t *testing.T) {
		boom := errors.New("disk on fire")
		_, _, err := store.LoadOrSeed(ctx, &memStore{loadErr: boom}, log)
		require.ErrorIs(t, err, boom)
	})

	t.Run("seed honours options", func(t *testing.T) {
		_, _, err := store.LoadOrSeed(ctx, &memStore{}, log, core.WithMaxAirports(2))
		require.ErrorIs(t, err, core.ErrCapacityExceeded)
	})
}
