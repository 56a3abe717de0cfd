// Package core_test verifies core.Network method-level contracts.
//
// Purpose:
//   - Lock in identifier assignment, idempotent AddAirport and capacity policy.
//   - Validate route endpoint resolution and weight policy.
//   - Anchor ordering guarantees (Airports by id, RoutesFrom by insertion).

package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airroute/core"
)

const (
	codeDEL = "DEL"
	codeBOM = "BOM"
	codeMAA = "MAA"
	codeXXX = "XXX"
)

// TestNetwork_AddAirport verifies identifier assignment and idempotency.
// Implementation:
//   - Stage 1: Empty code is rejected.
//   - Stage 2: Identifiers follow insertion order.
//   - Stage 3: Re-adding a code returns the original id and keeps the original name.
func TestNetwork_AddAirport(t *testing.T) {
	n := core.NewNetwork()

	// Stage 1: empty code.
	_, err := n.AddAirport("", "Nowhere")
	require.ErrorIs(t, err, core.ErrEmptyCode)

	// Stage 2: dense ids in insertion order.
	for i, code := range []string{codeDEL, codeBOM, codeMAA} {
		id, err := n.AddAirport(code, code+" Airport")
		require.NoError(t, err)
		require.Equal(t, core.AirportID(i), id)
	}
	require.Equal(t, 3, n.AirportCount())

	// Stage 3: duplicate code is a no-op.
	id, err := n.AddAirport(codeBOM, "Renamed")
	require.NoError(t, err)
	require.Equal(t, core.AirportID(1), id)
	require.Equal(t, 3, n.AirportCount())

	a, err := n.Airport(id)
	require.NoError(t, err)
	assert.Equal(t, "BOM Airport", a.Name)
}

func TestNetwork_AddAirport_CaseSensitive(t *testing.T) {
	n := core.NewNetwork()
	upper, err := n.AddAirport("DEL", "Upper")
	require.NoError(t, err)
	lower, err := n.AddAirport("del", "Lower")
	require.NoError(t, err)
	require.NotEqual(t, upper, lower)

	_, err = n.Find("Del")
	require.ErrorIs(t, err, core.ErrAirportNotFound)
}

func TestNetwork_Capacity(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		n := core.NewNetwork()
		require.Equal(t, core.DefaultMaxAirports, n.MaxAirports())
		for i := 0; i < core.DefaultMaxAirports; i++ {
			_, err := n.AddAirport(fmt.Sprintf("A%02d", i), "")
			require.NoError(t, err)
		}
		_, err := n.AddAirport("ZZZ", "overflow")
		require.ErrorIs(t, err, core.ErrCapacityExceeded)

		// an existing code is still resolved when full
		id, err := n.AddAirport("A05", "")
		require.NoError(t, err)
		require.Equal(t, core.AirportID(5), id)
	})

	t.Run("custom", func(t *testing.T) {
		n := core.NewNetwork(core.WithMaxAirports(2))
		_, _ = n.AddAirport("AA", "")
		_, _ = n.AddAirport("BB", "")
		_, err := n.AddAirport("CC", "")
		require.ErrorIs(t, err, core.ErrCapacityExceeded)
	})

	t.Run("unbounded", func(t *testing.T) {
		n := core.NewNetwork(core.WithMaxAirports(0))
		for i := 0; i < 3*core.DefaultMaxAirports; i++ {
			_, err := n.AddAirport(fmt.Sprintf("%03d", i), "")
			require.NoError(t, err)
		}
		require.Equal(t, 3*core.DefaultMaxAirports, n.AirportCount())
	})
}

func TestNetwork_Find(t *testing.T) {
	n := core.NewNetwork()
	_, _ = n.AddAirport(codeDEL, "")
	_, _ = n.AddAirport(codeBOM, "")

	id, err := n.Find(codeBOM)
	require.NoError(t, err)
	require.Equal(t, core.AirportID(1), id)
	require.True(t, n.Has(codeBOM))

	id, err = n.Find(codeXXX)
	require.ErrorIs(t, err, core.ErrAirportNotFound)
	require.Equal(t, core.NoAirport, id)
	require.False(t, n.Has(codeXXX))
}

// TestNetwork_AddRoute verifies endpoint resolution, parallel routes and ordering.
// Implementation:
//   - Stage 1: Unknown source or destination fails with ErrUnknownEndpoint and adds nothing.
//   - Stage 2: Parallel routes are both kept, in insertion order.
//   - Stage 3: Routes() groups by source id.
func TestNetwork_AddRoute(t *testing.T) {
	n := core.NewNetwork()
	_, _ = n.AddAirport(codeDEL, "")
	_, _ = n.AddAirport(codeBOM, "")
	_, _ = n.AddAirport(codeMAA, "")

	// Stage 1: unknown endpoints.
	require.ErrorIs(t, n.AddRoute(codeXXX, codeBOM, 1, 1, 1), core.ErrUnknownEndpoint)
	require.ErrorIs(t, n.AddRoute(codeDEL, codeXXX, 1, 1, 1), core.ErrUnknownEndpoint)
	require.Equal(t, 0, n.RouteCount())

	// Stage 2: parallel routes.
	require.NoError(t, n.AddRoute(codeDEL, codeBOM, 10, 1, 100))
	require.NoError(t, n.AddRoute(codeDEL, codeBOM, 3, 2, 200))
	require.NoError(t, n.AddRoute(codeMAA, codeDEL, 7, 3, 300))
	require.NoError(t, n.AddRoute(codeBOM, codeMAA, 5, 4, 400))

	from := n.RoutesFrom(0)
	require.Len(t, from, 2)
	assert.Equal(t, uint32(10), from[0].Distance)
	assert.Equal(t, uint32(3), from[1].Distance)
	assert.Equal(t, core.AirportID(1), from[1].To)

	// Stage 3: grouped by source.
	all := n.Routes()
	require.Len(t, all, 4)
	require.Equal(t, 4, n.RouteCount())
	got := make([]core.AirportID, len(all))
	for i, r := range all {
		got[i] = r.From
	}
	assert.Equal(t, []core.AirportID{0, 0, 1, 2}, got)
}

func TestNetwork_RoutesFrom_Invalid(t *testing.T) {
	n := core.NewNetwork()
	_, _ = n.AddAirport(codeDEL, "")
	assert.Empty(t, n.RoutesFrom(0))
	assert.Empty(t, n.RoutesFrom(-1))
	assert.Empty(t, n.RoutesFrom(42))

	calls := 0
	n.ForRoutesFrom(42, func(core.Route) { calls++ })
	assert.Zero(t, calls)
}

func TestNetwork_RoutesFrom_ReturnsCopy(t *testing.T) {
	n := core.NewNetwork()
	_, _ = n.AddAirport(codeDEL, "")
	_, _ = n.AddAirport(codeBOM, "")
	require.NoError(t, n.AddRoute(codeDEL, codeBOM, 1, 1, 1))

	routes := n.RoutesFrom(0)
	routes[0].Distance = 999
	assert.Equal(t, uint32(1), n.RoutesFrom(0)[0].Distance)
}

func TestNetwork_PositiveWeights(t *testing.T) {
	lenient := core.NewNetwork()
	strict := core.NewNetwork(core.WithPositiveWeights())
	for _, n := range []*core.Network{lenient, strict} {
		_, _ = n.AddAirport(codeDEL, "")
		_, _ = n.AddAirport(codeBOM, "")
	}

	require.NoError(t, lenient.AddRoute(codeDEL, codeBOM, 0, 0, 0))
	require.ErrorIs(t, strict.AddRoute(codeDEL, codeBOM, 5, 0, 5), core.ErrBadWeight)
	require.NoError(t, strict.AddRoute(codeDEL, codeBOM, 5, 5, 5))
	require.Equal(t, 1, strict.RouteCount())
}

func TestNetwork_Airport_Invalid(t *testing.T) {
	n := core.NewNetwork()
	_, err := n.Airport(0)
	require.ErrorIs(t, err, core.ErrInvalidAirport)
	assert.Equal(t, "", n.Code(0))
	assert.False(t, n.Valid(core.NoAirport))
}

func TestNetwork_Clone(t *testing.T) {
	n := core.NewNetwork(core.WithMaxAirports(5), core.WithPositiveWeights())
	_, _ = n.AddAirport(codeDEL, "Delhi")
	_, _ = n.AddAirport(codeBOM, "Mumbai")
	require.NoError(t, n.AddRoute(codeDEL, codeBOM, 1148, 125, 7500))

	c := n.Clone()
	require.Equal(t, n.Airports(), c.Airports())
	require.Equal(t, n.Routes(), c.Routes())
	require.Equal(t, 5, c.MaxAirports())
	require.True(t, c.PositiveWeights())

	_, _ = c.AddAirport(codeMAA, "Chennai")
	require.NoError(t, c.AddRoute(codeBOM, codeMAA, 1, 1, 1))
	assert.Equal(t, 2, n.AirportCount())
	assert.Equal(t, 1, n.RouteCount())
	assert.False(t, n.Has(codeMAA))
}

func TestNormalizeAndValidateCode(t *testing.T) {
	assert.Equal(t, "DEL", core.NormalizeCode("  del "))

	for _, ok := range []string{"DE", "DEL", "B2"} {
		assert.NoError(t, core.ValidateCode(ok), ok)
	}
	assert.ErrorIs(t, core.ValidateCode(""), core.ErrEmptyCode)
	for _, bad := range []string{"D", "DELH", "D,L", "D L"} {
		assert.ErrorIs(t, core.ValidateCode(bad), core.ErrBadCode, bad)
	}
}
