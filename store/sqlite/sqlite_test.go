package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/dijkstra"
	"github.com/katalvlaran/airroute/store"
	"github.com/katalvlaran/airroute/store/sqlite"
)

type SQLiteSuite struct {
	suite.Suite
	ctx context.Context
	s   *sqlite.Store
}

func (st *SQLiteSuite) SetupTest() {
	st.ctx = context.Background()
	s, err := sqlite.Open(st.ctx, ":memory:")
	st.Require().NoError(err)
	st.s = s
}

func (st *SQLiteSuite) TearDownTest() {
	st.Require().NoError(st.s.Close())
}

func (st *SQLiteSuite) TestEmptyDatabase() {
	_, err := st.s.Load(st.ctx)
	st.Require().ErrorIs(err, store.ErrNotFound)
}

func (st *SQLiteSuite) TestRoundTrip() {
	src := core.NewNetwork()
	st.Require().NoError(store.Seed(src))
	st.Require().NoError(src.AddRoute("DEL", "BOM", 4294967295, 0, 1)) // extreme parallel route

	st.Require().NoError(st.s.Save(st.ctx, src))
	got, err := st.s.Load(st.ctx)
	st.Require().NoError(err)

	st.Equal(src.Airports(), got.Airports())
	st.Equal(src.Routes(), got.Routes(), "adjacency order is preserved")

	want, err := dijkstra.FindRoute(src, "DEL", "COK")
	st.Require().NoError(err)
	have, err := dijkstra.FindRoute(got, "DEL", "COK")
	st.Require().NoError(err)
	st.Equal(want, have)
}

func (st *SQLiteSuite) TestSaveReplaces() {
	first := core.NewNetwork()
	st.Require().NoError(store.Seed(first))
	st.Require().NoError(st.s.Save(st.ctx, first))

	second := core.NewNetwork()
	_, _ = second.AddAirport("SXR", "Srinagar")
	_, _ = second.AddAirport("IXL", "Leh")
	st.Require().NoError(second.AddRoute("SXR", "IXL", 234, 45, 5200))
	st.Require().NoError(st.s.Save(st.ctx, second))

	got, err := st.s.Load(st.ctx)
	st.Require().NoError(err)
	st.Equal(2, got.AirportCount())
	st.Equal(1, got.RouteCount())
	st.False(got.Has("DEL"))
}

func (st *SQLiteSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(st.ctx)
	cancel()
	st.Require().Error(st.s.Save(ctx, core.NewNetwork()))
}

func TestSQLiteSuite(t *testing.T) {
	suite.Run(t, new(SQLiteSuite))
}

func TestFileDatabasePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "routes.db")

	s, err := sqlite.Open(ctx, dsn)
	require.NoError(t, err)
	src := core.NewNetwork()
	require.NoError(t, store.Seed(src))
	require.NoError(t, s.Save(ctx, src))
	require.NoError(t, s.Close())

	s, err = sqlite.Open(ctx, dsn, sqlite.WithNetworkOptions(core.WithPositiveWeights()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, src.RouteCount(), got.RouteCount())
	assert.True(t, got.PositiveWeights())
}
