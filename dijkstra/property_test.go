package dijkstra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/dijkstra"
)

// PropertySuite checks the engine against a Bellman-Ford reference on
// seeded random networks.
type PropertySuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *PropertySuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(7))
}

// randomNetwork builds V airports and E routes with small weights so that
// ties and parallel routes are common.
func (s *PropertySuite) randomNetwork(V, E int) *core.Network {
	n := core.NewNetwork(core.WithMaxAirports(0))
	for i := 0; i < V; i++ {
		_, err := n.AddAirport(fmt.Sprintf("N%d", i), "")
		s.Require().NoError(err)
	}
	for i := 0; i < E; i++ {
		u, v := s.rng.Intn(V), s.rng.Intn(V)
		err := n.AddRoute(fmt.Sprintf("N%d", u), fmt.Sprintf("N%d", v),
			uint32(s.rng.Intn(20)), uint32(s.rng.Intn(50)), uint32(s.rng.Intn(500)))
		s.Require().NoError(err)
	}

	return n
}

// bellmanFord returns exact shortest distances from src.
func bellmanFord(n *core.Network, src core.AirportID) []int64 {
	dist := make([]int64, n.AirportCount())
	for i := range dist {
		dist[i] = dijkstra.Infinity
	}
	dist[src] = 0
	routes := n.Routes()
	for i := 0; i < len(dist); i++ {
		changed := false
		for _, r := range routes {
			if dist[r.From] == dijkstra.Infinity {
				continue
			}
			if d := dist[r.From] + int64(r.Distance); d < dist[r.To] {
				dist[r.To] = d
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

// cheapestLeg returns the route u→v with the smallest distance.
func cheapestLeg(n *core.Network, u, v core.AirportID) (core.Route, bool) {
	var best core.Route
	found := false
	for _, r := range n.RoutesFrom(u) {
		if r.To == v && (!found || r.Distance < best.Distance) {
			best, found = r, true
		}
	}

	return best, found
}

// TestOptimality: finite distances equal the Bellman-Ford optimum, and the
// reconstructed path sums exactly to the reported totals.
func (s *PropertySuite) TestOptimality() {
	for round := 0; round < 40; round++ {
		V := 2 + s.rng.Intn(25)
		n := s.randomNetwork(V, s.rng.Intn(4*V))
		src := core.AirportID(s.rng.Intn(V))
		want := bellmanFord(n, src)

		for dst := core.AirportID(0); int(dst) < V; dst++ {
			res, err := dijkstra.ShortestPath(n, src, dst)
			s.Require().NoError(err)
			s.Require().Equal(want[dst], res.Distance[dst], "round %d %d→%d", round, src, dst)

			if !res.Reachable(dst) {
				continue
			}
			path, err := res.Path(dst)
			s.Require().NoError(err)
			s.Require().Equal(src, path[0])
			s.Require().Equal(dst, path[len(path)-1])

			var sum dijkstra.Totals
			for i := 0; i+1 < len(path); i++ {
				r, ok := cheapestLeg(n, path[i], path[i+1])
				s.Require().True(ok, "path uses a missing leg %d→%d", path[i], path[i+1])
				sum.Distance += int64(r.Distance)
			}
			s.Require().Equal(res.Distance[dst], sum.Distance)
		}
	}
}

// TestEarlyExitMatchesExhaustive: stopping at the target never changes its distance.
func (s *PropertySuite) TestEarlyExitMatchesExhaustive() {
	for round := 0; round < 40; round++ {
		V := 2 + s.rng.Intn(30)
		n := s.randomNetwork(V, s.rng.Intn(5*V))
		src := core.AirportID(s.rng.Intn(V))
		dst := core.AirportID(s.rng.Intn(V))

		early, err := dijkstra.ShortestPath(n, src, dst)
		s.Require().NoError(err)
		full, err := dijkstra.ShortestPath(n, src, dst, dijkstra.WithoutEarlyExit())
		s.Require().NoError(err)

		s.Require().Equal(full.Distance[dst], early.Distance[dst])
		et, eok := early.Totals(dst)
		ft, fok := full.Totals(dst)
		s.Require().Equal(fok, eok)
		s.Require().Equal(ft.Distance, et.Distance)
	}
}

// TestSecondaryTotalsFollowPath: duration and cost equal the sums of the
// legs chosen by the predecessor chain.
func (s *PropertySuite) TestSecondaryTotalsFollowPath() {
	for round := 0; round < 30; round++ {
		V := 2 + s.rng.Intn(20)
		n := s.randomNetwork(V, s.rng.Intn(4*V))
		res, err := dijkstra.ShortestPath(n, 0, core.AirportID(V-1), dijkstra.WithoutEarlyExit())
		s.Require().NoError(err)

		for v := 1; v < V; v++ {
			id := core.AirportID(v)
			if !res.Reachable(id) || res.Prev[id] == core.NoAirport {
				continue
			}
			u := res.Prev[id]
			// some route u→v must explain the step exactly
			matched := false
			for _, r := range n.RoutesFrom(u) {
				if r.To == id &&
					res.Distance[u]+int64(r.Distance) == res.Distance[id] &&
					res.Duration[u]+int64(r.Duration) == res.Duration[id] &&
					res.Cost[u]+int64(r.Cost) == res.Cost[id] {
					matched = true
					break
				}
			}
			s.Require().True(matched, "round %d: no route explains %d→%d", round, u, id)
		}
	}
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}
