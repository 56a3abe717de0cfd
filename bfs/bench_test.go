package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/airroute/bfs"
	"github.com/katalvlaran/airroute/core"
)

// BenchmarkBFS_Random measures BFS on a random network of V airports and 8V routes.
func BenchmarkBFS_Random(b *testing.B) {
	const V = 1000
	rng := rand.New(rand.NewSource(1))
	n := core.NewNetwork(core.WithMaxAirports(0))
	for i := 0; i < V; i++ {
		_, _ = n.AddAirport(fmt.Sprintf("%d", i), "")
	}
	for i := 0; i < 8*V; i++ {
		_ = n.AddRoute(fmt.Sprintf("%d", rng.Intn(V)), fmt.Sprintf("%d", rng.Intn(V)), 1, 1, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(n, 0)
	}
}
