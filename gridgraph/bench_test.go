package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tilefold/constraint"
	"github.com/katalvlaran/tilefold/gridgraph"
	"github.com/katalvlaran/tilefold/tile"
)

// BenchmarkCreaseComponents measures CreaseComponents on a 256×256 grid of
// random tiles under Conn8.
func BenchmarkCreaseComponents(b *testing.B) {
	const n = 256
	rng := rand.New(rand.NewSource(42))
	tiles := make([]tile.Index, n*n)
	for i := range tiles {
		tiles[i] = tile.Index(rng.Intn(tile.Count))
	}
	g, err := gridgraph.NewTileGrid(n, tiles)
	if err != nil {
		b.Fatalf("setup NewTileGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.CreaseComponents(gridgraph.Conn8)
	}
}

// BenchmarkConflicts measures Conflicts on the same random grid.
func BenchmarkConflicts(b *testing.B) {
	const n = 256
	rng := rand.New(rand.NewSource(7))
	tiles := make([]tile.Index, n*n)
	for i := range tiles {
		tiles[i] = tile.Index(rng.Intn(tile.Count))
	}
	g, err := gridgraph.NewTileGrid(n, tiles)
	if err != nil {
		b.Fatalf("setup NewTileGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Conflicts()
	}
}

// BenchmarkCountTilings measures the depth-first enumerator on a 2×2 grid.
func BenchmarkCountTilings(b *testing.B) {
	snap, err := constraint.Unconstrained(2)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gridgraph.CountTilings(snap)
	}
}
