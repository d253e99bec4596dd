package grid

import (
	"math/rand"

	"github.com/pdrpinto/gridpath"
)

// Generate builds a grid with clustered walls laid down by random walks.
// Each of the clusters walks steps cells, blocking each visited cell with
// probability density. keep lists cells that must stay open.
func Generate(width, height, clusters, steps int, density float64, rng *rand.Rand, keep ...gridpath.Position) *Grid {
	g := New(width, height)
	if width <= 0 || height <= 0 {
		return g
	}
	for c := 0; c < clusters; c++ {
		p := gridpath.Position{X: rng.Intn(width), Y: rng.Intn(height)}
		for s := 0; s < steps; s++ {
			if rng.Float64() < density {
				g.Block(p)
			}
			d := gridpath.MooreOffsets[rng.Intn(len(gridpath.MooreOffsets))]
			if next := p.Add(d[0], d[1]); g.InBounds(next) {
				p = next
			}
		}
	}
	g.Unblock(keep...)
	return g
}
