package store

import genpkg "factorish.dev/internal/sim/world/terrain/gen"

// Generate builds a grid whose ore deposits come from the terrain noise.
func Generate(width, height int, p genpkg.OreParams) *Grid {
	g := NewGrid(width, height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			iron, coal := genpkg.OreAt(p, x, y)
			g.Cells[g.index(x, y)] = Cell{IronOre: iron, CoalOre: coal}
		}
	}
	return g
}
