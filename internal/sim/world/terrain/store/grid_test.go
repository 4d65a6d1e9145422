package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	genpkg "factorish.dev/internal/sim/world/terrain/gen"
)

func TestGrid_AccessorsAreBoundsChecked(t *testing.T) {
	g := NewGrid(4, 3)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		_, ok := g.TileAt(p[0], p[1])
		assert.Falsef(t, ok, "TileAt(%d,%d)", p[0], p[1])
		assert.Nilf(t, g.TileAtMut(p[0], p[1]), "TileAtMut(%d,%d)", p[0], p[1])
	}

	c := g.TileAtMut(3, 2)
	require.NotNil(t, c)
	c.IronOre = 7

	got, ok := g.TileAt(3, 2)
	require.True(t, ok)
	assert.Equal(t, uint32(7), got.IronOre)
	assert.Equal(t, uint32(7), g.Cells[3+2*4].IronOre)
}

func TestGrid_TileAtReturnsCopy(t *testing.T) {
	g := NewGrid(2, 2)
	c, ok := g.TileAt(0, 0)
	require.True(t, ok)
	c.CoalOre = 9
	again, _ := g.TileAt(0, 0)
	assert.Zero(t, again.CoalOre)
}

func TestGenerate_MatchesOreNoise(t *testing.T) {
	p := genpkg.DefaultOreParams()
	g := Generate(16, 16, p)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			iron, coal := genpkg.OreAt(p, x, y)
			c, ok := g.TileAt(x, y)
			require.True(t, ok)
			require.Equal(t, iron, c.IronOre)
			require.Equal(t, coal, c.CoalOre)
		}
	}
	c, _ := g.TileAt(0, 0)
	assert.Equal(t, uint32(625), c.IronOre)
}

func TestGrid_DigestTracksMutation(t *testing.T) {
	g := Generate(8, 8, genpkg.DefaultOreParams())
	before := g.Digest()
	assert.Equal(t, before, Generate(8, 8, genpkg.DefaultOreParams()).Digest())

	g.TileAtMut(1, 1).IronOre++
	assert.NotEqual(t, before, g.Digest())
}
