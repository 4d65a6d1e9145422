package tuning

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefaults_Valid(t *testing.T) {
	d := Defaults()
	require.NoError(t, d.Validate())
	assert.Equal(t, 64, d.World.Width)
	assert.Equal(t, 32, d.Geometry.TileSize)
	assert.Equal(t, 8, d.Geometry.ItemHalfWidth)
	assert.Equal(t, 20.0, d.Structures.InserterRecharge)
	assert.Equal(t, 80.0, d.Structures.RecipeTime)
	assert.Equal(t, 0.1, d.Structures.PowerCost)
	assert.Equal(t, 100, d.Structures.ChestCapacity)
	assert.Len(t, d.Starter.Structures, 4)
}

func TestLoad_ShippedFileMatchesDefaults(t *testing.T) {
	tu, err := Load(filepath.Join("..", "..", "..", "configs", "tuning.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), tu)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	p := writeFile(t, `
tick_rate_hz: 10
world:
  width: 16
  height: 12
structures:
  inserter_recharge: 4
  recipe_time: 8
  power_cost: 0.1
  coal_power: 100
  mine_initial_power: 20
  belt_speed: 32
`)
	tu, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 10, tu.TickRateHz)
	assert.Equal(t, 16, tu.World.Width)
	assert.Equal(t, 12, tu.World.Height)
	assert.Equal(t, 4.0, tu.Structures.InserterRecharge)
	assert.Equal(t, 8.0, tu.Structures.RecipeTime)
	// Untouched sections keep defaults.
	assert.Equal(t, 32, tu.Geometry.TileSize)
	assert.Equal(t, uint32(8), tu.Terrain.IronChannel)
	assert.Equal(t, 0.1, tu.DeltaTime)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	p := writeFile(t, `
world:
  width: 0
  height: -3
`)
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "world.width")
	assert.Contains(t, err.Error(), "world.height")
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeFile(t, "world: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tuning.yaml")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
