package world

import (
	"fmt"
	"strings"

	"factorish.dev/internal/sim/world/kernel/model"
)

// Describe returns the info panel text for the tile at cursor, one line per
// entry. It is empty outside the grid.
func (w *World) Describe(cursor model.Position) string {
	tile, ok := w.grid.TileAt(cursor.X, cursor.Y)
	if !ok {
		return ""
	}
	if s := findStructure(w.structures, cursor); s != nil {
		lines := []string{"Type: " + s.Name()}
		lines = append(lines, s.Desc(&frameEnv{w: w, structures: w.structures})...)
		return strings.Join(lines, "\n")
	}
	return strings.Join([]string{
		"Empty tile",
		fmt.Sprintf("Iron Ore: %d", tile.IronOre),
		fmt.Sprintf("Coal Ore: %d", tile.CoalOre),
	}, "\n")
}
