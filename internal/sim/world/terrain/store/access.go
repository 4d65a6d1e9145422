package store

func (g *Grid) InBounds(x, y int) bool {
	return 0 <= x && x < g.Width && 0 <= y && y < g.Height
}

// TileAt returns a copy of the cell at (x, y); ok is false outside the grid.
func (g *Grid) TileAt(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.Cells[g.index(x, y)], true
}

// TileAtMut returns the cell at (x, y) for in-place mutation, or nil outside
// the grid.
func (g *Grid) TileAtMut(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.Cells[g.index(x, y)]
}
