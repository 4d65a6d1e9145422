package structures

import (
	"factorish.dev/internal/sim/world/kernel/model"
	"factorish.dev/internal/sim/world/logic/mathx"
	"factorish.dev/internal/sim/world/terrain/store"
)

const testTileSize = 32

// fakeEnv is a minimal world: a grid, an item list and a structure list.
type fakeEnv struct {
	grid       *store.Grid
	items      []model.DropItem
	structures []Structure
	nextID     uint64
}

func newFakeEnv(w, h int) *fakeEnv {
	return &fakeEnv{grid: store.NewGrid(w, h)}
}

func (e *fakeEnv) TileSize() int { return testTileSize }

func (e *fakeEnv) TileAt(p model.Position) (store.Cell, bool) { return e.grid.TileAt(p.X, p.Y) }
func (e *fakeEnv) TileAtMut(p model.Position) *store.Cell    { return e.grid.TileAtMut(p.X, p.Y) }

func (e *fakeEnv) FindItem(p model.Position) (model.DropItem, bool) {
	for _, it := range e.items {
		if mathx.FloorDiv(it.X, testTileSize) == p.X && mathx.FloorDiv(it.Y, testTileSize) == p.Y {
			return it, true
		}
	}
	return model.DropItem{}, false
}

func (e *fakeEnv) NewItem(p model.Position, typ model.ItemType) model.DropItem {
	it := model.NewDropItem(e.nextID, typ, p.X, p.Y, testTileSize)
	e.nextID++
	return it
}

func (e *fakeEnv) NewObject(p model.Position, typ model.ItemType) error {
	if !e.grid.InBounds(p.X, p.Y) {
		return ErrOutOfMap
	}
	if s := e.StructureAt(p); s != nil && !s.Movable() {
		return ErrBlockedByStructure
	}
	cx, cy := p.X*testTileSize+testTileSize/2, p.Y*testTileSize+testTileSize/2
	for _, it := range e.items {
		if mathx.AbsInt(cx-it.X) < 8 && mathx.AbsInt(cy-it.Y) < 8 {
			return ErrBlockedByItem
		}
	}
	e.items = append(e.items, e.NewItem(p, typ))
	return nil
}

func (e *fakeEnv) RemoveItem(id uint64) bool {
	for i, it := range e.items {
		if it.ID == id {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return true
		}
	}
	return false
}

func (e *fakeEnv) StructureAt(p model.Position) Structure {
	for _, s := range e.structures {
		if s.Position() == p {
			return s
		}
	}
	return nil
}

func (e *fakeEnv) itemsAt(p model.Position) []model.DropItem {
	var out []model.DropItem
	for _, it := range e.items {
		if mathx.FloorDiv(it.X, testTileSize) == p.X && mathx.FloorDiv(it.Y, testTileSize) == p.Y {
			out = append(out, it)
		}
	}
	return out
}
