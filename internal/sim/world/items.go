package world

import (
	"factorish.dev/internal/sim/world/kernel/model"
	"factorish.dev/internal/sim/world/logic/mathx"
	"factorish.dev/internal/sim/world/structures"
	"factorish.dev/internal/sim/world/terrain/store"
)

func findStructure(structs []structures.Structure, p model.Position) structures.Structure {
	for _, s := range structs {
		if s.Position() == p {
			return s
		}
	}
	return nil
}

// TileOfPixel returns the tile containing pixel (x, y), flooring negatives.
func (w *World) TileOfPixel(x, y int) model.Position {
	return model.Position{X: mathx.FloorDiv(x, w.cfg.TileSize), Y: mathx.FloorDiv(y, w.cfg.TileSize)}
}

// HitCheck reports whether an item at pixel (x, y) would collide with a
// live item.
func (w *World) HitCheck(x, y int) bool {
	return w.hitCheck(x, y, 0, false)
}

func (w *World) hitCheck(x, y int, ignoreID uint64, ignore bool) bool {
	hw := w.cfg.ItemHalfWidth
	for _, it := range w.items {
		if ignore && it.ID == ignoreID {
			continue
		}
		if mathx.AbsInt(x-it.X) < hw && mathx.AbsInt(y-it.Y) < hw {
			return true
		}
	}
	return false
}

func (w *World) inPixelBounds(x, y int) bool {
	ts := w.cfg.TileSize
	return 0 < x && x < w.grid.Width*ts && 0 < y && y < w.grid.Height*ts
}

func (w *World) findItem(p model.Position) (model.DropItem, bool) {
	for _, it := range w.items {
		if w.TileOfPixel(it.X, it.Y) == p {
			return it, true
		}
	}
	return model.DropItem{}, false
}

func (w *World) removeItem(id uint64) bool {
	for i, it := range w.items {
		if it.ID == id {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return true
		}
	}
	return false
}

func (w *World) allocItem(p model.Position, typ model.ItemType) model.DropItem {
	it := model.NewDropItem(w.serialNo, typ, p.X, p.Y, w.cfg.TileSize)
	w.serialNo++
	return it
}

// newObject checks, in order, the grid bounds, a non-movable structure on
// the tile and item collision, then adds an item centered on p.
func (w *World) newObject(structs []structures.Structure, p model.Position, typ model.ItemType) error {
	if !w.grid.InBounds(p.X, p.Y) {
		return ErrOutOfMap
	}
	if s := findStructure(structs, p); s != nil && !s.Movable() {
		return ErrBlockedByStructure
	}
	ts := w.cfg.TileSize
	if w.hitCheck(p.X*ts+ts/2, p.Y*ts+ts/2, 0, false) {
		return ErrBlockedByItem
	}
	w.items = append(w.items, w.allocItem(p, typ))
	return nil
}

// NewObject drops an item of typ on tile p.
func (w *World) NewObject(p model.Position, typ model.ItemType) error {
	return w.newObject(w.structures, p, typ)
}

// frameEnv is the world handed to structures during the structure pass. It
// holds the detached structure list so siblings remain reachable while the
// world's own list is checked out.
type frameEnv struct {
	w          *World
	structures []structures.Structure
}

var _ structures.Env = (*frameEnv)(nil)

func (e *frameEnv) TileSize() int { return e.w.cfg.TileSize }

func (e *frameEnv) TileAt(p model.Position) (store.Cell, bool) { return e.w.grid.TileAt(p.X, p.Y) }
func (e *frameEnv) TileAtMut(p model.Position) *store.Cell    { return e.w.grid.TileAtMut(p.X, p.Y) }

func (e *frameEnv) FindItem(p model.Position) (model.DropItem, bool) { return e.w.findItem(p) }

func (e *frameEnv) NewObject(p model.Position, typ model.ItemType) error {
	return e.w.newObject(e.structures, p, typ)
}

func (e *frameEnv) NewItem(p model.Position, typ model.ItemType) model.DropItem {
	return e.w.allocItem(p, typ)
}

func (e *frameEnv) RemoveItem(id uint64) bool { return e.w.removeItem(id) }

func (e *frameEnv) StructureAt(p model.Position) structures.Structure {
	return findStructure(e.structures, p)
}
