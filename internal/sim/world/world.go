package world

import (
	"errors"
	"fmt"

	"factorish.dev/internal/sim/world/kernel/model"
	"factorish.dev/internal/sim/world/structures"
	"factorish.dev/internal/sim/world/terrain/store"
)

var (
	ErrBlockedByStructure = structures.ErrBlockedByStructure
	ErrBlockedByItem      = structures.ErrBlockedByItem
	ErrOutOfMap           = structures.ErrOutOfMap
	ErrNotSupported       = structures.ErrNotSupported

	ErrNotFound    = errors.New("not found")
	ErrNoInventory = errors.New("no inventory")
	ErrUnknownTool = errors.New("unknown tool")
	ErrNoTool      = errors.New("no tool selected")
)

// World is a single-threaded deterministic factory simulation.
// It has no goroutines or clock; callers drive it through Tick and the
// command methods from one goroutine.
type World struct {
	cfg Config

	grid *store.Grid

	// structures is nil while the structure pass runs; see Tick.
	structures []structures.Structure
	items      []model.DropItem
	serialNo   uint64

	tick      uint64
	deltaTime float64
	simTime   float64

	inventory    map[string]int
	selectedTool int
	toolRotation model.Rotation

	// Optional loggers (may be nil). Implemented in internal/persistence/*.
	tickLogger  TickLogger
	auditLogger AuditLogger
}

func New(cfg Config) (*World, error) {
	cfg.applyDefaults()
	w := &World{
		cfg:          cfg,
		grid:         store.Generate(cfg.Width, cfg.Height, cfg.Ore),
		inventory:    map[string]int{},
		selectedTool: -1,
		toolRotation: model.Left,
		deltaTime:    cfg.DeltaTime,
	}
	for _, e := range cfg.StarterInventory {
		if _, ok := structures.ToolIndex(e.Name); !ok {
			return nil, fmt.Errorf("starter inventory: %w: %s", ErrUnknownTool, e.Name)
		}
		w.inventory[e.Name] += e.Count
	}
	for _, s := range cfg.StarterStructures {
		i, ok := structures.ToolIndex(s.Name)
		if !ok {
			return nil, fmt.Errorf("starter structures: %w: %s", ErrUnknownTool, s.Name)
		}
		if !w.grid.InBounds(s.Pos.X, s.Pos.Y) || findStructure(w.structures, s.Pos) != nil {
			continue
		}
		w.structures = append(w.structures, structures.Tools[i].New(s.Pos, s.Rotation, cfg.Structures))
	}
	return w, nil
}

func (w *World) Config() Config { return w.cfg }

func (w *World) SetTickLogger(l TickLogger)   { w.tickLogger = l }
func (w *World) SetAuditLogger(l AuditLogger) { w.auditLogger = l }

func (w *World) CurrentTick() uint64 { return w.tick }
func (w *World) SimTime() float64    { return w.simTime }
func (w *World) DeltaTime() float64  { return w.deltaTime }

// Size returns the grid dimensions in tiles.
func (w *World) Size() (width, height int) { return w.grid.Width, w.grid.Height }

func (w *World) TileSize() int { return w.cfg.TileSize }

func (w *World) TileAt(p model.Position) (store.Cell, bool) { return w.grid.TileAt(p.X, p.Y) }

func (w *World) Tools() []string {
	out := make([]string, len(structures.Tools))
	for i, t := range structures.Tools {
		out[i] = t.Name
	}
	return out
}

// Items returns a copy of the live items in list order.
func (w *World) Items() []model.DropItem {
	return append([]model.DropItem(nil), w.items...)
}

// Structures returns descriptors of the structures in update order.
func (w *World) Structures() []structures.Info {
	out := make([]structures.Info, 0, len(w.structures))
	for _, s := range w.structures {
		out = append(out, s.Info())
	}
	return out
}

func (w *World) StructureInfoAt(p model.Position) (structures.Info, bool) {
	s := findStructure(w.structures, p)
	if s == nil {
		return structures.Info{}, false
	}
	return s.Info(), true
}
