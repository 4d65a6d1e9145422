// Package structures implements the placeable automation units and the
// contract the world uses to drive them each tick.
package structures

import (
	"errors"

	"factorish.dev/internal/sim/world/kernel/model"
	"factorish.dev/internal/sim/world/terrain/store"
)

var (
	// ErrNotSupported is returned by structures that have no response for
	// an operation (rotation, an item sitting on them).
	ErrNotSupported = errors.New("not supported")

	ErrBlockedByStructure = errors.New("blocked by structure")
	ErrBlockedByItem      = errors.New("blocked by item")
	ErrOutOfMap           = errors.New("out of map")
)

// Env is the world as seen by a structure during its update. Sibling
// structures, the tile grid and the item list are all reachable through it.
type Env interface {
	TileSize() int
	TileAt(p model.Position) (store.Cell, bool)
	TileAtMut(p model.Position) *store.Cell

	// FindItem returns the first item whose pixel position lies on tile p.
	FindItem(p model.Position) (model.DropItem, bool)
	// NewObject creates an item centered on tile p, or reports why it can't.
	NewObject(p model.Position, typ model.ItemType) error
	// NewItem allocates an id for an item centered on p without adding it
	// to the world.
	NewItem(p model.Position, typ model.ItemType) model.DropItem
	RemoveItem(id uint64) bool

	StructureAt(p model.Position) Structure
}

type ResponseKind uint8

const (
	Move ResponseKind = iota + 1
	Consume
)

// ItemResponse is what a structure wants done with an item on its tile.
// X and Y are the destination pixel position for Move.
type ItemResponse struct {
	Kind ResponseKind
	X, Y int
}

type Structure interface {
	Name() string
	Position() model.Position
	Info() Info
	// Desc returns human readable status lines for info panels.
	Desc(env Env) []string

	FrameProc(env Env)
	// Movable reports whether items may be created on this structure's tile.
	Movable() bool
	Rotate() error
	SetRotation(r model.Rotation) error
	ItemResponse(item model.DropItem) (ItemResponse, error)
}

// Info is a read-only descriptor of a structure for views and digests.
type Info struct {
	Name     string          `json:"name"`
	Pos      model.Position  `json:"pos"`
	Rotation *model.Rotation `json:"rotation,omitempty"`
	Cooldown float64         `json:"cooldown,omitempty"`
	Power    float64         `json:"power,omitempty"`
	MaxPower float64         `json:"max_power,omitempty"`
	Recipe   string          `json:"recipe,omitempty"`
	// Stored is the content of a chest by item type.
	Stored map[string]int `json:"stored,omitempty"`
}

// base supplies the defaults of the contract.
type base struct {
	pos model.Position
}

func (b *base) Position() model.Position { return b.pos }

func (*base) Desc(Env) []string { return nil }
func (*base) FrameProc(Env)     {}
func (*base) Movable() bool     { return false }

func (*base) Rotate() error                    { return ErrNotSupported }
func (*base) SetRotation(model.Rotation) error { return ErrNotSupported }

func (*base) ItemResponse(model.DropItem) (ItemResponse, error) {
	return ItemResponse{}, ErrNotSupported
}

type orientedBase struct {
	base
	rotation model.Rotation
}

func (o *orientedBase) Rotation() model.Rotation { return o.rotation }

func (o *orientedBase) Rotate() error {
	o.rotation = o.rotation.Next()
	return nil
}

func (o *orientedBase) SetRotation(r model.Rotation) error {
	o.rotation = r
	return nil
}

func (o *orientedBase) info(name string) Info {
	r := o.rotation
	return Info{Name: name, Pos: o.pos, Rotation: &r}
}

// Oriented is implemented by structures that have a facing.
type Oriented interface {
	Rotation() model.Rotation
}
