package world

import (
	"fmt"

	"factorish.dev/internal/sim/tuning"
	"factorish.dev/internal/sim/world/kernel/model"
	"factorish.dev/internal/sim/world/structures"
	genpkg "factorish.dev/internal/sim/world/terrain/gen"
)

type Config struct {
	Width  int
	Height int

	// TileSize is the side of a tile in pixel units.
	TileSize int
	// ItemHalfWidth is the per-axis distance below which two items collide.
	ItemHalfWidth int

	DeltaTime float64

	Ore        genpkg.OreParams
	Structures structures.Config

	// StarterInventory is the held count per structure kind at start.
	StarterInventory []InventoryCount
	// StarterStructures are placed in order at start; entries outside the
	// grid or on an occupied tile are skipped.
	StarterStructures []StructureSpec
}

type InventoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type StructureSpec struct {
	Name     string
	Pos      model.Position
	Rotation model.Rotation
}

func DefaultConfig() Config {
	return Config{
		Width:         64,
		Height:        64,
		TileSize:      32,
		ItemHalfWidth: 8,
		DeltaTime:     0.1,
		Ore:           genpkg.DefaultOreParams(),
		Structures:    structures.DefaultConfig(),
		StarterInventory: []InventoryCount{
			{Name: structures.NameTransportBelt, Count: 10},
			{Name: structures.NameInserter, Count: 5},
			{Name: structures.NameOreMine, Count: 5},
			{Name: structures.NameChest, Count: 2},
		},
		StarterStructures: []StructureSpec{
			{Name: structures.NameTransportBelt, Pos: model.Position{X: 10, Y: 6}, Rotation: model.Left},
			{Name: structures.NameTransportBelt, Pos: model.Position{X: 11, Y: 6}, Rotation: model.Left},
			{Name: structures.NameTransportBelt, Pos: model.Position{X: 12, Y: 6}, Rotation: model.Left},
			{Name: structures.NameOreMine, Pos: model.Position{X: 12, Y: 7}, Rotation: model.Top},
		},
	}
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.TileSize <= 0 {
		c.TileSize = d.TileSize
	}
	if c.ItemHalfWidth <= 0 {
		c.ItemHalfWidth = d.ItemHalfWidth
	}
	if c.DeltaTime <= 0 {
		c.DeltaTime = d.DeltaTime
	}
	if c.Ore == (genpkg.OreParams{}) {
		c.Ore = d.Ore
	}
	c.Structures = c.Structures.WithDefaults()
	if c.Structures.BeltSpeed == 0 {
		c.Structures.BeltSpeed = c.TileSize
	}
}

// ConfigFromTuning maps a loaded tuning file onto a world Config.
func ConfigFromTuning(t tuning.Tuning) (Config, error) {
	c := Config{
		Width:         t.World.Width,
		Height:        t.World.Height,
		TileSize:      t.Geometry.TileSize,
		ItemHalfWidth: t.Geometry.ItemHalfWidth,
		DeltaTime:     t.DeltaTime,
		Ore: genpkg.OreParams{
			IronScale:   t.Terrain.IronScale,
			IronOffset:  t.Terrain.IronOffset,
			IronChannel: t.Terrain.IronChannel,
			CoalScale:   t.Terrain.CoalScale,
			CoalOffset:  t.Terrain.CoalOffset,
			CoalChannel: t.Terrain.CoalChannel,
		},
		Structures: structures.Config{
			InserterRecharge: t.Structures.InserterRecharge,
			RecipeTime:       t.Structures.RecipeTime,
			PowerCost:        t.Structures.PowerCost,
			CoalPower:        t.Structures.CoalPower,
			MineInitialPower: t.Structures.MineInitialPower,
			BeltSpeed:        t.Structures.BeltSpeed,
			ChestCapacity:    t.Structures.ChestCapacity,
		},
	}
	if t.Structures.MineInitialPower == 0 {
		c.Structures.MineInitialPower = structures.NoInitialPower
	}
	for _, e := range t.Starter.Inventory {
		if _, ok := structures.ToolIndex(e.Name); !ok {
			return c, fmt.Errorf("starter inventory: %w: %s", ErrUnknownTool, e.Name)
		}
		c.StarterInventory = append(c.StarterInventory, InventoryCount{Name: e.Name, Count: e.Count})
	}
	for _, p := range t.Starter.Structures {
		if _, ok := structures.ToolIndex(p.Name); !ok {
			return c, fmt.Errorf("starter structures: %w: %s", ErrUnknownTool, p.Name)
		}
		rot := model.Left
		if p.Rotation != "" {
			r, err := model.ParseRotation(p.Rotation)
			if err != nil {
				return c, fmt.Errorf("starter structures %s at (%d,%d): %w", p.Name, p.X, p.Y, err)
			}
			rot = r
		}
		c.StarterStructures = append(c.StarterStructures, StructureSpec{
			Name:     p.Name,
			Pos:      model.Position{X: p.X, Y: p.Y},
			Rotation: rot,
		})
	}
	return c, nil
}
