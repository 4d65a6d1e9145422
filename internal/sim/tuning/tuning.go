package tuning

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Tuning struct {
	TickRateHz int     `yaml:"tick_rate_hz"`
	DeltaTime  float64 `yaml:"delta_time"`

	World      WorldSize  `yaml:"world"`
	Geometry   Geometry   `yaml:"geometry"`
	Structures Structures `yaml:"structures"`
	Terrain    Terrain    `yaml:"terrain"`
	Starter    Starter    `yaml:"starter"`
}

type WorldSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Geometry struct {
	TileSize      int `yaml:"tile_size"`
	ItemHalfWidth int `yaml:"item_half_width"`
}

type Structures struct {
	InserterRecharge float64 `yaml:"inserter_recharge"`
	RecipeTime       float64 `yaml:"recipe_time"`
	PowerCost        float64 `yaml:"power_cost"`
	CoalPower        float64 `yaml:"coal_power"`
	MineInitialPower float64 `yaml:"mine_initial_power"`
	BeltSpeed        int     `yaml:"belt_speed"`
	ChestCapacity    int     `yaml:"chest_capacity"`
}

type Terrain struct {
	IronScale   float64 `yaml:"iron_scale"`
	IronOffset  float64 `yaml:"iron_offset"`
	IronChannel uint32  `yaml:"iron_channel"`
	CoalScale   float64 `yaml:"coal_scale"`
	CoalOffset  float64 `yaml:"coal_offset"`
	CoalChannel uint32  `yaml:"coal_channel"`
}

type Starter struct {
	Inventory  []InventoryEntry `yaml:"inventory"`
	Structures []Placement      `yaml:"structures"`
}

type InventoryEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

type Placement struct {
	Name     string `yaml:"name"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Rotation string `yaml:"rotation"`
}

func Defaults() Tuning {
	return Tuning{
		TickRateHz: 20,
		DeltaTime:  0.1,
		World:      WorldSize{Width: 64, Height: 64},
		Geometry:   Geometry{TileSize: 32, ItemHalfWidth: 8},
		Structures: Structures{
			InserterRecharge: 20,
			RecipeTime:       80,
			PowerCost:        0.1,
			CoalPower:        100,
			MineInitialPower: 20,
			BeltSpeed:        32,
			ChestCapacity:    100,
		},
		Terrain: Terrain{
			IronScale:   4000,
			IronOffset:  3000,
			IronChannel: 8,
			CoalScale:   2000,
			CoalOffset:  1500,
			CoalChannel: 10,
		},
		Starter: Starter{
			Inventory: []InventoryEntry{
				{Name: "TransportBelt", Count: 10},
				{Name: "Inserter", Count: 5},
				{Name: "OreMine", Count: 5},
				{Name: "Chest", Count: 2},
			},
			Structures: []Placement{
				{Name: "TransportBelt", X: 10, Y: 6, Rotation: "Left"},
				{Name: "TransportBelt", X: 11, Y: 6, Rotation: "Left"},
				{Name: "TransportBelt", X: 12, Y: 6, Rotation: "Left"},
				{Name: "OreMine", X: 12, Y: 7, Rotation: "Top"},
			},
		},
	}
}

// Load reads a tuning file on top of Defaults. Sections absent from the file
// keep their default values.
func Load(path string) (Tuning, error) {
	t := Defaults()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}

func (t Tuning) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("tick_rate_hz", float64(t.TickRateHz))
	positive("delta_time", t.DeltaTime)
	positive("world.width", float64(t.World.Width))
	positive("world.height", float64(t.World.Height))
	positive("geometry.tile_size", float64(t.Geometry.TileSize))
	positive("geometry.item_half_width", float64(t.Geometry.ItemHalfWidth))
	positive("structures.recipe_time", t.Structures.RecipeTime)
	positive("structures.power_cost", t.Structures.PowerCost)
	positive("structures.coal_power", t.Structures.CoalPower)
	positive("structures.chest_capacity", float64(t.Structures.ChestCapacity))
	if t.Structures.InserterRecharge < 0 {
		errs = append(errs, fmt.Errorf("structures.inserter_recharge must not be negative, got %v", t.Structures.InserterRecharge))
	}
	if t.Structures.MineInitialPower < 0 {
		errs = append(errs, fmt.Errorf("structures.mine_initial_power must not be negative, got %v", t.Structures.MineInitialPower))
	}
	for _, e := range t.Starter.Inventory {
		if e.Count < 0 {
			errs = append(errs, fmt.Errorf("starter.inventory %s: negative count %d", e.Name, e.Count))
		}
	}
	return errors.Join(errs...)
}
