package structures

import (
	"fmt"

	"factorish.dev/internal/sim/world/kernel/model"
	"factorish.dev/internal/sim/world/logic/mathx"
)

// Recipe is what an OreMine currently extracts.
type Recipe struct {
	ItemType   model.ItemType
	PowerCost  float64
	RecipeTime float64
}

// OreMine extracts the ore under it and outputs it on the tile it faces.
// It picks its recipe the first tick it sees ore underneath.
type OreMine struct {
	orientedBase
	cfg Config

	cooldown float64
	power    float64
	maxPower float64
	recipe   *Recipe
}

func NewOreMine(pos model.Position, rot model.Rotation, cfg Config) *OreMine {
	return &OreMine{
		orientedBase: orientedBase{base: base{pos: pos}, rotation: rot},
		cfg:          cfg,
		power:        cfg.initialPower(),
		maxPower:     cfg.initialPower(),
	}
}

func (*OreMine) Name() string { return NameOreMine }

func (m *OreMine) Cooldown() float64 { return m.cooldown }
func (m *OreMine) Power() float64    { return m.power }
func (m *OreMine) MaxPower() float64 { return m.maxPower }

// Recipe returns the selected recipe, if any.
func (m *OreMine) Recipe() (Recipe, bool) {
	if m.recipe == nil {
		return Recipe{}, false
	}
	return *m.recipe, true
}

func (m *OreMine) Info() Info {
	in := m.info(NameOreMine)
	in.Cooldown = m.cooldown
	in.Power = m.power
	in.MaxPower = m.maxPower
	if m.recipe != nil {
		in.Recipe = m.recipe.ItemType.String()
	}
	return in
}

func (m *OreMine) FrameProc(env Env) {
	tile, ok := env.TileAt(m.pos)
	if !ok {
		return
	}
	if m.recipe == nil {
		switch {
		case tile.IronOre > 0:
			m.recipe = m.newRecipe(model.IronOre)
		case tile.CoalOre > 0:
			m.recipe = m.newRecipe(model.CoalOre)
		default:
			return
		}
	}

	progress := mathx.MinFloat(m.power/m.recipe.PowerCost, 1)
	if m.cooldown < progress {
		m.cooldown = 0
		m.extract(env)
		return
	}
	m.cooldown -= progress
	m.power -= progress * m.recipe.PowerCost
}

func (m *OreMine) newRecipe(typ model.ItemType) *Recipe {
	return &Recipe{
		ItemType:   typ,
		PowerCost:  m.cfg.PowerCost,
		RecipeTime: m.cfg.RecipeTime,
	}
}

// extract outputs one ore and takes it from the tile. Nothing changes when
// the output is blocked or the deposit is exhausted.
func (m *OreMine) extract(env Env) {
	cell := env.TileAtMut(m.pos)
	if cell == nil {
		return
	}
	ore := &cell.IronOre
	if m.recipe.ItemType == model.CoalOre {
		ore = &cell.CoalOre
	}
	if *ore == 0 {
		return
	}
	if err := env.NewObject(m.pos.Add(m.rotation.Delta()), m.recipe.ItemType); err != nil {
		return
	}
	m.cooldown = m.recipe.RecipeTime
	*ore--
}

// ItemResponse burns coal as fuel once the energy buffer is empty.
func (m *OreMine) ItemResponse(item model.DropItem) (ItemResponse, error) {
	if item.Type != model.CoalOre || m.power != 0 {
		return ItemResponse{}, ErrNotSupported
	}
	m.power = m.cfg.CoalPower
	m.maxPower = m.cfg.CoalPower
	return ItemResponse{Kind: Consume}, nil
}

func (m *OreMine) Desc(env Env) []string {
	if m.recipe == nil {
		return []string{"Empty"}
	}
	rt := m.recipe.RecipeTime
	power := 0.0
	if m.maxPower > 0 {
		power = m.power / m.maxPower * 100
	}
	var expected uint32
	if tile, ok := env.TileAt(m.pos); ok {
		expected = tile.CoalOre
		if tile.IronOre > 0 {
			expected = tile.IronOre
		}
	}
	return []string{
		fmt.Sprintf("Progress: %.0f%%", (rt-m.cooldown)/rt*100),
		fmt.Sprintf("Power: %.0f%%", power),
		fmt.Sprintf("Expected output: %d", expected),
	}
}
