package structures

// Config carries the timing and energy constants of the structure set.
type Config struct {
	// InserterRecharge is the cooldown in ticks after a transfer.
	InserterRecharge float64
	RecipeTime       float64
	PowerCost        float64
	// CoalPower is the energy buffer a mine gets from one coal item.
	CoalPower float64
	// MineInitialPower is the energy a new mine starts with. Zero selects
	// the default; NoInitialPower starts mines empty.
	MineInitialPower float64
	// BeltSpeed is the distance in pixels a belt moves an item per tick.
	BeltSpeed int
	// ChestCapacity is the number of items a chest holds.
	ChestCapacity int
}

// NoInitialPower makes new mines start with an empty energy buffer.
const NoInitialPower = -1

func DefaultConfig() Config {
	return Config{
		InserterRecharge: 20,
		RecipeTime:       80,
		PowerCost:        0.1,
		CoalPower:        100,
		MineInitialPower: 20,
		BeltSpeed:        32,
		ChestCapacity:    100,
	}
}

// WithDefaults fills every unset field from DefaultConfig. A zero BeltSpeed
// is left for the caller, which knows the tile size.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.InserterRecharge <= 0 {
		c.InserterRecharge = d.InserterRecharge
	}
	if c.RecipeTime <= 0 {
		c.RecipeTime = d.RecipeTime
	}
	if c.PowerCost <= 0 {
		c.PowerCost = d.PowerCost
	}
	if c.CoalPower <= 0 {
		c.CoalPower = d.CoalPower
	}
	if c.MineInitialPower == 0 {
		c.MineInitialPower = d.MineInitialPower
	}
	if c.ChestCapacity <= 0 {
		c.ChestCapacity = d.ChestCapacity
	}
	if c.BeltSpeed < 0 {
		c.BeltSpeed = 0
	}
	return c
}

func (c Config) initialPower() float64 {
	return max(c.MineInitialPower, 0)
}
