package structures

import (
	"fmt"

	"factorish.dev/internal/sim/world/kernel/model"
)

// storedTypes is the order a chest reports and hands out its contents.
var storedTypes = []model.ItemType{model.IronOre, model.CoalOre}

// ItemSource is implemented by structures an inserter can take items from
// when no item lies on its input tile.
type ItemSource interface {
	// PeekItem returns the type the source would hand out next.
	PeekItem() (model.ItemType, bool)
	TakeItem(typ model.ItemType) bool
}

// Chest stores items up to a fixed capacity. It has no facing.
type Chest struct {
	base
	capacity int
	counts   map[model.ItemType]int
}

func NewChest(pos model.Position, cfg Config) *Chest {
	return &Chest{base: base{pos: pos}, capacity: cfg.ChestCapacity, counts: map[model.ItemType]int{}}
}

func (*Chest) Name() string { return NameChest }

func (c *Chest) Count(typ model.ItemType) int { return c.counts[typ] }

func (c *Chest) Total() int {
	n := 0
	for _, v := range c.counts {
		n += v
	}
	return n
}

func (c *Chest) Info() Info {
	in := Info{Name: NameChest, Pos: c.pos}
	for _, t := range storedTypes {
		if n := c.counts[t]; n > 0 {
			if in.Stored == nil {
				in.Stored = map[string]int{}
			}
			in.Stored[t.String()] = n
		}
	}
	return in
}

func (c *Chest) Desc(Env) []string {
	lines := []string{fmt.Sprintf("Items: %d/%d", c.Total(), c.capacity)}
	for _, t := range storedTypes {
		if n := c.counts[t]; n > 0 {
			lines = append(lines, fmt.Sprintf("%s: %d", t, n))
		}
	}
	return lines
}

// ItemResponse stores the item unless the chest is full.
func (c *Chest) ItemResponse(item model.DropItem) (ItemResponse, error) {
	if c.Total() >= c.capacity {
		return ItemResponse{}, ErrNotSupported
	}
	c.counts[item.Type]++
	return ItemResponse{Kind: Consume}, nil
}

func (c *Chest) PeekItem() (model.ItemType, bool) {
	for _, t := range storedTypes {
		if c.counts[t] > 0 {
			return t, true
		}
	}
	return 0, false
}

func (c *Chest) TakeItem(typ model.ItemType) bool {
	if c.counts[typ] == 0 {
		return false
	}
	c.counts[typ]--
	return true
}
