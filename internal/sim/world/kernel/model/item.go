package model

import "fmt"

type ItemType uint8

const (
	IronOre ItemType = iota
	CoalOre
)

func (t ItemType) String() string {
	switch t {
	case IronOre:
		return "IronOre"
	case CoalOre:
		return "CoalOre"
	default:
		return fmt.Sprintf("ItemType(%d)", uint8(t))
	}
}

func (t ItemType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *ItemType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "IronOre":
		*t = IronOre
	case "CoalOre":
		*t = CoalOre
	default:
		return fmt.Errorf("unknown item type %q", string(b))
	}
	return nil
}

// DropItem is an ore token in transit. X and Y are pixel coordinates; a
// freshly created item sits at the center of its tile.
type DropItem struct {
	ID   uint64   `json:"id"`
	Type ItemType `json:"type"`
	X    int      `json:"x"`
	Y    int      `json:"y"`
}

// NewDropItem centers an item on tile (c, r).
func NewDropItem(id uint64, typ ItemType, c, r, tileSize int) DropItem {
	return DropItem{
		ID:   id,
		Type: typ,
		X:    c*tileSize + tileSize/2,
		Y:    r*tileSize + tileSize/2,
	}
}
