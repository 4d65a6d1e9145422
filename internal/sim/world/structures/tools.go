package structures

import "factorish.dev/internal/sim/world/kernel/model"

const (
	NameTransportBelt = "TransportBelt"
	NameInserter      = "Inserter"
	NameOreMine       = "OreMine"
	NameChest         = "Chest"
)

// Tool is a placeable structure kind, in toolbar order.
type Tool struct {
	Name string
	New  func(pos model.Position, rot model.Rotation, cfg Config) Structure
}

var Tools = []Tool{
	{Name: NameTransportBelt, New: func(pos model.Position, rot model.Rotation, cfg Config) Structure {
		return NewTransportBelt(pos, rot, cfg)
	}},
	{Name: NameInserter, New: func(pos model.Position, rot model.Rotation, cfg Config) Structure {
		return NewInserter(pos, rot, cfg)
	}},
	{Name: NameOreMine, New: func(pos model.Position, rot model.Rotation, cfg Config) Structure {
		return NewOreMine(pos, rot, cfg)
	}},
	{Name: NameChest, New: func(pos model.Position, _ model.Rotation, cfg Config) Structure {
		return NewChest(pos, cfg)
	}},
}

// ToolIndex returns the toolbar index of the named structure kind.
func ToolIndex(name string) (int, bool) {
	for i, t := range Tools {
		if t.Name == name {
			return i, true
		}
	}
	return -1, false
}
