package structures

import "factorish.dev/internal/sim/world/kernel/model"

// TransportBelt moves every item on it one step in its facing each tick.
type TransportBelt struct {
	orientedBase
	speed int
}

func NewTransportBelt(pos model.Position, rot model.Rotation, cfg Config) *TransportBelt {
	return &TransportBelt{
		orientedBase: orientedBase{base: base{pos: pos}, rotation: rot},
		speed:        cfg.BeltSpeed,
	}
}

func (*TransportBelt) Name() string  { return NameTransportBelt }
func (*TransportBelt) Movable() bool { return true }

func (b *TransportBelt) Info() Info { return b.info(NameTransportBelt) }

func (b *TransportBelt) ItemResponse(item model.DropItem) (ItemResponse, error) {
	dx, dy := b.rotation.Delta()
	return ItemResponse{
		Kind: Move,
		X:    item.X + dx*b.speed,
		Y:    item.Y + dy*b.speed,
	}, nil
}
