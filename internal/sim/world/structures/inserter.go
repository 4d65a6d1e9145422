package structures

import "factorish.dev/internal/sim/world/kernel/model"

// Inserter picks an item from the tile behind it and drops it on the tile in
// front, then recharges.
type Inserter struct {
	orientedBase
	cooldown float64
	recharge float64
}

func NewInserter(pos model.Position, rot model.Rotation, cfg Config) *Inserter {
	return &Inserter{
		orientedBase: orientedBase{base: base{pos: pos}, rotation: rot},
		recharge:     cfg.InserterRecharge,
	}
}

func (*Inserter) Name() string { return NameInserter }

func (s *Inserter) Cooldown() float64 { return s.cooldown }

func (s *Inserter) Info() Info {
	in := s.info(NameInserter)
	in.Cooldown = s.cooldown
	return in
}

func (s *Inserter) FrameProc(env Env) {
	if s.cooldown > 1 {
		s.cooldown--
		return
	}
	s.cooldown = 0

	input := s.pos.Add(s.rotation.Inverse())
	output := s.pos.Add(s.rotation.Delta())
	if item, ok := env.FindItem(input); ok {
		if !s.deliver(env, output, item.Type) {
			return
		}
		env.RemoveItem(item.ID)
		s.cooldown += s.recharge
		return
	}
	// Nothing on the input tile: draw from a container there.
	src, ok := env.StructureAt(input).(ItemSource)
	if !ok {
		return
	}
	typ, ok := src.PeekItem()
	if !ok || !s.deliver(env, output, typ) {
		return
	}
	src.TakeItem(typ)
	s.cooldown += s.recharge
}

// deliver drops a new item on out, or hands it to the structure there.
func (s *Inserter) deliver(env Env, out model.Position, typ model.ItemType) bool {
	if err := env.NewObject(out, typ); err == nil {
		return true
	}
	target := env.StructureAt(out)
	if target == nil {
		return false
	}
	_, err := target.ItemResponse(env.NewItem(out, typ))
	return err == nil
}
