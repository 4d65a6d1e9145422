package world

import "factorish.dev/internal/sim/world/structures"

// Step advances one tick with the configured delta time.
func (w *World) Step() { w.Tick(w.cfg.DeltaTime) }

// Tick advances the simulation by one step: every structure updates in list
// order, then every in-bounds item is offered to the structure under it.
// Items consumed in the item pass are removed once the pass is over.
func (w *World) Tick(delta float64) {
	w.deltaTime = delta
	w.simTime += delta

	structs := w.structures
	w.structures = nil
	env := &frameEnv{w: w, structures: structs}
	for _, s := range structs {
		s.FrameProc(env)
	}
	consumed := w.transportItems(structs)
	w.structures = structs

	for _, id := range consumed {
		w.removeItem(id)
	}

	w.tick++
	w.logTick()
}

func (w *World) transportItems(structs []structures.Structure) []uint64 {
	var consumed []uint64
	for i := range w.items {
		it := w.items[i]
		if !w.inPixelBounds(it.X, it.Y) {
			continue
		}
		s := findStructure(structs, w.TileOfPixel(it.X, it.Y))
		if s == nil {
			continue
		}
		resp, err := s.ItemResponse(it)
		if err != nil {
			continue
		}
		switch resp.Kind {
		case structures.Move:
			if w.hitCheck(resp.X, resp.Y, it.ID, true) {
				continue
			}
			w.items[i].X = resp.X
			w.items[i].Y = resp.Y
		case structures.Consume:
			consumed = append(consumed, it.ID)
		}
	}
	return consumed
}
