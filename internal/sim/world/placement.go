package world

import (
	"factorish.dev/internal/sim/world/kernel/model"
	"factorish.dev/internal/sim/world/structures"
)

// Place builds the tool's structure at cursor with the pending rotation,
// returning any structure already there to the inventory first.
func (w *World) Place(toolIndex int, cursor model.Position) error {
	err := w.place(toolIndex, cursor)
	w.audit("PLACE", cursor, toolName(toolIndex), err)
	return err
}

func (w *World) place(toolIndex int, cursor model.Position) error {
	if toolIndex < 0 || toolIndex >= len(structures.Tools) {
		return ErrUnknownTool
	}
	if !w.grid.InBounds(cursor.X, cursor.Y) {
		return ErrOutOfMap
	}
	tool := structures.Tools[toolIndex]
	if w.inventory[tool.Name] < 1 {
		return ErrNoInventory
	}
	w.harvest(cursor)
	w.structures = append(w.structures, tool.New(cursor, w.toolRotation, w.cfg.Structures))
	w.inventory[tool.Name]--
	return nil
}

// PlaceSelected places the selected tool at cursor.
func (w *World) PlaceSelected(cursor model.Position) error {
	if w.selectedTool < 0 {
		return ErrNoTool
	}
	return w.Place(w.selectedTool, cursor)
}

// Harvest removes the structure at cursor into the inventory and reports
// whether there was one.
func (w *World) Harvest(cursor model.Position) bool {
	name, ok := w.harvest(cursor)
	var err error
	if !ok {
		err = ErrNotFound
	}
	w.audit("HARVEST", cursor, name, err)
	return ok
}

func (w *World) harvest(cursor model.Position) (string, bool) {
	for i, s := range w.structures {
		if s.Position() != cursor {
			continue
		}
		w.structures = append(w.structures[:i], w.structures[i+1:]...)
		w.inventory[s.Name()]++
		return s.Name(), true
	}
	return "", false
}

// SelectTool selects tool i. Selecting the held tool again, or a negative
// index, clears the selection. It reports whether a tool is now selected.
func (w *World) SelectTool(i int) (bool, error) {
	if i >= len(structures.Tools) {
		return w.selectedTool >= 0, ErrUnknownTool
	}
	if i < 0 || i == w.selectedTool {
		w.selectedTool = -1
		return false, nil
	}
	w.selectedTool = i
	return true, nil
}

// SelectedTool returns the selected tool index and its held count.
func (w *World) SelectedTool() (index, count int, ok bool) {
	if w.selectedTool < 0 {
		return -1, 0, false
	}
	return w.selectedTool, w.inventory[structures.Tools[w.selectedTool].Name], true
}

func (w *World) ToolRotation() model.Rotation { return w.toolRotation }

func (w *World) RotatePendingTool() model.Rotation {
	w.toolRotation = w.toolRotation.Next()
	w.audit("ROTATE_TOOL", model.Position{}, toolName(w.selectedTool), nil)
	return w.toolRotation
}

// RotateStructureAt turns the structure at cursor a quarter and returns its
// new facing.
func (w *World) RotateStructureAt(cursor model.Position) (model.Rotation, error) {
	rot, err := w.rotateStructureAt(cursor)
	name := ""
	if s := findStructure(w.structures, cursor); s != nil {
		name = s.Name()
	}
	w.audit("ROTATE", cursor, name, err)
	return rot, err
}

func (w *World) rotateStructureAt(cursor model.Position) (model.Rotation, error) {
	s := findStructure(w.structures, cursor)
	if s == nil {
		return 0, ErrNotFound
	}
	if err := s.Rotate(); err != nil {
		return 0, err
	}
	o, ok := s.(structures.Oriented)
	if !ok {
		return 0, ErrNotSupported
	}
	return o.Rotation(), nil
}

// Rotate turns the pending tool when one is selected, otherwise the
// structure under cursor.
func (w *World) Rotate(cursor model.Position) (model.Rotation, error) {
	if w.selectedTool >= 0 {
		w.toolRotation = w.toolRotation.Next()
		w.audit("ROTATE", cursor, toolName(w.selectedTool), nil)
		return w.toolRotation, nil
	}
	return w.RotateStructureAt(cursor)
}

// InventoryCounts returns the held count of every tool in toolbar order.
func (w *World) InventoryCounts() []InventoryCount {
	out := make([]InventoryCount, 0, len(structures.Tools))
	for _, t := range structures.Tools {
		out = append(out, InventoryCount{Name: t.Name, Count: w.inventory[t.Name]})
	}
	return out
}

func (w *World) Inventory(name string) int { return w.inventory[name] }

func toolName(i int) string {
	if i < 0 || i >= len(structures.Tools) {
		return ""
	}
	return structures.Tools[i].Name
}

func (w *World) audit(action string, pos model.Position, name string, err error) {
	if w.auditLogger == nil {
		return
	}
	e := AuditEntry{
		Tick:   w.tick,
		Action: action,
		Pos:    pos.ToArray(),
		Name:   name,
		OK:     err == nil,
	}
	if w.selectedTool >= 0 {
		e.Tool = structures.Tools[w.selectedTool].Name
	}
	if err != nil {
		e.Reason = err.Error()
	}
	_ = w.auditLogger.WriteAudit(e)
}
