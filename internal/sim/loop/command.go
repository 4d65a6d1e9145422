package loop

import (
	"factorish.dev/internal/sim/world"
	"factorish.dev/internal/sim/world/kernel/model"
)

type Op string

const (
	OpPlace      Op = "PLACE"
	OpHarvest    Op = "HARVEST"
	OpSelectTool Op = "SELECT_TOOL"
	OpRotate     Op = "ROTATE"
	OpRotateTool Op = "ROTATE_TOOL"
	OpRotateAt   Op = "ROTATE_AT"
	OpDescribe   Op = "DESCRIBE"
	OpInventory  Op = "INVENTORY"
)

// Command is one mutating or querying input from a presentation client.
// Tool is only read by PLACE and SELECT_TOOL; PLACE with a negative Tool
// uses the selected tool.
type Command struct {
	Op   Op
	Tool int
	Pos  model.Position
}

type Result struct {
	Err       error
	Rotation  *model.Rotation
	Text      string
	Inventory []world.InventoryCount
	// Selected is the selected tool index after SELECT_TOOL, -1 for none.
	Selected *int
}

func (r Result) OK() bool { return r.Err == nil }

// Apply runs cmd against w. It must be called from the goroutine that owns w.
func Apply(w *world.World, cmd Command) Result {
	switch cmd.Op {
	case OpPlace:
		if cmd.Tool < 0 {
			return Result{Err: w.PlaceSelected(cmd.Pos)}
		}
		return Result{Err: w.Place(cmd.Tool, cmd.Pos)}
	case OpHarvest:
		if !w.Harvest(cmd.Pos) {
			return Result{Err: world.ErrNotFound}
		}
		return Result{Inventory: w.InventoryCounts()}
	case OpSelectTool:
		_, err := w.SelectTool(cmd.Tool)
		idx, _, ok := w.SelectedTool()
		if !ok {
			idx = -1
		}
		return Result{Err: err, Selected: &idx}
	case OpRotate:
		return rotationResult(w.Rotate(cmd.Pos))
	case OpRotateTool:
		r := w.RotatePendingTool()
		return Result{Rotation: &r}
	case OpRotateAt:
		return rotationResult(w.RotateStructureAt(cmd.Pos))
	case OpDescribe:
		return Result{Text: w.Describe(cmd.Pos)}
	case OpInventory:
		return Result{Inventory: w.InventoryCounts()}
	default:
		return Result{Err: ErrUnknownOp}
	}
}

func rotationResult(r model.Rotation, err error) Result {
	if err != nil {
		return Result{Err: err}
	}
	return Result{Rotation: &r}
}
