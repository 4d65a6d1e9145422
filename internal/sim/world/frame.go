package world

import (
	"factorish.dev/internal/sim/world/kernel/model"
	"factorish.dev/internal/sim/world/structures"
)

// Frame is a value snapshot of everything a presentation layer draws.
type Frame struct {
	Tick         uint64            `json:"tick"`
	SimTime      float64           `json:"sim_time"`
	Structures   []structures.Info `json:"structures"`
	Items        []model.DropItem  `json:"items"`
	Inventory    []InventoryCount  `json:"inventory"`
	SelectedTool int               `json:"selected_tool"`
	ToolRotation model.Rotation    `json:"tool_rotation"`
}

func (w *World) Frame() Frame {
	items := w.Items()
	if items == nil {
		items = []model.DropItem{}
	}
	return Frame{
		Tick:         w.tick,
		SimTime:      w.simTime,
		Structures:   w.Structures(),
		Items:        items,
		Inventory:    w.InventoryCounts(),
		SelectedTool: w.selectedTool,
		ToolRotation: w.toolRotation,
	}
}
