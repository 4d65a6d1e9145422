package protocol

import (
	"factorish.dev/internal/sim/world"
	"factorish.dev/internal/sim/world/kernel/model"
	"factorish.dev/internal/sim/world/structures"
)

// HELLO (client -> server)
type HelloMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	ClientName      string `json:"client_name"`
}

// WELCOME (server -> client)
type WelcomeMsg struct {
	Type            string      `json:"type"`
	ProtocolVersion string      `json:"protocol_version"`
	SessionID       string      `json:"session_id"`
	World           WorldParams `json:"world"`
	Tools           []string    `json:"tools"`
	// Terrain is row-major, one entry per tile.
	Terrain []TileOre `json:"terrain"`
}

type WorldParams struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	TileSize   int `json:"tile_size"`
	TickRateHz int `json:"tick_rate_hz"`
}

type TileOre struct {
	Iron uint32 `json:"iron,omitempty"`
	Coal uint32 `json:"coal,omitempty"`
}

// CMD (client -> server)
type CmdMsg struct {
	Type            string          `json:"type"`
	ProtocolVersion string          `json:"protocol_version,omitempty"`
	ID              string          `json:"id"`
	Op              string          `json:"op"`
	Tool            *int            `json:"tool,omitempty"`
	Pos             *model.Position `json:"pos,omitempty"`
}

// RESULT (server -> client)
type ResultMsg struct {
	Type            string                 `json:"type"`
	ProtocolVersion string                 `json:"protocol_version"`
	ID              string                 `json:"id"`
	OK              bool                   `json:"ok"`
	Code            string                 `json:"code,omitempty"`
	Message         string                 `json:"message,omitempty"`
	Rotation        *model.Rotation        `json:"rotation,omitempty"`
	Text            string                 `json:"text,omitempty"`
	Inventory       []world.InventoryCount `json:"inventory,omitempty"`
	Selected        *int                   `json:"selected,omitempty"`
}

// FRAME (server -> client)
type FrameMsg struct {
	Type            string                 `json:"type"`
	ProtocolVersion string                 `json:"protocol_version"`
	Tick            uint64                 `json:"tick"`
	SimTime         float64                `json:"sim_time"`
	Structures      []structures.Info      `json:"structures"`
	Items           []model.DropItem       `json:"items"`
	Inventory       []world.InventoryCount `json:"inventory"`
	SelectedTool    int                    `json:"selected_tool"`
	ToolRotation    model.Rotation         `json:"tool_rotation"`
}

// ERROR (server -> client) for messages that carry no command id.
type ErrorMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Code            string `json:"code"`
	Message         string `json:"message"`
}

func NewFrameMsg(f world.Frame) FrameMsg {
	return FrameMsg{
		Type:            TypeFrame,
		ProtocolVersion: Version,
		Tick:            f.Tick,
		SimTime:         f.SimTime,
		Structures:      f.Structures,
		Items:           f.Items,
		Inventory:       f.Inventory,
		SelectedTool:    f.SelectedTool,
		ToolRotation:    f.ToolRotation,
	}
}
