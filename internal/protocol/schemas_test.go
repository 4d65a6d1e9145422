package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factorish.dev/internal/sim/world"
	"factorish.dev/internal/sim/world/kernel/model"
)

func TestDecodeHello(t *testing.T) {
	m, err := DecodeHello([]byte(`{"type":"HELLO","protocol_version":"1.0","client_name":"tui"}`))
	require.NoError(t, err)
	assert.Equal(t, "tui", m.ClientName)

	for _, raw := range []string{
		`{"type":"HELLO","protocol_version":"0.9","client_name":"tui"}`,
		`{"type":"HELLO","protocol_version":"1.0"}`,
		`{"type":"CMD","protocol_version":"1.0","client_name":"tui"}`,
		`not json`,
	} {
		_, err := DecodeHello([]byte(raw))
		assert.Error(t, err, raw)
	}
}

func TestDecodeCmd_Valid(t *testing.T) {
	m, err := DecodeCmd([]byte(`{"type":"CMD","id":"c1","op":"PLACE","tool":2,"pos":{"x":3,"y":-4}}`))
	require.NoError(t, err)
	assert.Equal(t, "c1", m.ID)
	assert.Equal(t, "PLACE", m.Op)
	require.NotNil(t, m.Tool)
	assert.Equal(t, 2, *m.Tool)
	require.NotNil(t, m.Pos)
	assert.Equal(t, model.Position{X: 3, Y: -4}, *m.Pos)

	for _, raw := range []string{
		`{"type":"CMD","id":"c2","op":"ROTATE_TOOL"}`,
		`{"type":"CMD","id":"c3","op":"INVENTORY"}`,
		`{"type":"CMD","id":"c4","op":"SELECT_TOOL","tool":-1}`,
		`{"type":"CMD","id":"c5","op":"DESCRIBE","pos":{"x":0,"y":0}}`,
	} {
		_, err := DecodeCmd([]byte(raw))
		assert.NoError(t, err, raw)
	}
}

func TestDecodeCmd_Invalid(t *testing.T) {
	for _, raw := range []string{
		`{"type":"CMD","op":"PLACE","pos":{"x":1,"y":1}}`,
		`{"type":"CMD","id":"c1","op":"JUMP"}`,
		`{"type":"CMD","id":"c1","op":"HARVEST"}`,
		`{"type":"CMD","id":"c1","op":"PLACE"}`,
		`{"type":"CMD","id":"c1","op":"SELECT_TOOL"}`,
		`{"type":"CMD","id":"c1","op":"DESCRIBE","pos":{"x":1.5,"y":1}}`,
		`{"type":"CMD","id":"c1","op":"DESCRIBE","pos":{"x":1,"y":1,"z":0}}`,
		`{"type":"CMD","id":"","op":"INVENTORY"}`,
	} {
		_, err := DecodeCmd([]byte(raw))
		assert.Error(t, err, raw)
	}
}

func TestFrameMsg_JSON(t *testing.T) {
	f := world.Frame{
		Tick:         3,
		SimTime:      0.3,
		Items:        []model.DropItem{{ID: 1, Type: model.CoalOre, X: 16, Y: 48}},
		Inventory:    []world.InventoryCount{{Name: "Inserter", Count: 5}},
		SelectedTool: -1,
		ToolRotation: model.Bottom,
	}
	b, err := json.Marshal(NewFrameMsg(f))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, TypeFrame, got["type"])
	assert.Equal(t, Version, got["protocol_version"])
	assert.Equal(t, "Bottom", got["tool_rotation"])
	items := got["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "CoalOre", items[0].(map[string]any)["type"])
}

func TestDecodeBase(t *testing.T) {
	b, err := DecodeBase([]byte(`{"type":"CMD","protocol_version":"1.0"}`))
	require.NoError(t, err)
	assert.Equal(t, TypeCmd, b.Type)
}
