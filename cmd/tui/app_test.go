package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factorish.dev/internal/sim/loop"
	"factorish.dev/internal/sim/world"
	"factorish.dev/internal/sim/world/kernel/model"
	"factorish.dev/internal/sim/world/structures"
)

func TestCommandForKey(t *testing.T) {
	cur := model.Position{X: 3, Y: 4}
	key := func(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

	cmd, ok := commandForKey(key('2'), cur)
	require.True(t, ok)
	assert.Equal(t, loop.Command{Op: loop.OpSelectTool, Tool: 1}, cmd)

	cmd, ok = commandForKey(key(' '), cur)
	require.True(t, ok)
	assert.Equal(t, loop.Command{Op: loop.OpPlace, Tool: -1, Pos: cur}, cmd)

	cmd, ok = commandForKey(key('x'), cur)
	require.True(t, ok)
	assert.Equal(t, loop.OpHarvest, cmd.Op)

	cmd, ok = commandForKey(key('r'), cur)
	require.True(t, ok)
	assert.Equal(t, loop.OpRotate, cmd.Op)

	_, ok = commandForKey(key('z'), cur)
	assert.False(t, ok)
	_, ok = commandForKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), cur)
	assert.False(t, ok)
}

func TestStructureGlyph(t *testing.T) {
	for r, want := range map[model.Rotation]rune{model.Left: '<', model.Top: '^', model.Right: '>', model.Bottom: 'v'} {
		rot := r
		assert.Equal(t, want, structureGlyph(structures.Info{Name: structures.NameTransportBelt, Rotation: &rot}))
	}
	assert.Equal(t, 'M', structureGlyph(structures.Info{Name: structures.NameOreMine}))
	assert.Equal(t, 'C', structureGlyph(structures.Info{Name: structures.NameChest}))
	assert.Equal(t, 'c', itemGlyph(model.CoalOre))
	assert.Equal(t, 'o', itemGlyph(model.IronOre))
}

func newTestApp(t *testing.T) *app {
	t.Helper()
	w, err := world.New(world.DefaultConfig())
	require.NoError(t, err)
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return newApp(s, w)
}

func TestApp_KeysDriveWorld(t *testing.T) {
	a := newTestApp(t)
	before := a.w.Inventory(structures.NameTransportBelt)

	assert.True(t, a.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))
	assert.True(t, a.handleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)))
	assert.Equal(t, model.Position{X: 1, Y: 1}, a.cursor)

	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone))
	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	info, ok := a.w.StructureInfoAt(model.Position{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, structures.NameTransportBelt, info.Name)
	assert.Equal(t, before-1, a.w.Inventory(structures.NameTransportBelt))

	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	_, ok = a.w.StructureInfoAt(model.Position{X: 1, Y: 1})
	assert.False(t, ok)
	assert.Equal(t, before, a.w.Inventory(structures.NameTransportBelt))

	a.draw()
	assert.False(t, a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
}

func TestApp_CursorClamped(t *testing.T) {
	a := newTestApp(t)
	a.handleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	a.handleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.Equal(t, model.Position{}, a.cursor)
}

func TestApp_OverlayDrawsItemsOverStructures(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.w.NewObject(model.Position{X: 11, Y: 6}, model.CoalOre))

	layer := a.overlay()
	assert.Equal(t, 'c', layer[model.Position{X: 11, Y: 6}].ch)
	assert.Equal(t, '<', layer[model.Position{X: 10, Y: 6}].ch)
	assert.Equal(t, 'M', layer[model.Position{X: 12, Y: 7}].ch)
}
