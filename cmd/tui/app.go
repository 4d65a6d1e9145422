package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"factorish.dev/internal/sim/loop"
	"factorish.dev/internal/sim/world"
	"factorish.dev/internal/sim/world/kernel/model"
	"factorish.dev/internal/sim/world/structures"
)

const sidebarWidth = 30

type app struct {
	screen tcell.Screen
	w      *world.World

	cursor  model.Position
	status  string
	offsetX int
	offsetY int
}

func newApp(screen tcell.Screen, w *world.World) *app {
	return &app{screen: screen, w: w}
}

func (a *app) run(tickEvery time.Duration) {
	ticker := time.NewTicker(tickEvery)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	a.draw()
	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.w.Step()
		}
		a.draw()
	}
}

// handleEvent returns false when the client should exit.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			return false
		}
		if dx, dy, ok := arrowDelta(ev.Key()); ok {
			a.moveCursor(dx, dy)
			return true
		}
		if cmd, ok := commandForKey(ev, a.cursor); ok {
			a.apply(cmd)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func arrowDelta(k tcell.Key) (dx, dy int, ok bool) {
	switch k {
	case tcell.KeyLeft:
		return -1, 0, true
	case tcell.KeyRight:
		return 1, 0, true
	case tcell.KeyUp:
		return 0, -1, true
	case tcell.KeyDown:
		return 0, 1, true
	}
	return 0, 0, false
}

func commandForKey(ev *tcell.EventKey, cursor model.Position) (loop.Command, bool) {
	if ev.Key() != tcell.KeyRune {
		return loop.Command{}, false
	}
	switch r := ev.Rune(); {
	case r >= '1' && r <= '9':
		return loop.Command{Op: loop.OpSelectTool, Tool: int(r - '1')}, true
	case r == ' ':
		return loop.Command{Op: loop.OpPlace, Tool: -1, Pos: cursor}, true
	case r == 'x':
		return loop.Command{Op: loop.OpHarvest, Pos: cursor}, true
	case r == 'r':
		return loop.Command{Op: loop.OpRotate, Pos: cursor}, true
	}
	return loop.Command{}, false
}

func (a *app) moveCursor(dx, dy int) {
	width, height := a.w.Size()
	a.cursor.X = min(max(a.cursor.X+dx, 0), width-1)
	a.cursor.Y = min(max(a.cursor.Y+dy, 0), height-1)
}

func (a *app) apply(cmd loop.Command) {
	res := loop.Apply(a.w, cmd)
	switch {
	case res.Err != nil:
		a.status = fmt.Sprintf("%s: %v", cmd.Op, res.Err)
	case res.Rotation != nil:
		a.status = fmt.Sprintf("rotation %s", *res.Rotation)
	default:
		a.status = string(cmd.Op)
	}
}

func (a *app) scroll(viewW, viewH int) {
	if a.cursor.X < a.offsetX {
		a.offsetX = a.cursor.X
	}
	if a.cursor.Y < a.offsetY {
		a.offsetY = a.cursor.Y
	}
	if viewW > 0 && a.cursor.X >= a.offsetX+viewW {
		a.offsetX = a.cursor.X - viewW + 1
	}
	if viewH > 0 && a.cursor.Y >= a.offsetY+viewH {
		a.offsetY = a.cursor.Y - viewH + 1
	}
}

func (a *app) draw() {
	a.screen.Clear()
	sw, sh := a.screen.Size()
	viewW, viewH := max(sw-sidebarWidth, 0), sh
	a.scroll(viewW, viewH)

	layer := a.overlay()
	width, height := a.w.Size()
	for sy := 0; sy < viewH; sy++ {
		for sx := 0; sx < viewW; sx++ {
			p := model.Position{X: sx + a.offsetX, Y: sy + a.offsetY}
			if p.X >= width || p.Y >= height {
				continue
			}
			g, ok := layer[p]
			if !ok {
				cell, _ := a.w.TileAt(p)
				g.ch, g.style = terrainGlyph(cell.IronOre, cell.CoalOre)
			}
			if p == a.cursor {
				g.style = g.style.Reverse(true)
			}
			a.screen.SetContent(sx, sy, g.ch, nil, g.style)
		}
	}

	for i, line := range a.sidebar() {
		drawText(a.screen, viewW+1, i, line, tcell.StyleDefault)
	}
	a.screen.Show()
}

type glyph struct {
	ch    rune
	style tcell.Style
}

// overlay maps tiles to structure and item glyphs; items draw over structures.
func (a *app) overlay() map[model.Position]glyph {
	out := map[model.Position]glyph{}
	for _, info := range a.w.Structures() {
		out[info.Pos] = glyph{structureGlyph(info), tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)}
	}
	for _, it := range a.w.Items() {
		out[a.w.TileOfPixel(it.X, it.Y)] = glyph{itemGlyph(it.Type), tcell.StyleDefault.Foreground(tcell.ColorYellow)}
	}
	return out
}

func (a *app) sidebar() []string {
	lines := []string{
		fmt.Sprintf("tick %d  t=%.1fs", a.w.CurrentTick(), a.w.SimTime()),
		fmt.Sprintf("cursor %d,%d", a.cursor.X, a.cursor.Y),
		"",
	}
	sel, _, hasSel := a.w.SelectedTool()
	for i, inv := range a.w.InventoryCounts() {
		mark := " "
		if hasSel && sel == i {
			mark = ">"
		}
		lines = append(lines, fmt.Sprintf("%s%d %s x%d", mark, i+1, inv.Name, inv.Count))
	}
	lines = append(lines, fmt.Sprintf("  rotation %s", a.w.ToolRotation()), "")
	if d := a.w.Describe(a.cursor); d != "" {
		lines = append(lines, strings.Split(d, "\n")...)
	}
	if a.status != "" {
		lines = append(lines, "", a.status)
	}
	return lines
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func terrainGlyph(iron, coal uint32) (rune, tcell.Style) {
	switch {
	case iron > 0 && iron >= coal:
		return '.', tcell.StyleDefault.Foreground(tcell.ColorLightSlateGray)
	case coal > 0:
		return '.', tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	}
	return ' ', tcell.StyleDefault
}

func structureGlyph(info structures.Info) rune {
	switch info.Name {
	case structures.NameTransportBelt:
		if info.Rotation != nil {
			return [...]rune{'<', '^', '>', 'v'}[*info.Rotation%4]
		}
		return '='
	case structures.NameInserter:
		return 'I'
	case structures.NameOreMine:
		return 'M'
	case structures.NameChest:
		return 'C'
	}
	return '?'
}

func itemGlyph(t model.ItemType) rune {
	if t == model.CoalOre {
		return 'c'
	}
	return 'o'
}
