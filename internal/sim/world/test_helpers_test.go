package world

import (
	"testing"

	"github.com/stretchr/testify/require"

	"factorish.dev/internal/sim/world/kernel/model"
	"factorish.dev/internal/sim/world/structures"
	"factorish.dev/internal/sim/world/terrain/store"
)

func pos(x, y int) model.Position { return model.Position{X: x, Y: y} }

// newTestWorld builds a 16x16 world with no ore and no starter structures.
func newTestWorld(t *testing.T, mutate func(*Config)) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 16, 16
	cfg.StarterStructures = nil
	if mutate != nil {
		mutate(&cfg)
	}
	w, err := New(cfg)
	require.NoError(t, err)
	w.grid = store.NewGrid(cfg.Width, cfg.Height)
	return w
}

func placeAt(t *testing.T, w *World, name string, p model.Position, rot model.Rotation) {
	t.Helper()
	i, ok := structures.ToolIndex(name)
	require.True(t, ok)
	w.toolRotation = rot
	require.NoError(t, w.Place(i, p))
}

func (w *World) itemsOnTile(p model.Position) []model.DropItem {
	var out []model.DropItem
	for _, it := range w.items {
		if w.TileOfPixel(it.X, it.Y) == p {
			out = append(out, it)
		}
	}
	return out
}

func infoAt(t *testing.T, w *World, p model.Position) structures.Info {
	t.Helper()
	in, ok := w.StructureInfoAt(p)
	require.True(t, ok, "no structure at %v", p)
	return in
}

// wall is a structure without a facing.
type wall struct{ pos model.Position }

func (*wall) Name() string                        { return "Wall" }
func (s *wall) Position() model.Position          { return s.pos }
func (s *wall) Info() structures.Info             { return structures.Info{Name: "Wall", Pos: s.pos} }
func (*wall) Desc(structures.Env) []string        { return nil }
func (*wall) FrameProc(structures.Env)            {}
func (*wall) Movable() bool                       { return false }
func (*wall) Rotate() error                       { return structures.ErrNotSupported }
func (*wall) SetRotation(model.Rotation) error    { return structures.ErrNotSupported }
func (*wall) ItemResponse(model.DropItem) (structures.ItemResponse, error) {
	return structures.ItemResponse{}, structures.ErrNotSupported
}

type recordingLoggers struct {
	ticks  []TickLogEntry
	audits []AuditEntry
}

func (r *recordingLoggers) WriteTick(e TickLogEntry) error {
	r.ticks = append(r.ticks, e)
	return nil
}

func (r *recordingLoggers) WriteAudit(e AuditEntry) error {
	r.audits = append(r.audits, e)
	return nil
}
