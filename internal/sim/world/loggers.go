package world

type TickLogger interface {
	WriteTick(entry TickLogEntry) error
}

type AuditLogger interface {
	WriteAudit(entry AuditEntry) error
}

type TickLogEntry struct {
	Tick       uint64  `json:"tick"`
	SimTime    float64 `json:"sim_time"`
	DeltaTime  float64 `json:"delta_time"`
	Structures int     `json:"structures"`
	Items      int     `json:"items"`
	Digest     string  `json:"digest"`
}

type AuditEntry struct {
	Tick   uint64 `json:"tick"`
	Action string `json:"action"` // PLACE, HARVEST, ROTATE
	Pos    [2]int `json:"pos"`
	Tool   string `json:"tool,omitempty"`
	Name   string `json:"name,omitempty"`
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

func (w *World) logTick() {
	if w.tickLogger == nil {
		return
	}
	_ = w.tickLogger.WriteTick(TickLogEntry{
		Tick:       w.tick,
		SimTime:    w.simTime,
		DeltaTime:  w.deltaTime,
		Structures: len(w.structures),
		Items:      len(w.items),
		Digest:     w.Digest(),
	})
}
