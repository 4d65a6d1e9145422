package world

import (
	"crypto/sha256"
	"encoding/hex"

	"factorish.dev/internal/sim/world/io/digestcodec"
)

// Digest is a SHA-256 over the whole simulation state. Two worlds built from
// the same config and driven by the same commands have equal digests.
func (w *World) Digest() string {
	h := sha256.New()
	var tmp [8]byte

	digestcodec.WriteU64(h, &tmp, w.tick)
	digestcodec.WriteF64(h, &tmp, w.simTime)
	digestcodec.WriteU64(h, &tmp, w.serialNo)

	g := w.grid.Digest()
	h.Write(g[:])

	digestcodec.WriteU64(h, &tmp, uint64(len(w.structures)))
	for _, s := range w.structures {
		in := s.Info()
		digestcodec.WriteString(h, &tmp, in.Name)
		digestcodec.WriteI64(h, &tmp, int64(in.Pos.X))
		digestcodec.WriteI64(h, &tmp, int64(in.Pos.Y))
		h.Write([]byte{digestcodec.BoolByte(in.Rotation != nil)})
		if in.Rotation != nil {
			h.Write([]byte{byte(*in.Rotation)})
		}
		digestcodec.WriteF64(h, &tmp, in.Cooldown)
		digestcodec.WriteF64(h, &tmp, in.Power)
		digestcodec.WriteF64(h, &tmp, in.MaxPower)
		digestcodec.WriteString(h, &tmp, in.Recipe)
		digestcodec.WriteSortedNonZeroIntMap(h, &tmp, in.Stored)
	}

	digestcodec.WriteU64(h, &tmp, uint64(len(w.items)))
	for _, it := range w.items {
		digestcodec.WriteU64(h, &tmp, it.ID)
		h.Write([]byte{byte(it.Type)})
		digestcodec.WriteI64(h, &tmp, int64(it.X))
		digestcodec.WriteI64(h, &tmp, int64(it.Y))
	}

	digestcodec.WriteSortedNonZeroIntMap(h, &tmp, w.inventory)
	digestcodec.WriteI64(h, &tmp, int64(w.selectedTool))
	h.Write([]byte{byte(w.toolRotation)})

	return hex.EncodeToString(h.Sum(nil))
}
