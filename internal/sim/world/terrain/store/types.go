package store

import (
	"crypto/sha256"
	"encoding/binary"
)

// Cell is the ore state of one tile.
type Cell struct {
	IronOre uint32
	CoalOre uint32
}

// Grid is a dense width*height board of cells, row-major.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell
}

func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
}

func (g *Grid) index(x, y int) int {
	return x + y*g.Width
}

// Digest hashes every cell in row-major order.
func (g *Grid) Digest() [32]byte {
	h := sha256.New()
	var tmp [8]byte
	binary.LittleEndian.PutUint32(tmp[:4], uint32(g.Width))
	binary.LittleEndian.PutUint32(tmp[4:], uint32(g.Height))
	h.Write(tmp[:])
	for _, c := range g.Cells {
		binary.LittleEndian.PutUint32(tmp[:4], c.IronOre)
		binary.LittleEndian.PutUint32(tmp[4:], c.CoalOre)
		h.Write(tmp[:])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
