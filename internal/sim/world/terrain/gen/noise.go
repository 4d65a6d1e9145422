package gen

import "math"

const (
	octaves     = 2
	persistence = 0.5
)

// Noise returns the lattice value for the cell containing (x, y) on the given
// channel. It is a pure function of floor(x), floor(y) and channel.
func Noise(x, y float64, channel uint32) float64 {
	seed := Checksum32(floorU32(x), floorU32(y), channel)
	return NewXorShift32(seed).Float64()
}

// OctaveNoise blends bilinear value noise over block sizes 2 and 1.
//
// The explicit float64 conversions keep every product rounded on its own so
// results stay bit-identical on targets that would otherwise fuse
// multiply-adds.
func OctaveNoise(x, y float64, channel uint32) float64 {
	var sum, maxv float64
	f := 1.0
	for i := octaves - 1; i >= 0; i-- {
		cell := float64(int(1) << i)
		cx, cy := x/cell, y/cell
		a00 := Noise(cx, cy, channel)
		a01 := Noise(cx, cy+1, channel)
		a10 := Noise(cx+1, cy, channel)
		a11 := Noise(cx+1, cy+1, channel)
		fx := math.Mod(x, cell) / cell
		fy := math.Mod(y, cell) / cell

		top := float64(a00*(1-fx)) + float64(a10*fx)
		bottom := float64(a01*(1-fx)) + float64(a11*fx)
		v := float64(top*(1-fy)) + float64(bottom*fy)
		sum += float64(v * f)
		maxv += f
		f *= persistence
	}
	return sum / maxv
}
