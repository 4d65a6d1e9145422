package gen

// OreParams rescales channel noise into ore counts:
// count = max(noise*Scale - Offset, 0), truncated.
type OreParams struct {
	IronScale   float64
	IronOffset  float64
	IronChannel uint32

	CoalScale   float64
	CoalOffset  float64
	CoalChannel uint32
}

func DefaultOreParams() OreParams {
	return OreParams{
		IronScale:   4000,
		IronOffset:  3000,
		IronChannel: 8,
		CoalScale:   2000,
		CoalOffset:  1500,
		CoalChannel: 10,
	}
}

func oreCount(noise, scale, offset float64) uint32 {
	v := float64(noise*scale) - offset
	if v <= 0 {
		return 0
	}
	return uint32(v)
}

// OreAt decides the deposit of tile (x, y). At most one of the returned
// counts is nonzero; coal wins only when strictly richer than iron.
func OreAt(p OreParams, x, y int) (iron, coal uint32) {
	fx, fy := float64(x), float64(y)
	iv := oreCount(OctaveNoise(fx, fy, p.IronChannel), p.IronScale, p.IronOffset)
	cv := oreCount(OctaveNoise(fx, fy, p.CoalChannel), p.CoalScale, p.CoalOffset)
	switch {
	case iv < cv:
		return 0, cv
	case iv > 0:
		return iv, 0
	default:
		return 0, 0
	}
}
