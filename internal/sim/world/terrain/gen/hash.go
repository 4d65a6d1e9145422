package gen

import "math"

// crcTable holds the reflected CRC-32 polynomial remainders truncated to
// their low byte. Terrain depends on the truncation; do not widen it.
var crcTable = makeCRCTable()

func makeCRCTable() [256]uint8 {
	var t [256]uint8
	for n := 0; n < 256; n++ {
		c := uint32(n)
		for k := 0; k < 8; k++ {
			if c&1 != 0 {
				c = 0xEDB88320 ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		t[n] = uint8(c)
	}
	return t
}

// Checksum32 folds each word into the checksum in four steps, shifting the
// word right by 0, 1, 2 and 3 bits.
func Checksum32(words ...uint32) uint32 {
	crc := uint32(0xffffffff)
	for _, v := range words {
		for j := 0; j < 4; j++ {
			crc = (crc >> 8) ^ uint32(crcTable[(crc^(v>>j))&0xff])
		}
	}
	return crc ^ 0xffffffff
}

const xorshiftInit uint32 = 2463534242

// XorShift32 is Marsaglia's 32-bit xorshift (13, 17, 5).
type XorShift32 struct {
	x uint32
}

func NewXorShift32(seed uint32) *XorShift32 {
	r := &XorShift32{x: xorshiftInit}
	if seed > 0 {
		r.x ^= seed
		r.Next()
	}
	r.Next()
	return r
}

func (r *XorShift32) Next() uint32 {
	x := r.x ^ (r.x << 13)
	x ^= x >> 17
	r.x = x ^ (x << 5)
	return r.x
}

// Float64 draws the next value scaled by 1/0xffffffff.
func (r *XorShift32) Float64() float64 {
	return float64(r.Next()) / float64(math.MaxUint32)
}

// floorU32 floors v and saturates it into the uint32 range; NaN maps to 0.
func floorU32(v float64) uint32 {
	f := math.Floor(v)
	switch {
	case f != f, f <= 0:
		return 0
	case f >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(f)
}
