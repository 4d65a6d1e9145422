package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoise_GoldenValues(t *testing.T) {
	require.Equal(t, 0.5978840514081261, Noise(3, 5, 3))
	require.Equal(t, 0.32818058878063394, OctaveNoise(3, 5, 3))

	cases := []struct {
		x, y    float64
		channel uint32
		want    float64
	}{
		{x: 0, y: 0, channel: 8, want: 0.9062550947783178},
		{x: 10, y: 20, channel: 8, want: 0.15261718525689805},
		{x: 7, y: 3, channel: 10, want: 0.32680568448115893},
		{x: 12, y: 7, channel: 8, want: 0.48882367108533087},
		{x: 12, y: 7, channel: 10, want: 0.6114480104944936},
		{x: 12.5, y: 7.25, channel: 8, want: 0.5208005426053736},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, OctaveNoise(c.x, c.y, c.channel), "OctaveNoise(%v,%v,%d)", c.x, c.y, c.channel)
	}
}

func TestNoise_RepeatedCallsAgree(t *testing.T) {
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			a := OctaveNoise(float64(x), float64(y), 8)
			b := OctaveNoise(float64(x), float64(y), 8)
			require.Equal(t, a, b)
			require.GreaterOrEqual(t, a, 0.0)
			require.LessOrEqual(t, a, 1.0)
		}
	}
}

func TestNoise_ChannelsDecorrelate(t *testing.T) {
	same := 0
	for x := 0; x < 32; x++ {
		if Noise(float64(x), 0, 8) == Noise(float64(x), 0, 10) {
			same++
		}
	}
	assert.Less(t, same, 2)
}

func TestChecksum32_TruncatedTable(t *testing.T) {
	assert.Equal(t, uint32(4294967087), Checksum32(3, 5, 3))
	assert.Equal(t, uint32(4294967184), Checksum32(0, 0, 8))
	assert.Equal(t, uint32(0), Checksum32())
}

func TestXorShift32_ZeroSeedSkipsWarmup(t *testing.T) {
	r := NewXorShift32(0)
	assert.Equal(t, uint32(2497366906), r.Next())
}

func TestFloorU32_Saturates(t *testing.T) {
	assert.Equal(t, uint32(0), floorU32(-3.5))
	assert.Equal(t, uint32(3), floorU32(3.99))
	assert.Equal(t, uint32(0xffffffff), floorU32(1e12))
}

func TestOreAt_GoldenTiles(t *testing.T) {
	p := DefaultOreParams()
	cases := []struct {
		x, y       int
		iron, coal uint32
	}{
		{x: 0, y: 0, iron: 625},
		{x: 1, y: 0, iron: 422},
		{x: 2, y: 0, coal: 419},
		{x: 5, y: 40, iron: 199},
		{x: 12, y: 7},
	}
	for _, c := range cases {
		iron, coal := OreAt(p, c.x, c.y)
		assert.Equalf(t, c.iron, iron, "iron at (%d,%d)", c.x, c.y)
		assert.Equalf(t, c.coal, coal, "coal at (%d,%d)", c.x, c.y)
	}
}

func TestOreAt_Exclusive(t *testing.T) {
	p := DefaultOreParams()
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			iron, coal := OreAt(p, x, y)
			if iron > 0 {
				require.Zerof(t, coal, "tile (%d,%d) has both ores", x, y)
			}
		}
	}
}
