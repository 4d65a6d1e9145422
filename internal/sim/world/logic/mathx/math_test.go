package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorDiv_RoundsTowardNegativeInfinity(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{a: 0, b: 32, want: 0},
		{a: 31, b: 32, want: 0},
		{a: 32, b: 32, want: 1},
		{a: -1, b: 32, want: -1},
		{a: -32, b: 32, want: -1},
		{a: -33, b: 32, want: -2},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, FloorDiv(c.a, c.b), "FloorDiv(%d,%d)", c.a, c.b)
	}
}

func TestAbsInt(t *testing.T) {
	assert.Equal(t, 8, AbsInt(-8))
	assert.Equal(t, 8, AbsInt(8))
	assert.Equal(t, 0, AbsInt(0))
}
