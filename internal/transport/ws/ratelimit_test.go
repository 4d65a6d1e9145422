package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCmdWindow(t *testing.T) {
	t0 := time.Unix(1000, 0)
	c := &cmdWindow{window: time.Second, max: 2}

	ok, _ := c.allow(t0)
	assert.True(t, ok)
	ok, _ = c.allow(t0.Add(100 * time.Millisecond))
	assert.True(t, ok)
	ok, retry := c.allow(t0.Add(400 * time.Millisecond))
	assert.False(t, ok)
	assert.Equal(t, 600*time.Millisecond, retry)

	ok, _ = c.allow(t0.Add(time.Second))
	assert.True(t, ok)
}

func TestCmdWindow_Unlimited(t *testing.T) {
	c := &cmdWindow{}
	for i := 0; i < 100; i++ {
		ok, _ := c.allow(time.Unix(0, 0))
		assert.True(t, ok)
	}
}
