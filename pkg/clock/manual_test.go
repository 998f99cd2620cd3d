package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualFiresInDeadlineOrder(t *testing.T) {
	start := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	m := NewManual(start)

	var fired []string
	m.AfterFunc(3*time.Second, func() { fired = append(fired, "c") })
	m.AfterFunc(1*time.Second, func() { fired = append(fired, "a") })
	m.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })

	m.Advance(2 * time.Second)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, 1, m.Pending())
	assert.Equal(t, start.Add(2*time.Second), m.Now())

	m.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Zero(t, m.Pending())
}

func TestManualStop(t *testing.T) {
	m := NewManual(time.Time{})
	fired := false
	timer := m.AfterFunc(time.Second, func() { fired = true })

	require.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	m.Advance(time.Minute)
	assert.False(t, fired)
}

func TestManualRearmFromCallback(t *testing.T) {
	m := NewManual(time.Time{})
	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		m.AfterFunc(10*time.Second, tick)
	}
	m.AfterFunc(10*time.Second, tick)

	m.Advance(35 * time.Second)
	assert.Equal(t, 3, ticks)
	assert.Equal(t, 1, m.Pending())
}
