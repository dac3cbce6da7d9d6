package delay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type manualClock struct {
	t time.Time
}

func (c *manualClock) Now() time.Time { return c.t }

func (c *manualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestNewDelayIsInactive(t *testing.T) {
	d := New()

	assert.False(t, d.IsActive())
	assert.False(t, d.IsDone())
	assert.Zero(t, d.Elapsed())
}

func TestDelayLifecycle(t *testing.T) {
	clock := &manualClock{t: time.Unix(1000, 0)}
	d := NewWithClock(clock.Now)

	d.Start(time.Second)
	assert.True(t, d.IsActive())
	assert.False(t, d.IsDone())
	assert.Equal(t, time.Second, d.Duration())

	clock.Advance(400 * time.Millisecond)
	assert.Equal(t, 400*time.Millisecond, d.Elapsed())
	assert.False(t, d.IsDone())

	clock.Advance(600 * time.Millisecond)
	assert.True(t, d.IsDone())

	d.Reset()
	assert.False(t, d.IsActive())
	assert.False(t, d.IsDone())
	assert.Zero(t, d.Elapsed())
}

func TestDelayRestartDropsPreviousTimer(t *testing.T) {
	clock := &manualClock{t: time.Unix(0, 0)}
	d := NewWithClock(clock.Now)

	d.Start(time.Second)
	clock.Advance(900 * time.Millisecond)
	d.Start(2 * time.Second)

	assert.Zero(t, d.Elapsed())
	assert.Equal(t, 2*time.Second, d.Duration())

	clock.Advance(time.Second)
	assert.False(t, d.IsDone())
}
