package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueueIsFIFO(t *testing.T) {
	q := NewEventQueue(4)

	_, err := q.Remove()
	assert.ErrorIs(t, err, ErrQueueEmpty)

	first := Event{Type: EventKeyPressed, Key: ebiten.KeyA}
	second := Event{Type: EventMouseMoved, X: 3, Y: 4}
	require.NoError(t, q.Insert(first))
	require.NoError(t, q.Insert(second))
	assert.Equal(t, 2, q.Len())

	ev, err := q.Remove()
	require.NoError(t, err)
	assert.Equal(t, first, ev)
	ev, err = q.Remove()
	require.NoError(t, err)
	assert.Equal(t, second, ev)
	assert.Zero(t, q.Len())
}

func TestEventQueueFull(t *testing.T) {
	q := NewEventQueue(2)
	require.NoError(t, q.Insert(Event{Type: EventClosed}))
	require.NoError(t, q.Insert(Event{Type: EventClosed}))

	assert.ErrorIs(t, q.Insert(Event{Type: EventClosed}), ErrQueueFull)
	assert.Equal(t, 2, q.Len())

	// inserting on a full queue through the collector drops the event quietly
	c := &inputCollector{}
	c.insert(q, Event{Type: EventResized})
	assert.Equal(t, 2, q.Len())
}

func TestEventQueueDiscard(t *testing.T) {
	q := NewEventQueue(8)
	require.NoError(t, q.Insert(Event{Type: EventKeyPressed, Key: ebiten.KeySpace}))
	require.NoError(t, q.Insert(Event{Type: EventResized, Width: 640, Height: 480}))
	require.NoError(t, q.Insert(Event{Type: EventKeyPressed, Key: ebiten.KeyA}))
	require.NoError(t, q.Insert(Event{Type: EventMouseMoved, X: 1, Y: 2}))

	n := q.Discard(func(ev Event) bool { return ev.Type == EventKeyPressed })
	assert.Equal(t, 2, n)

	ev, err := q.Remove()
	require.NoError(t, err)
	assert.Equal(t, EventResized, ev.Type)
	ev, err = q.Remove()
	require.NoError(t, err)
	assert.Equal(t, EventMouseMoved, ev.Type)
	assert.Zero(t, q.Len())
}

func TestQueueKeysMarksRepeats(t *testing.T) {
	q := NewEventQueue(8)
	c := &inputCollector{}
	durations := map[ebiten.Key]int{ebiten.KeyA: 1, ebiten.KeyB: keyRepeatDelay, ebiten.KeyC: 2}

	c.queueKeys(q, []ebiten.Key{ebiten.KeyA, ebiten.KeyB, ebiten.KeyC}, func(k ebiten.Key) int { return durations[k] })

	require.Equal(t, 2, q.Len())
	ev, _ := q.Remove()
	assert.Equal(t, Event{Type: EventKeyPressed, Key: ebiten.KeyA}, ev)
	ev, _ = q.Remove()
	assert.Equal(t, Event{Type: EventKeyPressed, Key: ebiten.KeyB, Repeat: true}, ev)
}

func TestSuppressHeldKeysUntilReleased(t *testing.T) {
	q := NewEventQueue(8)
	c := &inputCollector{keys: []ebiten.Key{ebiten.KeySpace}}
	c.suppressHeld()

	// Space is still held past the repeat delay after the page switch
	held := func(ebiten.Key) int { return keyRepeatDelay }
	c.queueKeys(q, []ebiten.Key{ebiten.KeySpace}, held)
	assert.Zero(t, q.Len())

	// released, then pressed again
	c.queueKeys(q, nil, held)
	c.queueKeys(q, []ebiten.Key{ebiten.KeySpace}, func(ebiten.Key) int { return 1 })
	require.Equal(t, 1, q.Len())
	ev, _ := q.Remove()
	assert.Equal(t, Event{Type: EventKeyPressed, Key: ebiten.KeySpace}, ev)
}

func TestKeyRepeats(t *testing.T) {
	tests := []struct {
		duration int
		want     bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{keyRepeatDelay - 1, false},
		{keyRepeatDelay, true},
		{keyRepeatDelay + 1, false},
		{keyRepeatDelay + keyRepeatInterval, true},
		{keyRepeatDelay + 2*keyRepeatInterval, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keyRepeats(tt.duration), "duration %d", tt.duration)
	}
}

func TestPageKindString(t *testing.T) {
	assert.Equal(t, "menu", PageMenu.String())
	assert.Equal(t, "about", PageAbout.String())
	assert.Equal(t, "play", PagePlay.String())
	assert.Equal(t, "unknown", pageCount.String())
}
