package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"oddstream.games/tetris/util"
)

// EventType classifies window and input events.
type EventType int

const (
	EventClosed EventType = iota
	EventResized
	EventKeyPressed
	EventMouseMoved
	EventMousePressed
	EventMouseWheel
)

// Event is one window or input event. Only the fields for its Type are set.
type Event struct {
	Type          EventType
	Key           ebiten.Key
	Button        ebiten.MouseButton
	X, Y          int
	Width, Height int
	WheelY        float64
	Repeat        bool // key press generated by holding the key down
}

const (
	// frames a key is held before it starts repeating, then frames between repeats
	keyRepeatDelay    = 15
	keyRepeatInterval = 4
)

// inputCollector turns ebiten's polled input state into queued events.
type inputCollector struct {
	keys         []ebiten.Key
	cursorX      int
	cursorY      int
	cursorJoined bool
	suppressed   map[ebiten.Key]bool // held across a page switch, ignored until released
}

func keyRepeats(duration int) bool {
	if duration == 1 {
		return true
	}
	return duration >= keyRepeatDelay && (duration-keyRepeatDelay)%keyRepeatInterval == 0
}

// collect queues the events of the current frame.
func (c *inputCollector) collect(q *EventQueue) {
	if ebiten.IsWindowBeingClosed() {
		c.insert(q, Event{Type: EventClosed})
	}

	c.keys = inpututil.AppendPressedKeys(c.keys[:0])
	c.queueKeys(q, c.keys, inpututil.KeyPressDuration)

	x, y := ebiten.CursorPosition()
	if !c.cursorJoined || x != c.cursorX || y != c.cursorY {
		c.cursorX, c.cursorY, c.cursorJoined = x, y, true
		c.insert(q, Event{Type: EventMouseMoved, X: x, Y: y})
	}

	for _, b := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight} {
		if inpututil.IsMouseButtonJustPressed(b) {
			c.insert(q, Event{Type: EventMousePressed, Button: b, X: x, Y: y})
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		c.insert(q, Event{Type: EventMouseWheel, WheelY: dy, X: x, Y: y})
	}
}

// queueKeys queues a press for each key in pressed that is due to fire this frame.
func (c *inputCollector) queueKeys(q *EventQueue, pressed []ebiten.Key, duration func(ebiten.Key) int) {
	for k := range c.suppressed {
		if !util.Contains(pressed, k) {
			delete(c.suppressed, k)
		}
	}
	for _, k := range pressed {
		if c.suppressed[k] {
			continue
		}
		if d := duration(k); keyRepeats(d) {
			c.insert(q, Event{Type: EventKeyPressed, Key: k, Repeat: d > 1})
		}
	}
}

// suppressHeld ignores the keys held down right now until they are released
func (c *inputCollector) suppressHeld() {
	if c.suppressed == nil {
		c.suppressed = make(map[ebiten.Key]bool)
	}
	for _, k := range c.keys {
		c.suppressed[k] = true
	}
}

func (c *inputCollector) insert(q *EventQueue, ev Event) {
	if err := q.Insert(ev); err != nil {
		logger.Debug("input event dropped", "type", ev.Type, "err", err)
	}
}
