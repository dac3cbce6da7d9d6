package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oddstream.games/tetris/resource"
	"oddstream.games/tetris/sound"
)

func newTestMenu() (*MenuMain, *resource.Registry) {
	reg := resource.NewRegistry(nil)
	return NewMenuMain(reg, 800, 600), reg
}

func TestMenuStartsMusic(t *testing.T) {
	m, reg := newTestMenu()

	assert.Equal(t, PageMenu, m.Kind())
	assert.Equal(t, MenuNone, m.Selection())
	assert.True(t, reg.Music(musicMenu).IsPlaying())

	m.StopBackgroundMusic()
	assert.False(t, reg.Music(musicMenu).IsPlaying())

	reg.Music(musicMenu).SetVolume(10)
	m.PlayBackgroundMusic()
	assert.True(t, reg.Music(musicMenu).IsPlaying())
	assert.Equal(t, sound.MaxVolume, reg.Music(musicMenu).Volume())
}

func TestMenuLayout(t *testing.T) {
	m, _ := newTestMenu()

	require.Len(t, m.items, 3)
	for i, want := range []struct {
		option MenuOption
		y      int
	}{{MenuPlay, 240}, {MenuAbout, 360}, {MenuExit, 480}} {
		assert.Equal(t, want.option, m.items[i].option)
		x0, y0, x1, y1 := m.items[i].button.Rect()
		assert.Equal(t, 400, (x0+x1)/2)
		assert.Equal(t, want.y, (y0+y1)/2)
	}

	m.Layout(1000, 1000)
	x0, y0, x1, y1 := m.items[0].button.Rect()
	assert.Equal(t, 500, (x0+x1)/2)
	assert.Equal(t, 400, (y0+y1)/2)
}

func TestMenuClickSelects(t *testing.T) {
	m, reg := newTestMenu()
	click := sound.NewSilent()
	reg.SetSound(soundMouseClick, click)

	// a miss selects nothing
	m.HandleEvent(Event{Type: EventMousePressed, Button: ebiten.MouseButtonLeft, X: 10, Y: 10})
	assert.Equal(t, MenuNone, m.Selection())
	assert.False(t, click.IsPlaying())

	// right button is ignored
	m.HandleEvent(Event{Type: EventMousePressed, Button: ebiten.MouseButtonRight, X: 400, Y: 360})
	assert.Equal(t, MenuNone, m.Selection())

	m.HandleEvent(Event{Type: EventMousePressed, Button: ebiten.MouseButtonLeft, X: 400, Y: 360})
	assert.Equal(t, MenuAbout, m.Selection())
	assert.True(t, click.IsPlaying())

	m.ResetSelection()
	assert.Equal(t, MenuNone, m.Selection())
}

func TestMenuHover(t *testing.T) {
	m, _ := newTestMenu()

	m.HandleEvent(Event{Type: EventMouseMoved, X: 400, Y: 480})
	assert.False(t, m.items[0].button.hover)
	assert.True(t, m.items[2].button.hover)

	m.HandleEvent(Event{Type: EventMouseMoved, X: 0, Y: 0})
	for _, it := range m.items {
		assert.False(t, it.button.hover)
	}
}

func TestMenuKeyboard(t *testing.T) {
	m, _ := newTestMenu()

	// Enter with nothing focused does nothing
	m.HandleEvent(Event{Type: EventKeyPressed, Key: ebiten.KeyEnter})
	assert.Equal(t, MenuNone, m.Selection())

	m.HandleEvent(Event{Type: EventKeyPressed, Key: ebiten.KeyArrowDown})
	m.HandleEvent(Event{Type: EventKeyPressed, Key: ebiten.KeyArrowDown})
	assert.True(t, m.items[1].button.hover)
	m.HandleEvent(Event{Type: EventKeyPressed, Key: ebiten.KeyEnter})
	assert.Equal(t, MenuAbout, m.Selection())

	// focus wraps around
	m.ResetSelection()
	m.HandleEvent(Event{Type: EventKeyPressed, Key: ebiten.KeyArrowDown})
	m.HandleEvent(Event{Type: EventKeyPressed, Key: ebiten.KeyArrowDown})
	m.HandleEvent(Event{Type: EventKeyPressed, Key: ebiten.KeyEnter})
	assert.Equal(t, MenuPlay, m.Selection())
}

func TestMenuSpaceDoesNotSelect(t *testing.T) {
	m, _ := newTestMenu()

	m.HandleEvent(Event{Type: EventKeyPressed, Key: ebiten.KeyArrowDown})
	m.HandleEvent(Event{Type: EventKeyPressed, Key: ebiten.KeySpace})
	assert.Equal(t, MenuNone, m.Selection())
}

func TestMenuFocusFromNothingUp(t *testing.T) {
	m, _ := newTestMenu()

	m.HandleEvent(Event{Type: EventKeyPressed, Key: ebiten.KeyArrowUp})
	m.HandleEvent(Event{Type: EventKeyPressed, Key: ebiten.KeyEnter})
	assert.Equal(t, MenuExit, m.Selection())
}
