package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"oddstream.games/tetris/resource"
	"oddstream.games/tetris/sound"
)

func TestAboutScrollIsClamped(t *testing.T) {
	a := NewAboutPage(resource.NewRegistry(nil), 800, 600)
	assert.Equal(t, PageAbout, a.Kind())

	a.HandleEvent(Event{Type: EventMouseWheel, WheelY: 1})
	assert.Zero(t, a.scroll)

	a.HandleEvent(Event{Type: EventMouseWheel, WheelY: -1})
	assert.Equal(t, float64(aboutLineHeight), a.scroll)

	a.HandleEvent(Event{Type: EventKeyPressed, Key: ebiten.KeyArrowDown})
	assert.Equal(t, float64(2*aboutLineHeight), a.scroll)

	a.HandleEvent(Event{Type: EventKeyPressed, Key: ebiten.KeyArrowUp})
	assert.Equal(t, float64(aboutLineHeight), a.scroll)

	for i := 0; i < 100; i++ {
		a.HandleEvent(Event{Type: EventMouseWheel, WheelY: -1})
	}
	assert.Equal(t, a.maxScroll(), a.scroll)
	assert.Positive(t, a.maxScroll())

	a.HandleEvent(Event{Type: EventKeyPressed, Key: ebiten.KeyHome})
	assert.Zero(t, a.scroll)
}

func TestAboutNoScrollWhenEverythingFits(t *testing.T) {
	a := NewAboutPage(resource.NewRegistry(nil), 800, 2000)

	a.HandleEvent(Event{Type: EventKeyPressed, Key: ebiten.KeyPageDown})
	assert.Zero(t, a.scroll)
}

func TestAboutResizeReclampsScroll(t *testing.T) {
	a := NewAboutPage(resource.NewRegistry(nil), 800, 600)
	a.HandleEvent(Event{Type: EventKeyPressed, Key: ebiten.KeyPageDown})
	a.HandleEvent(Event{Type: EventKeyPressed, Key: ebiten.KeyPageDown})
	assert.Positive(t, a.scroll)

	a.Layout(800, 2000)
	assert.Zero(t, a.scroll)
	assert.Equal(t, 800, a.width)
	assert.Equal(t, 2000, a.height)
	_, y0, _, y1 := a.back.Rect()
	assert.Equal(t, 2000-aboutBottomMargin/2, (y0+y1)/2)
}

func TestAboutBackAndReset(t *testing.T) {
	for _, ev := range []Event{
		{Type: EventKeyPressed, Key: ebiten.KeyEscape},
		{Type: EventKeyPressed, Key: ebiten.KeyBackspace},
		{Type: EventMousePressed, Button: ebiten.MouseButtonLeft, X: 400, Y: 545},
	} {
		reg := resource.NewRegistry(nil)
		click := sound.NewSilent()
		reg.SetSound(soundMouseClick, click)
		a := NewAboutPage(reg, 800, 600)
		a.HandleEvent(Event{Type: EventMouseWheel, WheelY: -2})
		assert.False(t, a.WantsToReturn())

		a.HandleEvent(ev)
		assert.True(t, a.WantsToReturn())
		assert.True(t, click.IsPlaying())

		a.Reset()
		assert.False(t, a.WantsToReturn())
		assert.Zero(t, a.scroll)
	}
}

func TestAboutBackButtonHover(t *testing.T) {
	a := NewAboutPage(resource.NewRegistry(nil), 800, 600)

	a.HandleEvent(Event{Type: EventMouseMoved, X: 400, Y: 545})
	assert.True(t, a.back.hover)

	a.HandleEvent(Event{Type: EventMousePressed, Button: ebiten.MouseButtonLeft, X: 10, Y: 10})
	assert.False(t, a.WantsToReturn())

	a.Reset()
	assert.False(t, a.back.hover)
}
