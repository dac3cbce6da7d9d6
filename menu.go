package main

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"oddstream.games/tetris/resource"
	"oddstream.games/tetris/sound"
)

// MenuOption is what the player picked on the main menu.
type MenuOption int

const (
	MenuNone MenuOption = iota
	MenuPlay
	MenuAbout
	MenuExit
)

var (
	MenuBackground = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	MenuGradientTo = color.RGBA{R: 0x10, G: 0x10, B: 0x30, A: 0xff}
	MenuTitle      = color.RGBA{R: 0xff, G: 0xb5, B: 0x00, A: 0xff}
)

type menuItem struct {
	option MenuOption
	button *Button
}

// MenuMain represents the main menu page.
type MenuMain struct {
	registry      *resource.Registry
	items         []menuItem
	selection     MenuOption
	focus         int // keyboard focus, -1 for none
	width, height int
	titlePos      image.Point
	fallbackBG    *ebiten.Image
}

var _ MenuPage = (*MenuMain)(nil)

// NewMenuMain creates the menu and starts the menu music
func NewMenuMain(reg *resource.Registry, width, height int) *MenuMain {
	m := &MenuMain{registry: reg, focus: -1}
	m.items = []menuItem{
		{MenuPlay, NewButton("Play", 240, 56)},
		{MenuAbout, NewButton("About", 240, 56)},
		{MenuExit, NewButton("Exit", 240, 56)},
	}
	m.Layout(width, height)
	m.PlayBackgroundMusic()
	return m
}

func (m *MenuMain) Kind() PageKind { return PageMenu }

// Layout places the title and buttons for a window of the given size
func (m *MenuMain) Layout(width, height int) {
	m.width, m.height = width, height

	xCenter := width / 2
	slots := len(m.items) + 2 // title, buttons, bottom margin
	yPlaces := make([]int, slots)
	for i := range yPlaces {
		yPlaces[i] = (height / slots) * i
	}

	m.titlePos = image.Point{X: xCenter, Y: yPlaces[1]}
	for i, it := range m.items {
		it.button.SetPosition(xCenter, yPlaces[i+2])
	}
}

func (m *MenuMain) itemAt(x, y int) int {
	for i, it := range m.items {
		if it.button.Contains(x, y) {
			return i
		}
	}
	return -1
}

func (m *MenuMain) moveFocus(d int) {
	n := len(m.items)
	if m.focus < 0 {
		if d > 0 {
			m.focus = 0
		} else {
			m.focus = n - 1
		}
		return
	}
	m.focus = (m.focus + d + n) % n
}

func (m *MenuMain) choose(i int) {
	m.registry.Sound(soundMouseClick).Play()
	m.selection = m.items[i].option
}

func (m *MenuMain) HandleEvent(ev Event) {
	switch ev.Type {
	case EventMouseMoved:
		m.focus = m.itemAt(ev.X, ev.Y)
	case EventMousePressed:
		if ev.Button != ebiten.MouseButtonLeft {
			break
		}
		if i := m.itemAt(ev.X, ev.Y); i >= 0 {
			m.choose(i)
		}
	case EventKeyPressed:
		switch ev.Key {
		case ebiten.KeyArrowUp:
			m.moveFocus(-1)
		case ebiten.KeyArrowDown:
			m.moveFocus(1)
		case ebiten.KeyEnter:
			if m.focus >= 0 {
				m.choose(m.focus)
			}
		}
	}
	for i, it := range m.items {
		it.button.SetHover(i == m.focus)
	}
}

// Selection returns the option picked since the last ResetSelection
func (m *MenuMain) Selection() MenuOption {
	return m.selection
}

func (m *MenuMain) ResetSelection() {
	m.selection = MenuNone
}

// PlayBackgroundMusic starts the menu music at full volume, unless it is already playing
func (m *MenuMain) PlayBackgroundMusic() {
	music := m.registry.Music(musicMenu)
	music.SetVolume(sound.MaxVolume)
	if !music.IsPlaying() {
		music.Play()
	}
}

func (m *MenuMain) StopBackgroundMusic() {
	m.registry.Music(musicMenu).Stop()
}

func makeGradientImg(width, height int, top, bottom color.Color) *ebiten.Image {
	dc := gg.NewContext(width, height)
	grad := gg.NewLinearGradient(0, 0, 0, float64(height))
	grad.AddColorStop(0, top)
	grad.AddColorStop(1, bottom)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()
	return ebiten.NewImageFromImage(dc.Image())
}

// Draw draws the menu to the given screen
func (m *MenuMain) Draw(screen *ebiten.Image) {
	if bg := m.registry.Texture(textureMenuBG); bg != nil {
		drawImageIn(screen, bg, screen.Bounds(), 1)
	} else {
		sz := screen.Bounds().Size()
		if m.fallbackBG == nil || m.fallbackBG.Bounds().Size() != sz {
			m.fallbackBG = makeGradientImg(sz.X, sz.Y, MenuBackground, MenuGradientTo)
		}
		screen.DrawImage(m.fallbackBG, nil)
	}

	drawCentredText(screen, windowTitle, m.registry.Face(fontMain, 48), m.titlePos.X, m.titlePos.Y, MenuTitle)

	face := m.registry.Face(fontMain, 28)
	for _, it := range m.items {
		it.button.Draw(screen, face)
	}
}
