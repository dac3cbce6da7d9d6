package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"oddstream.games/tetris/resource"
	"oddstream.games/tetris/util"
)

var (
	AboutBackground = color.RGBA{R: 0x20, G: 0x20, B: 0x30, A: 0xff}
	AboutText       = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
)

const (
	aboutLineHeight   = 28
	aboutTop          = 70
	aboutBottomMargin = 110
	aboutLeftMargin   = 60
)

var aboutLines = []string{
	"Tetris remake",
	"",
	"Pieces fall into a ten by twenty well.",
	"Fill a row from wall to wall and it explodes,",
	"dropping everything above it one row.",
	"The game ends when a new piece has no room to enter.",
	"",
	"Controls",
	"  Left / Right      move",
	"  Up or X           rotate clockwise",
	"  Z                 rotate anticlockwise",
	"  Down              soft drop",
	"  Space             hard drop",
	"  Escape            back to the menu",
	"",
	"Scoring",
	"  1 row     100 x level",
	"  2 rows    300 x level",
	"  3 rows    500 x level",
	"  4 rows    800 x level",
	"  soft drop 1 per row, hard drop 2 per row",
	"",
	"Every ten rows the level goes up",
	"and the pieces fall faster.",
	"",
	"Scroll with the mouse wheel or the arrow keys.",
}

// AboutPage shows a scrollable page of text and a Back button.
type AboutPage struct {
	registry      *resource.Registry
	back          *Button
	scroll        float64
	wantsReturn   bool
	width, height int
}

var _ ReturnPage = (*AboutPage)(nil)

func NewAboutPage(reg *resource.Registry, width, height int) *AboutPage {
	a := &AboutPage{registry: reg, back: NewButton("Back", 160, 48)}
	a.Layout(width, height)
	return a
}

func (a *AboutPage) Kind() PageKind { return PageAbout }

// Layout places the Back button and re-clamps the scroll for a window of the given size
func (a *AboutPage) Layout(width, height int) {
	a.width, a.height = width, height
	a.back.SetPosition(width/2, height-aboutBottomMargin/2)
	a.scrollBy(0)
}

func (a *AboutPage) visibleHeight() int {
	return util.Max(0, a.height-aboutTop-aboutBottomMargin)
}

func (a *AboutPage) maxScroll() float64 {
	return math.Max(0, float64(len(aboutLines)*aboutLineHeight-a.visibleHeight()))
}

func (a *AboutPage) scrollBy(d float64) {
	a.scroll = util.Clamp(a.scroll+d, 0, a.maxScroll())
}

func (a *AboutPage) goBack() {
	a.registry.Sound(soundMouseClick).Play()
	a.wantsReturn = true
}

func (a *AboutPage) HandleEvent(ev Event) {
	switch ev.Type {
	case EventMouseWheel:
		a.scrollBy(-ev.WheelY * aboutLineHeight)
	case EventMouseMoved:
		a.back.SetHover(a.back.Contains(ev.X, ev.Y))
	case EventMousePressed:
		if ev.Button == ebiten.MouseButtonLeft && a.back.Contains(ev.X, ev.Y) {
			a.goBack()
		}
	case EventKeyPressed:
		switch ev.Key {
		case ebiten.KeyArrowUp:
			a.scrollBy(-aboutLineHeight)
		case ebiten.KeyArrowDown:
			a.scrollBy(aboutLineHeight)
		case ebiten.KeyPageUp:
			a.scrollBy(-float64(a.visibleHeight()))
		case ebiten.KeyPageDown:
			a.scrollBy(float64(a.visibleHeight()))
		case ebiten.KeyHome:
			a.scroll = 0
		case ebiten.KeyEscape, ebiten.KeyBackspace:
			a.goBack()
		}
	}
}

// WantsToReturn reports whether the player asked to go back to the menu
func (a *AboutPage) WantsToReturn() bool {
	return a.wantsReturn
}

// Reset scrolls back to the top and clears the return request
func (a *AboutPage) Reset() {
	a.scroll = 0
	a.wantsReturn = false
	a.back.SetHover(false)
}

// Draw draws the about page to the given screen
func (a *AboutPage) Draw(screen *ebiten.Image) {
	if bg := a.registry.Texture(textureAboutBG); bg != nil {
		drawImageIn(screen, bg, screen.Bounds(), 1)
	} else {
		screen.Fill(AboutBackground)
	}

	// SubImage keeps screen coordinates, so lines outside it are clipped
	clip := image.Rect(0, aboutTop, a.width, aboutTop+a.visibleHeight())
	dst := screen.SubImage(clip).(*ebiten.Image)
	face := a.registry.Face(fontMain, 20)
	y := aboutTop + aboutLineHeight - int(a.scroll)
	for _, line := range aboutLines {
		if y > clip.Min.Y && y-aboutLineHeight < clip.Max.Y {
			text.Draw(dst, line, face, aboutLeftMargin, y, AboutText)
		}
		y += aboutLineHeight
	}

	a.back.Draw(screen, a.registry.Face(fontMain, 24))
}
