package main

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"oddstream.games/tetris/util"
)

var (
	buttonFace   = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xe0}
	buttonHover  = color.RGBA{R: 0x2c, G: 0x8b, B: 0xff, A: 0xf0}
	buttonFooter = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xe0}
	buttonText   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Button is a clickable rounded rectangle with a centred label.
type Button struct {
	label         string
	width, height int
	x, y          int // centre
	hover         bool
	img, hoverImg *ebiten.Image
}

func NewButton(label string, width, height int) *Button {
	return &Button{label: label, width: width, height: height}
}

// SetPosition centres the button on x, y
func (b *Button) SetPosition(x, y int) {
	b.x, b.y = x, y
}

// Rect returns the button's screen rectangle as x0, y0, x1, y1
func (b *Button) Rect() (int, int, int, int) {
	return b.x - b.width/2, b.y - b.height/2, b.x + b.width/2, b.y + b.height/2
}

func (b *Button) Contains(x, y int) bool {
	return util.InRect(x, y, b.Rect)
}

func (b *Button) SetHover(hover bool) {
	b.hover = hover
}

func makeButtonImg(width, height int, face color.Color) *ebiten.Image {
	w := float64(width)
	h := float64(height)
	r := h / 4
	dc := gg.NewContext(width, height)

	dc.SetColor(buttonFooter)
	dc.DrawRoundedRectangle(0, h/10, w, h-h/10, r)
	dc.Fill()

	dc.SetColor(face)
	dc.DrawRoundedRectangle(0, 0, w, h-h/10, r)
	dc.Fill()
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	if b.img == nil {
		b.img = makeButtonImg(b.width, b.height, buttonFace)
		b.hoverImg = makeButtonImg(b.width, b.height, buttonHover)
	}
	img := b.img
	if b.hover {
		img = b.hoverImg
	}
	x0, y0, _, _ := b.Rect()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x0), float64(y0))
	screen.DrawImage(img, op)

	drawCentredText(screen, b.label, face, b.x, b.y, buttonText)
}

// drawCentredText draws s so its bounding box is centred on cx, cy
func drawCentredText(dst *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := cx - bounds.Dx()/2 - bounds.Min.X
	y := cy - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(dst, s, face, x, y, clr)
}

// drawText draws s with its baseline at y
func drawText(dst *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(dst, s, face, x, y, clr)
}

// drawImageIn stretches img over r, scaling its alpha by alpha
func drawImageIn(dst, img *ebiten.Image, r image.Rectangle, alpha float64) {
	if r.Empty() {
		return
	}
	sz := img.Bounds().Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx())/float64(sz.X), float64(r.Dy())/float64(sz.Y))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
