package main

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"oddstream.games/tetris/board"
)

type BlockColors struct {
	face, footer color.RGBA
}

var blockColorMap = map[board.Kind]BlockColors{
	board.KindI: {face: color.RGBA{0x00, 0xd6, 0xef, 0xff}, footer: color.RGBA{0x00, 0xab, 0xbf, 0xff}},
	board.KindO: {face: color.RGBA{0xff, 0xff, 0x00, 0xff}, footer: color.RGBA{0xd4, 0xd4, 0x00, 0xff}},
	board.KindT: {face: color.RGBA{0x9f, 0x00, 0xf2, 0xff}, footer: color.RGBA{0x54, 0x00, 0x80, 0xff}},
	board.KindS: {face: color.RGBA{0x37, 0xea, 0x00, 0xff}, footer: color.RGBA{0x31, 0xd1, 0x00, 0xff}},
	board.KindZ: {face: color.RGBA{0xff, 0x24, 0x24, 0xff}, footer: color.RGBA{0xd6, 0x00, 0x00, 0xff}},
	board.KindJ: {face: color.RGBA{0x24, 0x24, 0xff, 0xff}, footer: color.RGBA{0x00, 0x00, 0x96, 0xff}},
	board.KindL: {face: color.RGBA{0xff, 0x83, 0x43, 0xff}, footer: color.RGBA{0xd4, 0x48, 0x00, 0xff}},
}

var (
	FieldBackground = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xe0}
	FieldGridLine   = color.RGBA{R: 0x30, G: 0x30, B: 0x40, A: 0xff}
)

// blockImages caches one block image per kind, for a single block size.
type blockImages struct {
	size  int
	imgs  map[board.Kind]*ebiten.Image
	field *ebiten.Image
}

func makeBlockImg(size int, cols BlockColors) *ebiten.Image {
	fsz := float64(size)
	fsz10 := fsz / 10.0
	hgap := fsz / 20.0
	vgap := fsz / 40.0
	dc := gg.NewContext(size, size)

	dc.SetColor(cols.footer)
	dc.DrawRoundedRectangle(hgap, vgap+fsz10, fsz-(hgap*2), fsz-fsz10-(vgap*2), fsz10)
	dc.Fill()

	dc.SetColor(cols.face)
	dc.DrawRoundedRectangle(hgap, vgap, fsz-(hgap*2), fsz-fsz10-(vgap*2), fsz10)
	dc.Fill()
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

func makeFieldImg(size int) *ebiten.Image {
	w := board.Width * size
	h := board.Height * size
	dc := gg.NewContext(w, h)
	dc.SetColor(FieldBackground)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	dc.SetColor(FieldGridLine)
	dc.SetLineWidth(1)
	for x := 0; x <= board.Width; x++ {
		fx := float64(x * size)
		dc.DrawLine(fx, 0, fx, float64(h))
	}
	for y := 0; y <= board.Height; y++ {
		fy := float64(y * size)
		dc.DrawLine(0, fy, float64(w), fy)
	}
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

// resize drops the cached images when the block size changes
func (bi *blockImages) resize(size int) {
	if size == bi.size && bi.imgs != nil {
		return
	}
	bi.size = size
	bi.imgs = make(map[board.Kind]*ebiten.Image)
	bi.field = nil
}

func (bi *blockImages) block(k board.Kind) *ebiten.Image {
	img, ok := bi.imgs[k]
	if !ok {
		cols, ok := blockColorMap[k]
		if !ok {
			cols = BlockColors{face: color.RGBA{0x80, 0x80, 0x80, 0xff}, footer: color.RGBA{0x50, 0x50, 0x50, 0xff}}
		}
		img = makeBlockImg(bi.size, cols)
		bi.imgs[k] = img
	}
	return img
}

func (bi *blockImages) fieldImg() *ebiten.Image {
	if bi.field == nil {
		bi.field = makeFieldImg(bi.size)
	}
	return bi.field
}

func (bi *blockImages) drawBlock(dst *ebiten.Image, k board.Kind, at image.Point, alpha float32) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(bi.block(k), op)
}
