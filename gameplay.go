package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"oddstream.games/tetris/board"
	"oddstream.games/tetris/resource"
)

const (
	explosionFrames = 30
	trailFrames     = 12
	ghostAlpha      = 0.3
)

var (
	PlayBackground = color.RGBA{R: 0x18, G: 0x18, B: 0x20, A: 0xff}
	PanelText      = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	GameOverText   = color.RGBA{R: 0xff, G: 0x24, B: 0x24, A: 0xff}
	flashColor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// explosion marks rows that were cleared, in board coordinates
type explosion struct {
	rows   []int
	frames int
}

// trail marks the columns a hard-dropped piece fell through, in board coordinates
type trail struct {
	cells  []image.Rectangle
	frames int
}

// GamePlayPage draws the board and turns key presses into moves.
type GamePlayPage struct {
	registry    *resource.Registry
	board       *board.Board
	wantsReturn bool
	explosions  []explosion
	trails      []trail
	blocks      blockImages
	flash       *ebiten.Image
}

var _ PlayPage = (*GamePlayPage)(nil)

func NewGamePlayPage(reg *resource.Registry, b *board.Board) *GamePlayPage {
	return &GamePlayPage{registry: reg, board: b}
}

func (p *GamePlayPage) Kind() PageKind { return PagePlay }

func (p *GamePlayPage) HandleEvent(ev Event) {
	if ev.Type != EventKeyPressed {
		return
	}
	if p.board.Over() {
		// a key still held from play must not skip the game over screen
		if !ev.Repeat {
			p.wantsReturn = true
		}
		return
	}
	switch ev.Key {
	case ebiten.KeyEscape:
		p.wantsReturn = true
	case ebiten.KeyArrowLeft:
		p.board.MoveLeft()
	case ebiten.KeyArrowRight:
		p.board.MoveRight()
	case ebiten.KeyArrowUp, ebiten.KeyX:
		p.board.Rotate(true)
	case ebiten.KeyZ:
		p.board.Rotate(false)
	case ebiten.KeyArrowDown:
		p.handleResult(p.board.SoftDrop())
	case ebiten.KeySpace:
		p.hardDrop()
	}
}

func (p *GamePlayPage) hardDrop() {
	before := p.board.Current()
	rows, res := p.board.HardDrop()
	if rows > 0 {
		p.trails = append(p.trails, trail{cells: trailCells(before, rows), frames: trailFrames})
	}
	p.handleResult(res)
}

// trailCells returns, for each column of piece, the strip from its top cell
// down through the rows it fell
func trailCells(piece board.Piece, rows int) []image.Rectangle {
	tops := make(map[int]int)
	for _, c := range piece.Cells() {
		if y, ok := tops[c.X]; !ok || c.Y < y {
			tops[c.X] = c.Y
		}
	}
	cells := make([]image.Rectangle, 0, len(tops))
	for x, y := range tops {
		cells = append(cells, image.Rect(x, y, x+1, y+rows))
	}
	return cells
}

func (p *GamePlayPage) handleResult(res board.Result) {
	if res.Locked {
		p.registry.Sound(soundLockPiece).Play()
	}
	if len(res.Cleared) > 0 {
		p.registry.Sound(soundBeforeExplosion).Play()
		p.explosions = append(p.explosions, explosion{rows: res.Cleared, frames: explosionFrames})
	}
	if res.GameOver {
		logger.Info("game over", "score", p.board.Score(), "lines", p.board.Lines(), "level", p.board.Level())
	}
}

// Update ages the animations and applies gravity
func (p *GamePlayPage) Update() {
	explosions := p.explosions[:0]
	for _, e := range p.explosions {
		e.frames--
		if e.frames == explosionFrames/2 {
			p.registry.Sound(soundExplosion).Play()
		}
		if e.frames > 0 {
			explosions = append(explosions, e)
		}
	}
	p.explosions = explosions

	trails := p.trails[:0]
	for _, t := range p.trails {
		t.frames--
		if t.frames > 0 {
			trails = append(trails, t)
		}
	}
	p.trails = trails

	if !p.board.Over() {
		p.handleResult(p.board.Tick())
	}
}

// Layout drops block images cached for the old block size. The board itself
// is resized by the Game.
func (p *GamePlayPage) Layout(width, height int) {
	p.blocks.resize(p.board.BlockSize())
}

func (p *GamePlayPage) WantsToReturn() bool {
	return p.wantsReturn
}

// Reset starts a new game
func (p *GamePlayPage) Reset() {
	p.board.Reset()
	p.wantsReturn = false
	p.explosions = nil
	p.trails = nil
}

func (p *GamePlayPage) stripRect(r image.Rectangle) image.Rectangle {
	return p.board.CellRect(r.Min.X, r.Min.Y).Union(p.board.CellRect(r.Max.X-1, r.Max.Y-1))
}

// Draw draws the field, the falling piece, the side panel and any effects
func (p *GamePlayPage) Draw(screen *ebiten.Image) {
	screen.Fill(PlayBackground)

	b := p.board
	p.blocks.resize(b.BlockSize())
	field := b.Field()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(field.Min.X), float64(field.Min.Y))
	screen.DrawImage(p.blocks.fieldImg(), op)

	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			if k, ok := b.At(x, y); ok {
				p.blocks.drawBlock(screen, k, b.CellRect(x, y).Min, 1)
			}
		}
	}

	if !b.Over() {
		ghost := b.Ghost()
		for _, c := range ghost.Cells() {
			if c.Y >= 0 {
				p.blocks.drawBlock(screen, ghost.Kind, b.CellRect(c.X, c.Y).Min, ghostAlpha)
			}
		}
		cur := b.Current()
		for _, c := range cur.Cells() {
			if c.Y >= 0 {
				p.blocks.drawBlock(screen, cur.Kind, b.CellRect(c.X, c.Y).Min, 1)
			}
		}
	}

	p.drawEffects(screen)
	p.drawPanel(screen)

	if b.Over() {
		drawCentredText(screen, "GAME OVER", p.registry.Face(fontMain, 48),
			(field.Min.X+field.Max.X)/2, (field.Min.Y+field.Max.Y)/2, GameOverText)
	}
}

func (p *GamePlayPage) drawEffects(screen *ebiten.Image) {
	b := p.board
	fire := p.registry.Texture(textureFireTrail)
	for _, t := range p.trails {
		alpha := float64(t.frames) / trailFrames
		for _, c := range t.cells {
			r := p.stripRect(c).Intersect(b.Field())
			if fire != nil {
				drawImageIn(screen, fire, r, alpha)
			}
		}
	}

	boom := p.registry.Texture(textureExplosion)
	if boom == nil {
		if p.flash == nil {
			p.flash = ebiten.NewImage(1, 1)
			p.flash.Fill(flashColor)
		}
		boom = p.flash
	}
	field := b.Field()
	for _, e := range p.explosions {
		alpha := float64(e.frames) / explosionFrames
		for _, row := range e.rows {
			r := b.CellRect(0, row)
			r.Max.X = field.Max.X
			drawImageIn(screen, boom, r, alpha)
		}
	}
}

func (p *GamePlayPage) drawPanel(screen *ebiten.Image) {
	b := p.board
	size := b.BlockSize()
	panel := b.Panel()
	face := p.registry.Face(fontMain, 20)

	lines := []string{
		"NEXT",
		"", "", "", "",
		fmt.Sprintf("SCORE %d", b.Score()),
		fmt.Sprintf("LINES %d", b.Lines()),
		fmt.Sprintf("LEVEL %d", b.Level()+1),
	}
	y := panel.Y + size
	for _, s := range lines {
		if s != "" {
			drawText(screen, s, face, panel.X, y, PanelText)
		}
		y += size
	}

	origin := panel.Add(image.Point{Y: size + size/2})
	for _, c := range board.ShapeCells(b.Next()) {
		at := origin.Add(image.Point{X: c.X * size, Y: c.Y * size})
		p.blocks.drawBlock(screen, b.Next(), at, 1)
	}
}
