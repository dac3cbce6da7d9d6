// Package board holds the falling-block playfield: the piece bag, gravity,
// movement, locking and line clearing. It knows nothing about drawing beyond
// the block size that fits the window.
package board

import (
	"image"
	"math/rand"

	"oddstream.games/tetris/util"
)

const (
	Width  = 10
	Height = 20

	// columns to the right of the field for the next piece and the score
	panelColumns = 6

	minGravityFrames   = 3
	startGravityFrames = 48
	linesPerLevel      = 10
)

var lineScores = [...]int{0, 100, 300, 500, 800}

// Result describes what a move or gravity step did to the board.
type Result struct {
	Locked   bool
	Cleared  []int // rows cleared, top to bottom, as they were before removal
	GameOver bool
}

// Board is a Width x Height grid plus the falling piece.
type Board struct {
	cells   [Height][Width]int8 // 0 empty, otherwise Kind+1
	rng     *rand.Rand
	bag     []Kind
	current Piece
	next    Kind
	ticks   int
	score   int
	lines   int
	level   int
	over    bool

	blockSize int
	origin    image.Point
}

// New creates a board with a fresh piece drawn from rng.
func New(rng *rand.Rand) *Board {
	b := &Board{rng: rng, blockSize: 1}
	b.Reset()
	return b
}

// Reset empties the board and starts a new game.
func (b *Board) Reset() {
	b.cells = [Height][Width]int8{}
	b.bag = nil
	b.ticks, b.score, b.lines, b.level = 0, 0, 0, 0
	b.over = false
	b.next = b.popBag()
	b.spawn()
}

func (b *Board) popBag() Kind {
	if len(b.bag) == 0 {
		for _, i := range b.rng.Perm(int(kindCount)) {
			b.bag = append(b.bag, Kind(i))
		}
	}
	k := b.bag[len(b.bag)-1]
	b.bag = b.bag[:len(b.bag)-1]
	return k
}

func (b *Board) spawn() {
	b.current = newPiece(b.next)
	b.next = b.popBag()
	b.ticks = 0
	if b.collides(b.current.Shape, b.current.X, b.current.Y) {
		b.over = true
	}
}

func (b *Board) collides(shape [][]bool, px, py int) bool {
	for i := range shape {
		for j, filled := range shape[i] {
			if !filled {
				continue
			}
			x := px + j
			y := py + i
			if x < 0 || x >= Width || y >= Height {
				return true
			}
			if y >= 0 && b.cells[y][x] != 0 {
				return true
			}
		}
	}
	return false
}

func (b *Board) move(dx, dy int) bool {
	if b.over || b.collides(b.current.Shape, b.current.X+dx, b.current.Y+dy) {
		return false
	}
	b.current.X += dx
	b.current.Y += dy
	return true
}

// MoveLeft shifts the falling piece one column left if there is room.
func (b *Board) MoveLeft() bool {
	return b.move(-1, 0)
}

// MoveRight shifts the falling piece one column right if there is room.
func (b *Board) MoveRight() bool {
	return b.move(1, 0)
}

// Rotate turns the falling piece, nudging it sideways up to two columns to fit.
func (b *Board) Rotate(clockwise bool) bool {
	if b.over {
		return false
	}
	rotated := rotateShape(b.current.Shape, clockwise)
	for _, kick := range []int{0, -1, 1, -2, 2} {
		if !b.collides(rotated, b.current.X+kick, b.current.Y) {
			b.current.Shape = rotated
			b.current.X += kick
			return true
		}
	}
	return false
}

// SoftDrop moves the piece down one row, locking it if it cannot move.
func (b *Board) SoftDrop() Result {
	if b.over {
		return Result{GameOver: true}
	}
	if b.move(0, 1) {
		b.score++
		b.ticks = 0
		return Result{}
	}
	return b.lock()
}

// HardDrop drops the piece as far as it goes and locks it.
// It returns the number of rows the piece fell.
func (b *Board) HardDrop() (int, Result) {
	if b.over {
		return 0, Result{GameOver: true}
	}
	rows := 0
	for b.move(0, 1) {
		rows++
	}
	b.score += 2 * rows
	return rows, b.lock()
}

// Tick advances gravity by one frame.
func (b *Board) Tick() Result {
	if b.over {
		return Result{GameOver: true}
	}
	b.ticks++
	if b.ticks < b.GravityFrames() {
		return Result{}
	}
	b.ticks = 0
	if b.move(0, 1) {
		return Result{}
	}
	return b.lock()
}

// GravityFrames is the number of frames between gravity steps at the current level.
func (b *Board) GravityFrames() int {
	return util.Max(minGravityFrames, startGravityFrames-5*b.level)
}

func (b *Board) lock() Result {
	for _, c := range b.current.Cells() {
		if c.Y < 0 {
			b.over = true
			continue
		}
		b.cells[c.Y][c.X] = int8(b.current.Kind) + 1
	}
	res := Result{Locked: true}
	if b.over {
		res.GameOver = true
		return res
	}

	res.Cleared = b.clearLines()
	if n := len(res.Cleared); n > 0 {
		b.score += lineScores[n] * (b.level + 1)
		b.lines += n
		b.level = b.lines / linesPerLevel
	}

	b.spawn()
	res.GameOver = b.over
	return res
}

func (b *Board) clearLines() []int {
	var cleared []int
	var kept [Height][Width]int8
	dst := Height - 1
	for y := Height - 1; y >= 0; y-- {
		full := true
		for x := 0; x < Width; x++ {
			if b.cells[y][x] == 0 {
				full = false
				break
			}
		}
		if full {
			cleared = append([]int{y}, cleared...)
			continue
		}
		kept[dst] = b.cells[y]
		dst--
	}
	b.cells = kept
	return cleared
}

// At returns the kind of the locked block at x, y, if any.
func (b *Board) At(x, y int) (Kind, bool) {
	if x < 0 || x >= Width || y < 0 || y >= Height || b.cells[y][x] == 0 {
		return 0, false
	}
	return Kind(b.cells[y][x] - 1), true
}

// Current returns the falling piece.
func (b *Board) Current() Piece {
	return b.current
}

// Ghost returns the falling piece moved down as far as it can go.
func (b *Board) Ghost() Piece {
	g := b.current
	for !b.collides(g.Shape, g.X, g.Y+1) {
		g.Y++
	}
	return g
}

// Next returns the kind of the piece that spawns after the current one.
func (b *Board) Next() Kind { return b.next }

func (b *Board) Score() int { return b.score }

func (b *Board) Lines() int { return b.lines }

func (b *Board) Level() int { return b.level }

func (b *Board) Over() bool { return b.over }

// UpdateBlockSize recomputes the square block size so the field and its side
// panel fit a window of the given size, and centres the field.
func (b *Board) UpdateBlockSize(windowWidth, windowHeight int) {
	cols := Width + panelColumns
	rows := Height + 2 // margin above and below
	b.blockSize = util.Max(1, util.Min(windowWidth/cols, windowHeight/rows))
	b.origin = image.Point{
		X: (windowWidth - cols*b.blockSize) / 2,
		Y: (windowHeight - Height*b.blockSize) / 2,
	}
}

// BlockSize is the side of one block in pixels.
func (b *Board) BlockSize() int { return b.blockSize }

// Field is the screen rectangle covered by the grid.
func (b *Board) Field() image.Rectangle {
	return image.Rectangle{
		Min: b.origin,
		Max: b.origin.Add(image.Point{X: Width * b.blockSize, Y: Height * b.blockSize}),
	}
}

// Panel is the top left of the side panel, one block right of the field.
func (b *Board) Panel() image.Point {
	return b.origin.Add(image.Point{X: (Width + 1) * b.blockSize})
}

// CellRect is the screen rectangle of grid cell x, y.
func (b *Board) CellRect(x, y int) image.Rectangle {
	min := b.origin.Add(image.Point{X: x * b.blockSize, Y: y * b.blockSize})
	return image.Rectangle{Min: min, Max: min.Add(image.Point{X: b.blockSize, Y: b.blockSize})}
}
