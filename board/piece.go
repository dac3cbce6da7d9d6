package board

import "image"

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	kindCount
)

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "?"
	}
	return "IOTSZJL"[k : k+1]
}

var shapes = [kindCount][][]bool{
	KindI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	KindO: {
		{false, false, false, false},
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	KindT: {
		{false, false, false, false},
		{false, true, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	KindS: {
		{false, false, false, false},
		{false, true, true, false},
		{true, true, false, false},
		{false, false, false, false},
	},
	KindZ: {
		{false, false, false, false},
		{true, true, false, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	KindJ: {
		{false, false, false, false},
		{true, false, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	KindL: {
		{false, false, false, false},
		{false, false, true, false},
		{true, true, true, false},
		{false, false, false, false},
	},
}

// Piece is a tetromino placed on the board. X, Y locate the top left of its
// 4x4 shape box; Y may be negative while the piece is entering.
type Piece struct {
	Kind  Kind
	Shape [][]bool
	X, Y  int
}

func newPiece(k Kind) Piece {
	return Piece{Kind: k, Shape: copyShape(shapes[k]), X: (Width - 4) / 2, Y: -1}
}

// Cells returns the board coordinates the piece covers.
func (p Piece) Cells() []image.Point {
	var cells []image.Point
	for i, row := range p.Shape {
		for j, filled := range row {
			if filled {
				cells = append(cells, image.Point{X: p.X + j, Y: p.Y + i})
			}
		}
	}
	return cells
}

// ShapeCells returns the offsets covered within the shape box of a fresh piece of kind k.
func ShapeCells(k Kind) []image.Point {
	return Piece{Shape: shapes[k]}.Cells()
}

func copyShape(shape [][]bool) [][]bool {
	out := make([][]bool, len(shape))
	for i := range shape {
		out[i] = append([]bool(nil), shape[i]...)
	}
	return out
}

func rotateShape(shape [][]bool, clockwise bool) [][]bool {
	size := len(shape)
	rotated := make([][]bool, size)
	for i := range rotated {
		rotated[i] = make([]bool, size)
	}

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if clockwise {
				rotated[j][size-1-i] = shape[i][j]
			} else {
				rotated[size-1-j][i] = shape[i][j]
			}
		}
	}

	return rotated
}
