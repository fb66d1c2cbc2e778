package chess

import "math"

// Geometry maps positions to screen pixels for a board drawn with a one
// square border on every side, so each square is a tenth of the board size.
// Screen coordinates have their origin at the top-left; rank 8 is drawn on top.
type Geometry struct {
	SquareWidth  float64
	SquareHeight float64
}

// NewGeometry returns the geometry for a board of the given pixel size.
// Negative sizes give a zero geometry, which maps every point to InvalidPosition.
func NewGeometry(boardWidth, boardHeight int) Geometry {
	if boardWidth < 0 || boardHeight < 0 {
		return Geometry{}
	}
	squares := float64(BoardSize + BorderCount)
	return Geometry{
		SquareWidth:  float64(boardWidth) / squares,
		SquareHeight: float64(boardHeight) / squares,
	}
}

// XY returns the top-left pixel of the square at p.
func (g Geometry) XY(p Position) (x, y float64) {
	if !p.IsValid() {
		return -1, -1
	}
	x = float64(p.Col()+1) * g.SquareWidth
	y = float64(BoardSize-p.Row()) * g.SquareHeight
	return x, y
}

// PositionAt returns the square containing the pixel x, y.
func (g Geometry) PositionAt(x, y float64) Position {
	if g.SquareWidth <= 0 || g.SquareHeight <= 0 {
		return InvalidPosition
	}
	col := int(math.Floor(x/g.SquareWidth)) - 1
	row := BoardSize - int(math.Floor(y/g.SquareHeight))
	return NewPosition(col, row)
}
