package config

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// DefaultBoardSize is the pixel width and height of the board including
// its border, giving 32 pixel squares.
const DefaultBoardSize = 320

// DisplayConfig holds settings for drawing the board.
type DisplayConfig struct {
	// Pixel size of the board used to map click coordinates to squares
	BoardWidth  int
	BoardHeight int

	// Colour enables ANSI colours in the terminal drawer
	Colour bool

	// ShowPossible highlights the candidate moves of the selected piece
	ShowPossible bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		BoardWidth:   DefaultBoardSize,
		BoardHeight:  DefaultBoardSize,
		Colour:       true,
		ShowPossible: true,
	}
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	squares := chess.BoardSize + chess.BorderCount
	if d.BoardWidth < squares || d.BoardHeight < squares {
		return fmt.Errorf("board size %dx%d smaller than %dx%d: %w",
			d.BoardWidth, d.BoardHeight, squares, squares, errors.ErrInvalidConfig)
	}
	return nil
}

// Geometry returns the pixel mapping for the configured board size.
func (d *DisplayConfig) Geometry() chess.Geometry {
	return chess.NewGeometry(d.BoardWidth, d.BoardHeight)
}
