package chess

// Drawer renders draw commands for a board. The board never produces pixels
// itself; a Drawer turns each command into output.
type Drawer interface {
	DrawBoard()
	DrawHover(pos Position)
	DrawSelected(pos Position)
	DrawPossible(pos Position)

	DrawPawn(pos Position, black bool)
	DrawKnight(pos Position, black bool)
	DrawBishop(pos Position, black bool)
	DrawRook(pos Position, black bool)
	DrawQueen(pos Position, black bool)
	DrawKing(pos Position, black bool)
}

// Display issues the draw commands for the whole board: the board itself,
// the hover and selection marks, the possible destinations and every piece.
func (b *Board) Display(d Drawer, hover, selected Position, possible MoveSet) {
	if d == nil {
		return
	}
	d.DrawBoard()
	d.DrawHover(hover)
	d.DrawSelected(selected)
	for _, dest := range possible.Destinations() {
		d.DrawPossible(dest)
	}

	for i := range b.squares {
		drawPiece(d, b.squares[i])
	}
}

func drawPiece(d Drawer, p Piece) {
	black := p.Colour == Black
	switch p.Type {
	case Pawn:
		d.DrawPawn(p.Position, black)
	case Knight:
		d.DrawKnight(p.Position, black)
	case Bishop:
		d.DrawBishop(p.Position, black)
	case Rook:
		d.DrawRook(p.Position, black)
	case Queen:
		d.DrawQueen(p.Position, black)
	case King:
		d.DrawKing(p.Position, black)
	}
}
