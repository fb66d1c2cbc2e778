package output

import (
	"io"

	"github.com/bytedance/sonic"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
)

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Text      string `json:"text"`
	From      string `json:"from"`
	To        string `json:"to"`
	Type      string `json:"type"`
	Colour    string `json:"colour"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
}

// JSONMoveList is a labelled list of candidate moves.
type JSONMoveList struct {
	Label string     `json:"label"`
	Count int        `json:"count"`
	Moves []JSONMove `json:"moves"`
}

// JSONPiece is one occupied square.
type JSONPiece struct {
	Square string `json:"square"`
	Type   string `json:"type"`
	Colour string `json:"colour"`
	Moves  int    `json:"moves"`
}

// JSONBoard is a board snapshot with the view's marks.
type JSONBoard struct {
	MoveCount int         `json:"moveCount"`
	Pieces    []JSONPiece `json:"pieces"`
	Hover     string      `json:"hover,omitempty"`
	Selected  string      `json:"selected,omitempty"`
	Possible  []string    `json:"possible,omitempty"`
}

// JSONOutput holds everything written by a batching JSONWriter.
type JSONOutput struct {
	Boards []*JSONBoard    `json:"boards,omitempty"`
	Lists  []*JSONMoveList `json:"lists,omitempty"`
}

// MoveToJSON converts a move to JSON format.
func MoveToJSON(m chess.Move) JSONMove {
	jm := JSONMove{
		Text:   m.String(),
		From:   m.Source.String(),
		To:     m.Dest.String(),
		Type:   m.Type.String(),
		Colour: colourName(m.Mover),
	}
	if m.IsCapture() {
		jm.Captured = pieceTypeName(m.Capture)
	}
	if m.IsPromotion() {
		jm.Promotion = pieceTypeName(m.Promote)
	}
	return jm
}

// MovesToJSON converts a labelled move set to JSON format.
func MovesToJSON(label string, moves chess.MoveSet) *JSONMoveList {
	list := &JSONMoveList{
		Label: label,
		Count: moves.Len(),
		Moves: make([]JSONMove, 0, moves.Len()),
	}
	for _, m := range moves.Moves() {
		list.Moves = append(list.Moves, MoveToJSON(m))
	}
	return list
}

// BoardToJSON converts a board and view to JSON format.
func BoardToJSON(board *chess.Board, view View) *JSONBoard {
	jb := &JSONBoard{
		MoveCount: board.MoveCount(),
		Pieces:    make([]JSONPiece, 0, chess.NumSquares/2),
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range board.Pieces(colour) {
			jb.Pieces = append(jb.Pieces, JSONPiece{
				Square: p.Position.String(),
				Type:   pieceTypeName(p.Type),
				Colour: colourName(p.Colour),
				Moves:  p.Moves,
			})
		}
	}
	if view.Hover.IsValid() {
		jb.Hover = view.Hover.String()
	}
	if view.Selected.IsValid() {
		jb.Selected = view.Selected.String()
	}
	for _, dest := range view.Possible.Destinations() {
		jb.Possible = append(jb.Possible, dest.String())
	}
	return jb
}

// JSONWriter writes boards and move lists in JSON format.
// It buffers them and writes one JSON object on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	output JSONOutput
	single bool // If true, write each document immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches output and writes it as one object on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:   w,
		cfg: cfg,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes one line per document.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteBoard writes or buffers a board snapshot.
func (jw *JSONWriter) WriteBoard(board *chess.Board, view View) error {
	if !jw.cfg.Display.ShowPossible {
		view.Possible = chess.MoveSet{}
	}
	jb := BoardToJSON(board, view)
	if jw.single {
		return jw.writeLine(jb)
	}
	jw.output.Boards = append(jw.output.Boards, jb)
	return nil
}

// WriteMoves writes or buffers a move list.
func (jw *JSONWriter) WriteMoves(label string, moves chess.MoveSet) error {
	list := MovesToJSON(label, moves)
	if jw.single {
		return jw.writeLine(list)
	}
	jw.output.Lists = append(jw.output.Lists, list)
	return nil
}

// Flush writes everything buffered as one JSON object.
func (jw *JSONWriter) Flush() error {
	if jw.single || (len(jw.output.Boards) == 0 && len(jw.output.Lists) == 0) {
		return nil
	}
	err := jw.writeLine(&jw.output)

	// Clear buffer after writing
	jw.output = JSONOutput{}

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) writeLine(v interface{}) error {
	s, err := sonic.MarshalString(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(jw.w, s+"\n")
	return err
}

// colourName returns the lowercase colour name.
func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the lowercase piece type name.
func pieceTypeName(pt chess.PieceType) string {
	switch pt {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	}
	return ""
}
