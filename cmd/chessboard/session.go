// session.go - Line-oriented command loop driving a board
package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/output"
)

// commandFunc runs one command with its arguments.
type commandFunc func(s *Session, args []string) error

var commands = map[string]commandFunc{
	"show":   (*Session).show,
	"reset":  (*Session).reset,
	"hover":  (*Session).hover,
	"select": (*Session).selectSquare,
	"click":  (*Session).click,
	"moves":  (*Session).moves,
	"all":    (*Session).all,
	"move":   (*Session).move,
	"check":  (*Session).check,
	"flush":  (*Session).flush,
	"help":   (*Session).help,
}

const helpText = `Commands:
  show                   draw the board
  reset [layout]         start again from standard, knights or empty
  hover <sq>             highlight a square
  select <sq>            select a piece, or move the selected piece to <sq>
  click <x> <y>          select by pixel coordinates
  moves <sq>             list the candidate moves of the piece on <sq>
  all <white|black>      list every candidate move of one side
  move <text>            play a move such as e2e4 (the word "move" is optional)
  check                  verify the board is well formed
  flush                  write batched JSON output now
  help                   show this text
  quit                   stop reading commands
`

// Session holds the board and view state between commands.
type Session struct {
	cfg      *config.Config
	board    *chess.Board
	view     output.View
	writer   output.MoveWriter
	geometry chess.Geometry
	au       aurora.Aurora

	executed int
	played   int
	failed   int
}

// NewSession creates a session on a fresh board of the configured layout.
func NewSession(cfg *config.Config) *Session {
	return &Session{
		cfg:      cfg,
		board:    chess.NewBoard(cfg.Layout),
		view:     output.NoView(),
		writer:   output.NewWriter(cfg.OutputFile, cfg),
		geometry: cfg.Display.Geometry(),
		au:       aurora.NewAurora(cfg.Display.Colour),
	}
}

// Board returns the session's board.
func (s *Session) Board() *chess.Board {
	return s.board
}

// Run executes commands from r until end of input or "quit". Command errors
// are logged and counted; only a read or write failure is returned.
func (s *Session) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		quit, err := s.Execute(scanner.Text())
		if err != nil {
			s.failed++
			fmt.Fprintf(s.cfg.LogFile, "%s line %d: %v\n", s.au.Yellow("warning:"), lineNum, err)
		}
		if quit {
			break
		}
	}

	closeErr := s.writer.Close()
	s.cfg.Logf(config.Summary, "%d command(s), %d move(s) played, %d error(s).\n",
		s.executed, s.played, s.failed)

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading commands")
	}
	return closeErr
}

// Execute runs a single command line. Blank lines and lines starting with
// '#' are ignored. It reports whether the line asked to quit.
func (s *Session) Execute(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, nil
	}

	name := strings.ToLower(fields[0])
	if name == "quit" || name == "exit" {
		return true, nil
	}

	s.executed++
	s.cfg.Logf(config.Commentary, "> %s\n", strings.Join(fields, " "))

	if cmd, ok := commands[name]; ok {
		return false, cmd(s, fields[1:])
	}
	if chess.ParseMove(fields[0]).IsValid() {
		return false, s.move(fields)
	}
	return false, &errors.ParseError{Err: errors.ErrUnknownCommand, Input: fields[0]}
}

func (s *Session) show([]string) error {
	return s.writer.WriteBoard(s.board, s.view)
}

// redraw draws the board after a command that changed what is shown.
func (s *Session) redraw() error {
	if !s.cfg.Output.ShowBoard {
		return nil
	}
	return s.show(nil)
}

func (s *Session) reset(args []string) error {
	layout := s.cfg.Layout
	if len(args) > 0 {
		var err error
		if layout, err = chess.ParseLayout(args[0]); err != nil {
			return err
		}
	}
	s.board.Reset(layout)
	s.view = output.NoView()
	s.cfg.Logf(config.Commentary, "board reset to %s layout\n", layout)
	return s.redraw()
}

func (s *Session) hover(args []string) error {
	pos, err := squareArg(args)
	if err != nil {
		return err
	}
	s.view.Hover = pos
	return s.redraw()
}

func (s *Session) selectSquare(args []string) error {
	pos, err := squareArg(args)
	if err != nil {
		return err
	}
	return s.activate(pos)
}

func (s *Session) click(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("click needs x and y: %w", errors.ErrInvalidPosition)
	}
	x, errX := strconv.ParseFloat(args[0], 64)
	y, errY := strconv.ParseFloat(args[1], 64)
	if errX != nil || errY != nil {
		return &errors.ParseError{Err: errors.ErrInvalidPosition, Input: strings.Join(args, " "), Expected: "pixel coordinates"}
	}

	pos := s.geometry.PositionAt(x, y)
	if !pos.IsValid() {
		return fmt.Errorf("pixel %g,%g is off the board: %w", x, y, errors.ErrInvalidPosition)
	}
	return s.activate(pos)
}

// activate plays the selected piece's move to pos when pos is one of its
// possible destinations, and otherwise selects pos.
func (s *Session) activate(pos chess.Position) error {
	if s.view.Selected.IsValid() {
		if m, ok := s.view.Possible.Find(pos); ok {
			return s.play(m)
		}
	}

	s.view.Selected = pos
	s.view.Possible = engine.GenerateMoves(s.board, pos)
	s.cfg.Logf(config.Commentary, "selected %s: %d possible move(s)\n", pos, s.view.Possible.Len())
	return s.redraw()
}

func (s *Session) moves(args []string) error {
	pos, err := squareArg(args)
	if err != nil {
		return err
	}
	return s.writer.WriteMoves(pos.String(), engine.GenerateMoves(s.board, pos))
}

func (s *Session) all(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("all needs a colour: %w", errors.ErrUnknownCommand)
	}

	var colour chess.Colour
	switch strings.ToLower(args[0]) {
	case "white", "w":
		colour = chess.White
	case "black", "b":
		colour = chess.Black
	default:
		return &errors.ParseError{Err: errors.ErrUnknownCommand, Input: args[0], Expected: "white or black"}
	}
	return s.writer.WriteMoves(strings.ToLower(colour.String()), engine.GenerateAll(s.board, colour))
}

func (s *Session) move(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("move needs one move text: %w", errors.ErrInvalidMove)
	}
	typed, err := chess.ReadMove(args[0])
	if err != nil {
		return &errors.MoveError{Err: err, MoveText: args[0], MoveIndex: s.board.MoveCount()}
	}

	m, err := engine.Resolve(s.board, typed)
	if err != nil {
		return err
	}
	return s.play(m)
}

// play applies a resolved move and clears the selection.
func (s *Session) play(m chess.Move) error {
	if !engine.Play(s.board, m) {
		return &errors.MoveError{
			Err:       errors.ErrIllegalMove,
			MoveText:  m.String(),
			Square:    m.Source.String(),
			MoveIndex: s.board.MoveCount(),
		}
	}
	s.played++
	s.view = output.NoView()
	s.cfg.Logf(config.Commentary, "played %s (move index %d)\n", m, s.board.MoveCount()-1)
	return s.redraw()
}

func (s *Session) check([]string) error {
	if err := s.board.AssertWellFormed(); err != nil {
		return err
	}
	s.cfg.Logf(config.Summary, "board well formed after %d move(s)\n", s.board.MoveCount())
	return nil
}

func (s *Session) flush([]string) error {
	return s.writer.Flush()
}

// help goes to the log in JSON mode so the output stays parseable.
func (s *Session) help([]string) error {
	w := s.cfg.OutputFile
	if s.cfg.Output.Format == config.JSONFormat {
		w = s.cfg.LogFile
	}
	_, err := io.WriteString(w, helpText)
	return err
}

// squareArg reads the single square argument of a command.
func squareArg(args []string) (chess.Position, error) {
	if len(args) != 1 {
		return chess.InvalidPosition, fmt.Errorf("expected one square: %w", errors.ErrInvalidPosition)
	}
	pos := chess.PositionFromText(args[0])
	if !pos.IsValid() || len(args[0]) != 2 {
		return chess.InvalidPosition, &errors.ParseError{Err: errors.ErrInvalidPosition, Input: args[0], Expected: "square such as e4"}
	}
	return pos, nil
}
