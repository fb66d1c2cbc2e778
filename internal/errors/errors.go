// Package errors provides sentinel errors and error types for the chessboard tool.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidPosition indicates square text or coordinates that are off the board.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidMove indicates malformed move text.
	ErrInvalidMove = errors.New("invalid move")

	// ErrIllegalMove indicates a move that is not among the piece's candidates.
	ErrIllegalMove = errors.New("illegal move")

	// ErrEmptySquare indicates a move or query starting on an empty square.
	ErrEmptySquare = errors.New("empty square")

	// ErrMalformedBoard indicates a board that violates its cell invariants.
	ErrMalformedBoard = errors.New("malformed board")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownCommand indicates an unrecognised viewer command.
	ErrUnknownCommand = errors.New("unknown command")
)

// MoveError wraps errors with move context: the move text, the square it
// starts from and the board move index at which it was attempted.
type MoveError struct {
	Err       error  // The underlying error
	MoveText  string // The move text that caused the error (if applicable)
	Square    string // Source square in algebraic form (if known)
	MoveIndex int    // Board move counter when the error occurred
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("move index %d", e.MoveIndex))

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	if e.Square != "" {
		parts = append(parts, fmt.Sprintf("from %s", e.Square))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with input location context.
// It's used for square, move and command text.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
