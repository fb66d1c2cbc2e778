package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidPosition", ErrInvalidPosition, ErrInvalidPosition},
		{"ErrInvalidMove", ErrInvalidMove, ErrInvalidMove},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrEmptySquare", ErrEmptySquare, ErrEmptySquare},
		{"ErrMalformedBoard", ErrMalformedBoard, ErrMalformedBoard},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrUnknownCommand", ErrUnknownCommand, ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies no two sentinels match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrInvalidMove, ErrIllegalMove) {
		t.Error("ErrInvalidMove should not match ErrIllegalMove")
	}
	if errors.Is(ErrEmptySquare, ErrInvalidPosition) {
		t.Error("ErrEmptySquare should not match ErrInvalidPosition")
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to read square: %w", ErrInvalidPosition)

	if !errors.Is(wrapped, ErrInvalidPosition) {
		t.Errorf("errors.Is(wrapped, ErrInvalidPosition) = false, want true")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:       ErrIllegalMove,
				MoveText:  "e2e5",
				Square:    "e2",
				MoveIndex: 12,
			},
			contains: []string{"move index 12", "e2e5", "from e2", "illegal move"},
		},
		{
			name: "minimal context",
			err: &MoveError{
				Err: ErrEmptySquare,
			},
			contains: []string{"move index 0", "empty square"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrEmptySquare,
		MoveText: "d4d5",
	}

	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrEmptySquare) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrEmptySquare)
	}

	if !errors.Is(moveErr, ErrEmptySquare) {
		t.Error("errors.Is(moveErr, ErrEmptySquare) = false, want true")
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:       ErrIllegalMove,
		MoveText:  "e1g1c",
		MoveIndex: 7,
	}

	wrapped := fmt.Errorf("play failed: %w", moveErr)

	var extractedErr *MoveError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract MoveError")
	}

	if extractedErr.MoveIndex != 7 {
		t.Errorf("extractedErr.MoveIndex = %d, want 7", extractedErr.MoveIndex)
	}
	if extractedErr.MoveText != "e1g1c" {
		t.Errorf("extractedErr.MoveText = %q, want %q", extractedErr.MoveText, "e1g1c")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "input column expected got",
			err: &ParseError{
				Err:      ErrInvalidMove,
				Input:    "z9e4",
				Column:   1,
				Expected: "square",
				Got:      "z9",
			},
			want: `"z9e4":1: expected square, got z9: invalid move`,
		},
		{
			name: "expected only",
			err:  &ParseError{Expected: "4 characters"},
			want: "expected 4 characters",
		},
		{
			name: "got only with error",
			err:  &ParseError{Err: ErrUnknownCommand, Got: "jump"},
			want: "unexpected jump: unknown command",
		},
		{
			name: "bare error",
			err:  &ParseError{Err: ErrInvalidPosition},
			want: "invalid position",
		},
		{
			name: "empty",
			err:  &ParseError{},
			want: "parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestParseError_Unwrap verifies ParseError implements Unwrap
func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{
		Err:   ErrInvalidMove,
		Input: "e2",
	}

	if !errors.Is(parseErr, ErrInvalidMove) {
		t.Error("errors.Is(parseErr, ErrInvalidMove) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrMalformedBoard, "checking board")

	if !errors.Is(wrapped, ErrMalformedBoard) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "checking board") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidPosition, "square %s at index %d", "i9", 3)

	if !errors.Is(wrapped, ErrInvalidPosition) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "square i9 at index 3") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
