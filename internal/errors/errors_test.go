package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrOutOfBounds,
		ErrOccupiedSquare,
		ErrEmptyOrigin,
		ErrWrongOwner,
		ErrNoLegalMoves,
		ErrIllegalDestination,
		ErrSelfCheck,
		ErrNoKingOnBoard,
		ErrInvalidSquare,
		ErrMatchFinished,
		ErrInvalidFEN,
		ErrInvalidConfig,
		ErrUnknownPiece,
	}

	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("realizing move: %w", sentinel)
			if !errors.Is(wrapped, sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies no two sentinels match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrEmptyOrigin, ErrWrongOwner) {
		t.Error("errors.Is(ErrEmptyOrigin, ErrWrongOwner) = true, want false")
	}
	if errors.Is(ErrSelfCheck, ErrIllegalDestination) {
		t.Error("errors.Is(ErrSelfCheck, ErrIllegalDestination) = true, want false")
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
				Err:  ErrSelfCheck,
				Turn: 7,
				From: "e1",
				To:   "e2",
			},
			contains: []string{"turn 7", "e1-e2", "check"},
		},
		{
			name: "origin only",
			err: &MoveError{
				Err:  ErrEmptyOrigin,
				Turn: 1,
				From: "d4",
			},
			contains: []string{"turn 1", "square d4", "no piece"},
		},
		{
			name:     "no context",
			err:      &MoveError{Err: ErrWrongOwner},
			contains: []string{"not yours"},
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

// TestMoveError_As verifies that errors.As works through further wrapping
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:  ErrIllegalDestination,
		Turn: 3,
		From: "b1",
		To:   "b3",
	}

	wrapped := fmt.Errorf("session: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Turn != 3 {
		t.Errorf("extracted.Turn = %d, want 3", extracted.Turn)
	}
	if !errors.Is(wrapped, ErrIllegalDestination) {
		t.Error("errors.Is(wrapped, ErrIllegalDestination) = false, want true")
	}
}

func TestIsRecoverable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"empty origin", ErrEmptyOrigin, true},
		{"wrong owner wrapped", &MoveError{Err: ErrWrongOwner, Turn: 2}, true},
		{"self check", Wrap(ErrSelfCheck, "realize"), true},
		{"bad input", Wrapf(ErrInvalidSquare, "%q", "z9"), true},
		{"missing king", ErrNoKingOnBoard, false},
		{"occupied square", ErrOccupiedSquare, false},
		{"io failure", io.ErrUnexpectedEOF, false},
		{"finished", ErrMatchFinished, false},
		{"unknown piece", ErrUnknownPiece, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRecoverable(tt.err); got != tt.want {
				t.Errorf("IsRecoverable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")
	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalDestination, "turn %d", 15)

	if !errors.Is(wrapped, ErrIllegalDestination) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "turn 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
