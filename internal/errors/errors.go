// Package errors provides sentinel errors and error types for the xadrez engine.
// It defines the failure kinds a move can hit and a structured error type that
// preserves move context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a position outside the board.
	ErrOutOfBounds = errors.New("position is off the board")

	// ErrOccupiedSquare indicates a placement onto a square that already holds a piece.
	ErrOccupiedSquare = errors.New("square is already occupied")

	// ErrEmptyOrigin indicates there is no piece on the chosen origin square.
	ErrEmptyOrigin = errors.New("there is no piece on the origin square")

	// ErrWrongOwner indicates the origin piece belongs to the other player.
	ErrWrongOwner = errors.New("the chosen piece is not yours")

	// ErrNoLegalMoves indicates the origin piece has nowhere to go.
	ErrNoLegalMoves = errors.New("the chosen piece has no possible moves")

	// ErrIllegalDestination indicates the destination is not in the piece's legal-move mask.
	ErrIllegalDestination = errors.New("invalid destination square")

	// ErrSelfCheck indicates a move that would leave the mover's own king in check.
	ErrSelfCheck = errors.New("you cannot put yourself in check")

	// ErrUnknownPiece indicates a piece handle that the board never allocated.
	ErrUnknownPiece = errors.New("unknown piece")

	// ErrNoKingOnBoard indicates a side has no king; normal setup never produces this.
	ErrNoKingOnBoard = errors.New("no king on the board")

	// ErrInvalidSquare indicates malformed algebraic square input.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrMatchFinished indicates a move was attempted after checkmate.
	ErrMatchFinished = errors.New("match is finished")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// recoverable lists the kinds a player can fix by entering another square.
var recoverable = []error{
	ErrOutOfBounds,
	ErrEmptyOrigin,
	ErrWrongOwner,
	ErrNoLegalMoves,
	ErrIllegalDestination,
	ErrSelfCheck,
	ErrInvalidSquare,
}

// IsRecoverable reports whether err is an input or rule violation that the
// play loop should show to the player before asking for the same turn again.
// Invariant violations and I/O failures are not recoverable.
func IsRecoverable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNoKingOnBoard) || errors.Is(err, ErrOccupiedSquare) {
		return false
	}
	for _, kind := range recoverable {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// MoveError wraps errors with move context: the turn number and the
// squares involved. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	Turn int    // Turn number when the error occurred (0 if not applicable)
	From string // Origin square in algebraic notation (if known)
	To   string // Destination square in algebraic notation (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	case e.From != "":
		parts = append(parts, fmt.Sprintf("square %s", e.From))
	case e.To != "":
		parts = append(parts, fmt.Sprintf("square %s", e.To))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
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
