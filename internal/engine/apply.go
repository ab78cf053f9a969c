package engine

import (
	"github.com/lgbarn/xadrez-go/internal/chess"
	"github.com/lgbarn/xadrez-go/internal/errors"
)

// Capture records what a move took off the board: the captured piece and
// the square it stood on. For en passant the square differs from the
// move's destination. The zero value means nothing was captured.
type Capture struct {
	Piece  chess.PieceID
	Square chess.Position
}

// ExecuteMove moves the piece on origin to destination without any
// legality check, applying captures, the castling rook relocation and the
// en passant removal. The returned Capture undoes the move via UndoMove.
func (m *Match) ExecuteMove(origin, destination chess.Position) (Capture, error) {
	if !m.board.IsValidPosition(destination) {
		return Capture{}, errors.Wrapf(errors.ErrOutOfBounds, "destination %v", destination)
	}
	id, err := m.board.PieceAt(origin)
	if err != nil {
		return Capture{}, err
	}
	if id == chess.NoPiece {
		return Capture{}, errors.ErrEmptyOrigin
	}

	m.board.Remove(origin)
	mover := m.board.Piece(id)
	mover.MoveCount++

	var capture Capture
	if taken := m.board.Remove(destination); taken != chess.NoPiece {
		capture = Capture{Piece: taken, Square: destination}
		m.markCaptured(taken)
	}
	if err := m.board.Place(id, destination); err != nil {
		return Capture{}, err
	}

	switch mover.Kind {
	case chess.King:
		if side := castlingSide(origin, destination); side != 0 {
			rookFrom, rookTo := castlingRookSquares(origin, side)
			if err := m.relocateRook(rookFrom, rookTo, 1); err != nil {
				return Capture{}, err
			}
		}
	case chess.Pawn:
		if origin.Column != destination.Column && capture.Piece == chess.NoPiece {
			// En passant: the captured pawn stands beside the origin.
			square := chess.Position{Row: origin.Row, Column: destination.Column}
			if taken := m.board.Remove(square); taken != chess.NoPiece {
				capture = Capture{Piece: taken, Square: square}
				m.markCaptured(taken)
			}
		}
	}
	return capture, nil
}

// UndoMove reverses ExecuteMove(origin, destination), restoring every
// piece's square and move count.
func (m *Match) UndoMove(origin, destination chess.Position, capture Capture) error {
	id := m.board.Remove(destination)
	if id == chess.NoPiece {
		return errors.Wrapf(errors.ErrEmptyOrigin, "undo from %v", destination)
	}
	mover := m.board.Piece(id)
	mover.MoveCount--
	if err := m.board.Place(id, origin); err != nil {
		return err
	}

	if capture.Piece != chess.NoPiece {
		if err := m.board.Place(capture.Piece, capture.Square); err != nil {
			return err
		}
		m.unmarkCaptured(capture.Piece)
	}

	if mover.Kind == chess.King {
		if side := castlingSide(origin, destination); side != 0 {
			rookFrom, rookTo := castlingRookSquares(origin, side)
			return m.relocateRook(rookTo, rookFrom, -1)
		}
	}
	return nil
}

// relocateRook moves the castling rook and adjusts its move count by delta.
func (m *Match) relocateRook(from, to chess.Position, delta int) error {
	rook := m.board.Remove(from)
	if rook == chess.NoPiece {
		return nil
	}
	m.board.Piece(rook).MoveCount += delta
	return m.board.Place(rook, to)
}

// RealizeMove plays one turn for the player to move. The move is rejected,
// with the board left untouched, if it is not legal or would leave the
// mover's king in check. A pawn reaching the last rank becomes a queen.
// On checkmate the match finishes; otherwise the turn passes.
func (m *Match) RealizeMove(origin, destination chess.Position) error {
	from, to := origin.String(), destination.String()
	if m.finished {
		return m.moveError(errors.ErrMatchFinished, from, to)
	}
	if err := m.validateOrigin(origin); err != nil {
		return m.moveError(err, from, to)
	}
	if err := m.ValidateDestination(origin, destination); err != nil {
		return err
	}

	capture, err := m.ExecuteMove(origin, destination)
	if err != nil {
		return m.moveError(err, from, to)
	}
	selfCheck, err := m.IsInCheck(m.current)
	if err != nil || selfCheck {
		if undoErr := m.UndoMove(origin, destination, capture); undoErr != nil {
			return m.moveError(undoErr, from, to)
		}
		if err != nil {
			return m.moveError(err, from, to)
		}
		return m.moveError(errors.ErrSelfCheck, from, to)
	}

	id, _ := m.board.PieceAt(destination)
	moved := m.board.Piece(id)
	doubleStep := moved.Kind == chess.Pawn && abs(destination.Row-origin.Row) == 2
	if moved.Kind == chess.Pawn && destination.Row == promotionRow(m.board, moved.Colour) {
		if err := m.promote(destination); err != nil {
			return m.moveError(err, from, to)
		}
	}

	if doubleStep {
		m.enPassantVulnerable = id
	} else {
		m.enPassantVulnerable = chess.NoPiece
	}

	opponent := m.current.Opposite()
	if m.inCheck, err = m.IsInCheck(opponent); err != nil {
		return m.moveError(err, from, to)
	}
	mate, err := m.TestCheckmate(opponent)
	if err != nil {
		return m.moveError(err, from, to)
	}
	if mate {
		m.finished = true
		m.winner = m.current
		return nil
	}
	m.turn++
	m.current = opponent
	return nil
}

// promote replaces the pawn on p with a queen of the same colour.
func (m *Match) promote(p chess.Position) error {
	pawn := m.board.Remove(p)
	colour := m.board.Piece(pawn).Colour
	m.all = without(m.all, pawn)
	_, err := m.addPiece(chess.Queen, colour, p)
	return err
}
