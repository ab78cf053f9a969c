package engine

import (
	"github.com/lgbarn/xadrez-go/internal/chess"
	"github.com/lgbarn/xadrez-go/internal/errors"
)

// king returns the square of the colour's king.
func (m *Match) king(colour chess.Colour) (chess.Position, error) {
	for _, id := range m.board.Pieces(colour) {
		piece := m.board.Piece(id)
		if piece.Kind == chess.King {
			p, _ := piece.Position()
			return p, nil
		}
	}
	return chess.Position{}, errors.Wrapf(errors.ErrNoKingOnBoard, "%v", colour)
}

// IsInCheck reports whether any enemy piece can reach the colour's king.
func (m *Match) IsInCheck(colour chess.Colour) (bool, error) {
	kingSquare, err := m.king(colour)
	if err != nil {
		return false, err
	}
	ctx := m.context()
	for _, id := range m.board.Pieces(colour.Opposite()) {
		if LegalMoves(m.board, id, ctx).Get(kingSquare) {
			return true, nil
		}
	}
	return false, nil
}

// TestCheckmate reports whether the colour is in check and every move of
// every one of its pieces still leaves its king in check. Each candidate is
// tried with ExecuteMove and taken back with UndoMove.
func (m *Match) TestCheckmate(colour chess.Colour) (bool, error) {
	inCheck, err := m.IsInCheck(colour)
	if err != nil || !inCheck {
		return false, err
	}

	ctx := MoveContext{EnPassantVulnerable: m.enPassantVulnerable, InCheck: true}
	for _, id := range m.board.Pieces(colour) {
		from, _ := m.board.Piece(id).Position()
		for _, to := range LegalMoves(m.board, id, ctx).Squares() {
			escapes, err := m.escapesCheck(colour, from, to)
			if err != nil {
				return false, err
			}
			if escapes {
				return false, nil
			}
		}
	}
	return true, nil
}

// escapesCheck tries from→to and reports whether the colour is out of check
// afterwards. The board is restored before returning.
func (m *Match) escapesCheck(colour chess.Colour, from, to chess.Position) (bool, error) {
	capture, err := m.ExecuteMove(from, to)
	if err != nil {
		return false, err
	}
	stillInCheck, checkErr := m.IsInCheck(colour)
	if err := m.UndoMove(from, to, capture); err != nil {
		return false, err
	}
	if checkErr != nil {
		return false, checkErr
	}
	return !stillInCheck, nil
}
