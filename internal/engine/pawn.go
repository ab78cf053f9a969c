package engine

import "github.com/lgbarn/xadrez-go/internal/chess"

// enPassantRow returns the only row from which a pawn of the colour may
// capture en passant: the fifth rank counted from its own side.
func enPassantRow(board *chess.Board, colour chess.Colour) int {
	if colour == chess.White {
		return board.Rows() - 5
	}
	return 4
}

// promotionRow returns the farthest row a pawn of the colour can reach.
func promotionRow(board *chess.Board, colour chess.Colour) int {
	if colour == chess.White {
		return 0
	}
	return board.Rows() - 1
}

func pawnMoves(board *chess.Board, piece *chess.Piece, from chess.Position, ctx MoveContext, mask chess.Mask) {
	dir := piece.Colour.Forward()

	// Forward one, and two from the pawn's first move when both squares are free
	one := from.Offset(dir, 0)
	if isFree(board, one) {
		mask.Set(one)
		two := from.Offset(2*dir, 0)
		if piece.MoveCount == 0 && isFree(board, two) {
			mask.Set(two)
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		to := from.Offset(dir, dc)
		if board.IsValidPosition(to) && isEnemy(board, to, piece.Colour) {
			mask.Set(to)
		}
	}

	// En passant
	if ctx.EnPassantVulnerable == chess.NoPiece || from.Row != enPassantRow(board, piece.Colour) {
		return
	}
	for dc := -1; dc <= 1; dc += 2 {
		beside := from.Offset(0, dc)
		if !board.IsValidPosition(beside) || !isEnemy(board, beside, piece.Colour) {
			continue
		}
		if id, _ := board.PieceAt(beside); id == ctx.EnPassantVulnerable {
			mask.Set(beside.Offset(dir, 0))
		}
	}
}
