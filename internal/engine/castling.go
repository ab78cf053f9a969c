package engine

import "github.com/lgbarn/xadrez-go/internal/chess"

// Rook distances from the king's starting file.
const (
	kingsideRookDistance  = 3
	queensideRookDistance = 4
)

// markCastling marks the king's castling targets. The caller has already
// checked that the king has never moved and is not in check. Squares the
// king passes over are only required to be empty.
func markCastling(board *chess.Board, king *chess.Piece, from chess.Position, mask chess.Mask) {
	for _, side := range []int{1, -1} {
		if canCastle(board, king, from, side) {
			mask.Set(from.Offset(0, 2*side))
		}
	}
}

// canCastle checks one side: side is +1 for kingside, -1 for queenside.
func canCastle(board *chess.Board, king *chess.Piece, from chess.Position, side int) bool {
	distance := castlingRookDistance(side)
	rookSquare := from.Offset(0, side*distance)
	if !isCastlingRook(board, rookSquare, king.Colour) {
		return false
	}
	for step := 1; step < distance; step++ {
		if !isFree(board, from.Offset(0, side*step)) {
			return false
		}
	}
	return true
}

// isCastlingRook reports whether p holds an unmoved rook of the colour.
func isCastlingRook(board *chess.Board, p chess.Position, colour chess.Colour) bool {
	rook := occupant(board, p)
	return rook != nil && rook.Kind == chess.Rook && rook.Colour == colour && rook.MoveCount == 0
}

func castlingRookDistance(side int) int {
	if side > 0 {
		return kingsideRookDistance
	}
	return queensideRookDistance
}

// castlingSide returns +1 or -1 when a king move from→to is a castle, and 0 otherwise.
func castlingSide(from, to chess.Position) int {
	switch to.Column - from.Column {
	case 2:
		return 1
	case -2:
		return -1
	default:
		return 0
	}
}

// castlingRookSquares returns where the rook starts and lands for a castle
// of the king from its origin toward side.
func castlingRookSquares(kingFrom chess.Position, side int) (rookFrom, rookTo chess.Position) {
	rookFrom = kingFrom.Offset(0, side*castlingRookDistance(side))
	rookTo = kingFrom.Offset(0, side)
	return rookFrom, rookTo
}
