// Package engine provides chess move generation, move execution and the
// match state machine built on top of the chess board.
package engine

import "github.com/lgbarn/xadrez-go/internal/chess"

// MoveContext is the read-only match state some kinds need to generate moves.
type MoveContext struct {
	// EnPassantVulnerable is the pawn that just advanced two ranks, if any.
	EnPassantVulnerable chess.PieceID

	// InCheck reports whether the side to move is in check; castling is
	// unavailable while it is set.
	InCheck bool
}

// generator marks the reachable squares of one piece.
type generator func(board *chess.Board, piece *chess.Piece, from chess.Position, ctx MoveContext, mask chess.Mask)

// generators is the dispatch table for LegalMoves, indexed by kind.
var generators = [chess.NumKinds]generator{
	chess.Pawn:   pawnMoves,
	chess.Knight: knightMoves,
	chess.Bishop: bishopMoves,
	chess.Rook:   rookMoves,
	chess.Queen:  queenMoves,
	chess.King:   kingMoves,
}

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	allDirections = append(append([][2]int{}, straightDirs...), diagonalDirs...)
)

// LegalMoves returns the legal-move mask of the piece: every square it can
// reach on the current board. Whether a move would expose the mover's own
// king is not considered here; that filtering happens when a move is realized.
// A piece that is off the board has an empty mask.
func LegalMoves(board *chess.Board, id chess.PieceID, ctx MoveContext) chess.Mask {
	mask := chess.NewMask(board)
	piece := board.Piece(id)
	if piece == nil {
		return mask
	}
	from, onBoard := piece.Position()
	if !onBoard {
		return mask
	}
	if piece.Kind <= chess.NoKind || piece.Kind >= chess.NumKinds {
		return mask
	}
	generators[piece.Kind](board, piece, from, ctx, mask)
	return mask
}

// CanMoveTo reports whether the piece can reach p.
func CanMoveTo(board *chess.Board, id chess.PieceID, p chess.Position, ctx MoveContext) bool {
	return LegalMoves(board, id, ctx).Get(p)
}

// HasAnyLegalMove reports whether the piece can reach at least one square.
func HasAnyLegalMove(board *chess.Board, id chess.PieceID, ctx MoveContext) bool {
	return LegalMoves(board, id, ctx).Any()
}

func knightMoves(board *chess.Board, piece *chess.Piece, from chess.Position, _ MoveContext, mask chess.Mask) {
	markSteps(board, piece, from, knightOffsets, mask)
}

func bishopMoves(board *chess.Board, piece *chess.Piece, from chess.Position, _ MoveContext, mask chess.Mask) {
	markRays(board, piece, from, diagonalDirs, mask)
}

func rookMoves(board *chess.Board, piece *chess.Piece, from chess.Position, _ MoveContext, mask chess.Mask) {
	markRays(board, piece, from, straightDirs, mask)
}

func queenMoves(board *chess.Board, piece *chess.Piece, from chess.Position, _ MoveContext, mask chess.Mask) {
	markRays(board, piece, from, allDirections, mask)
}

func kingMoves(board *chess.Board, piece *chess.Piece, from chess.Position, ctx MoveContext, mask chess.Mask) {
	markSteps(board, piece, from, kingOffsets, mask)
	if piece.MoveCount == 0 && !ctx.InCheck {
		markCastling(board, piece, from, mask)
	}
}

// markSteps marks each single-step target that is on the board and either
// empty or held by an enemy piece.
func markSteps(board *chess.Board, piece *chess.Piece, from chess.Position, offsets [][2]int, mask chess.Mask) {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !board.IsValidPosition(to) {
			continue
		}
		if target := occupant(board, to); target == nil || target.Colour != piece.Colour {
			mask.Set(to)
		}
	}
}

// occupant returns the piece on p, or nil when p is empty or off the board.
func occupant(board *chess.Board, p chess.Position) *chess.Piece {
	id, err := board.PieceAt(p)
	if err != nil {
		return nil
	}
	return board.Piece(id)
}

// isEnemy reports whether p holds a piece of the other colour.
func isEnemy(board *chess.Board, p chess.Position, colour chess.Colour) bool {
	target := occupant(board, p)
	return target != nil && target.Colour != colour
}

// isFree reports whether p is on the board and empty.
func isFree(board *chess.Board, p chess.Position) bool {
	id, err := board.PieceAt(p)
	return err == nil && id == chess.NoPiece
}
