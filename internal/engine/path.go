package engine

import "github.com/lgbarn/xadrez-go/internal/chess"

// markRays walks each direction one square at a time. A ray stops at the
// board edge or the first occupied square; that square is marked only when
// it holds an enemy piece.
func markRays(board *chess.Board, piece *chess.Piece, from chess.Position, dirs [][2]int, mask chess.Mask) {
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for board.IsValidPosition(to) {
			target := occupant(board, to)
			if target != nil {
				if target.Colour != piece.Colour {
					mask.Set(to)
				}
				break // Blocked
			}
			mask.Set(to)
			to = to.Offset(dir[0], dir[1])
		}
	}
}
