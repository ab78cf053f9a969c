package chess

import (
	"strings"

	"github.com/lgbarn/xadrez-go/internal/errors"
)

// ParseSquare converts an algebraic square such as "e2" into a position.
// The file letter may be upper or lower case; surrounding whitespace is ignored.
func ParseSquare(s string) (Position, error) {
	square := strings.ToLower(strings.TrimSpace(s))
	if len(square) != 2 {
		return Position{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
	}
	file, rank := square[0], square[1]
	if file < ColBase || file > LastCol || rank < RankBase || rank > LastRank {
		return Position{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
	}
	return Position{
		Row:    BoardSize - int(rank-RankBase+1),
		Column: int(file - ColBase),
	}, nil
}

// String returns the algebraic name of the position on a standard board,
// or "??" for positions outside it.
func (p Position) String() string {
	if p.Row < 0 || p.Row >= BoardSize || p.Column < 0 || p.Column >= BoardSize {
		return "??"
	}
	return string([]byte{byte(ColBase + p.Column), byte(RankBase + BoardSize - 1 - p.Row)})
}

// FileLetter returns the file letter of a column index.
func FileLetter(column int) byte {
	return byte(ColBase + column)
}
