// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row step of a pawn of this colour: White moves
// toward row 0, Black toward the last row.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// Kind is the closed set of piece variants.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Board dimensions of a standard game.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
	LastRank = RankBase + BoardSize - 1
	LastCol  = ColBase + BoardSize - 1
)

// Position is a (row, column) coordinate. Row 0 is the topmost rank
// (rank 8); column 0 is file a. Validity is relative to a board.
type Position struct {
	Row    int
	Column int
}

// Offset returns the position shifted by the given row and column steps.
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Column: p.Column + dCol}
}

// PieceID is a stable handle into a board's piece arena.
type PieceID int

// NoPiece is the zero handle, meaning "no piece".
const NoPiece PieceID = 0

// Piece is one arena entry. Its position is owned by the Board and is only
// changed through Board.Place and Board.Remove.
type Piece struct {
	ID        PieceID
	Kind      Kind
	Colour    Colour
	MoveCount int

	position Position
	onBoard  bool
}

// Position returns the square the piece stands on, or false if it is off the board.
func (p *Piece) Position() (Position, bool) {
	return p.position, p.onBoard
}

// Symbol returns the piece letter, uppercase for White and lowercase for Black.
func (p *Piece) Symbol() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		return letter + ('a' - 'A')
	}
	return letter
}
