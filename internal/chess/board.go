package chess

import (
	"github.com/lgbarn/xadrez-go/internal/errors"
)

// Board is a rows×columns grid of piece handles backed by a piece arena.
// A non-empty cell's piece always reports that cell as its position.
type Board struct {
	rows    int
	columns int

	// cells[row][column] holds the handle of the piece on that square.
	cells [][]PieceID

	// arena[id] is the piece with that handle; arena[0] is unused so that
	// NoPiece never resolves to a real piece. Entries are pointers so a
	// *Piece stays valid while the arena grows.
	arena []*Piece
}

// NewBoard creates an empty board of the given size.
func NewBoard(rows, columns int) *Board {
	b := &Board{
		rows:    rows,
		columns: columns,
		cells:   make([][]PieceID, rows),
		arena:   make([]*Piece, 1),
	}
	for row := range b.cells {
		b.cells[row] = make([]PieceID, columns)
	}
	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Columns returns the number of columns.
func (b *Board) Columns() int {
	return b.columns
}

// IsValidPosition reports whether p lies on the board.
func (b *Board) IsValidPosition(p Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Column >= 0 && p.Column < b.columns
}

// PieceAt returns the handle of the piece on p, or NoPiece if the square is empty.
// Callers are expected to check IsValidPosition first.
func (b *Board) PieceAt(p Position) (PieceID, error) {
	if !b.IsValidPosition(p) {
		return NoPiece, errors.Wrapf(errors.ErrOutOfBounds, "row %d column %d", p.Row, p.Column)
	}
	return b.cells[p.Row][p.Column], nil
}

// at is PieceAt for positions already known to be valid.
func (b *Board) at(p Position) PieceID {
	return b.cells[p.Row][p.Column]
}

// Piece returns the arena entry for id, or nil for NoPiece and unknown handles.
func (b *Board) Piece(id PieceID) *Piece {
	if id <= NoPiece || int(id) >= len(b.arena) {
		return nil
	}
	return b.arena[id]
}

// NewPiece allocates a piece in the arena. The piece starts off the board.
func (b *Board) NewPiece(kind Kind, colour Colour) PieceID {
	id := PieceID(len(b.arena))
	b.arena = append(b.arena, &Piece{ID: id, Kind: kind, Colour: colour})
	return id
}

// Place puts the piece on p and records p as its position.
func (b *Board) Place(id PieceID, p Position) error {
	if !b.IsValidPosition(p) {
		return errors.Wrapf(errors.ErrOutOfBounds, "row %d column %d", p.Row, p.Column)
	}
	if b.at(p) != NoPiece {
		return errors.Wrapf(errors.ErrOccupiedSquare, "row %d column %d", p.Row, p.Column)
	}
	piece := b.Piece(id)
	if piece == nil {
		return errors.Wrapf(errors.ErrUnknownPiece, "handle %d", id)
	}
	b.cells[p.Row][p.Column] = id
	piece.position = p
	piece.onBoard = true
	return nil
}

// Remove detaches and returns the piece on p, or NoPiece if there is none.
func (b *Board) Remove(p Position) PieceID {
	if !b.IsValidPosition(p) {
		return NoPiece
	}
	id := b.at(p)
	if id == NoPiece {
		return NoPiece
	}
	piece := b.Piece(id)
	piece.position = Position{}
	piece.onBoard = false
	b.cells[p.Row][p.Column] = NoPiece
	return id
}

// Pieces returns the handles of every piece of the colour on the board,
// in row-major order.
func (b *Board) Pieces(colour Colour) []PieceID {
	var ids []PieceID
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.columns; col++ {
			id := b.cells[row][col]
			if id != NoPiece && b.arena[id].Colour == colour {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// Occupant is a piece's observable state at one square, used for snapshots.
type Occupant struct {
	Position  Position
	Kind      Kind
	Colour    Colour
	MoveCount int
}

// Snapshot returns the placement of every piece keyed by handle. Two boards
// with equal snapshots have identical piece-to-position mappings and move counts.
func (b *Board) Snapshot() map[PieceID]Occupant {
	snap := make(map[PieceID]Occupant)
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.columns; col++ {
			id := b.cells[row][col]
			if id == NoPiece {
				continue
			}
			piece := b.arena[id]
			snap[id] = Occupant{
				Position:  Position{Row: row, Column: col},
				Kind:      piece.Kind,
				Colour:    piece.Colour,
				MoveCount: piece.MoveCount,
			}
		}
	}
	return snap
}
