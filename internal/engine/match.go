package engine

import (
	"github.com/google/uuid"

	"github.com/lgbarn/xadrez-go/internal/chess"
	"github.com/lgbarn/xadrez-go/internal/errors"
)

// Match is the state of one game: the board, whose turn it is, which
// pieces exist and which have been captured, and the check flags.
//
// Every piece in all but not in captured stands on the board.
type Match struct {
	id       uuid.UUID
	board    *chess.Board
	turn     int
	current  chess.Colour
	finished bool
	winner   chess.Colour

	// all holds every piece created for this match, in creation order.
	// A pawn leaves it only when it is promoted.
	all []chess.PieceID

	// captured holds the pieces currently off the board, in capture order.
	captured []chess.PieceID

	inCheck             bool
	enPassantVulnerable chess.PieceID
}

// NewMatch starts a match from the standard position with White to move.
func NewMatch() *Match {
	m, err := NewMatchFromFEN(InitialFEN)
	if err != nil {
		panic("engine: invalid initial position: " + err.Error())
	}
	return m
}

func newMatch(board *chess.Board) *Match {
	return &Match{
		id:      uuid.New(),
		board:   board,
		turn:    1,
		current: chess.White,
	}
}

// ID returns the identifier used to correlate log entries for this match.
func (m *Match) ID() uuid.UUID {
	return m.id
}

// Board returns the match board. Callers must treat it as read-only.
func (m *Match) Board() *chess.Board {
	return m.board
}

// Turn returns the turn number, starting at 1 and advancing after every move.
func (m *Match) Turn() int {
	return m.turn
}

// CurrentPlayer returns the colour to move.
func (m *Match) CurrentPlayer() chess.Colour {
	return m.current
}

// Finished reports whether the match ended in checkmate.
func (m *Match) Finished() bool {
	return m.finished
}

// InCheck reports whether the player to move is in check.
func (m *Match) InCheck() bool {
	return m.inCheck
}

// EnPassantVulnerable returns the pawn that advanced two ranks on the last
// move, or NoPiece.
func (m *Match) EnPassantVulnerable() chess.PieceID {
	return m.enPassantVulnerable
}

// Winner returns the colour that delivered checkmate. ok is false while the
// match is still running.
func (m *Match) Winner() (winner chess.Colour, ok bool) {
	return m.winner, m.finished
}

// Captured returns the captured pieces of the colour in capture order.
func (m *Match) Captured(colour chess.Colour) []chess.PieceID {
	var ids []chess.PieceID
	for _, id := range m.captured {
		if m.board.Piece(id).Colour == colour {
			ids = append(ids, id)
		}
	}
	return ids
}

// Pieces returns every piece of the match that has not been promoted away,
// on or off the board.
func (m *Match) Pieces() []chess.PieceID {
	return append([]chess.PieceID(nil), m.all...)
}

// LegalMoves returns the legal-move mask of the piece on p. An empty or
// invalid square yields an empty mask.
func (m *Match) LegalMoves(p chess.Position) chess.Mask {
	id, err := m.board.PieceAt(p)
	if err != nil {
		return chess.NewMask(m.board)
	}
	return LegalMoves(m.board, id, m.context())
}

// context is the move-generation context for the player to move.
func (m *Match) context() MoveContext {
	return MoveContext{
		EnPassantVulnerable: m.enPassantVulnerable,
		InCheck:             m.inCheck,
	}
}

// addPiece creates a piece, places it and registers it with the match.
func (m *Match) addPiece(kind chess.Kind, colour chess.Colour, p chess.Position) (chess.PieceID, error) {
	id := m.board.NewPiece(kind, colour)
	if err := m.board.Place(id, p); err != nil {
		return chess.NoPiece, err
	}
	m.all = append(m.all, id)
	return id, nil
}

func (m *Match) markCaptured(id chess.PieceID) {
	m.captured = append(m.captured, id)
}

func (m *Match) unmarkCaptured(id chess.PieceID) {
	m.captured = without(m.captured, id)
}

// ValidateOrigin checks that p holds a piece of the player to move that
// has at least one legal move.
func (m *Match) ValidateOrigin(p chess.Position) error {
	if err := m.validateOrigin(p); err != nil {
		return m.moveError(err, p.String(), "")
	}
	return nil
}

func (m *Match) validateOrigin(p chess.Position) error {
	id, err := m.board.PieceAt(p)
	if err != nil {
		return err
	}
	if id == chess.NoPiece {
		return errors.ErrEmptyOrigin
	}
	if m.board.Piece(id).Colour != m.current {
		return errors.ErrWrongOwner
	}
	if !HasAnyLegalMove(m.board, id, m.context()) {
		return errors.ErrNoLegalMoves
	}
	return nil
}

// ValidateDestination checks that the piece on origin can reach destination.
func (m *Match) ValidateDestination(origin, destination chess.Position) error {
	if !m.LegalMoves(origin).Get(destination) {
		return m.moveError(errors.ErrIllegalDestination, origin.String(), destination.String())
	}
	return nil
}

func (m *Match) moveError(err error, from, to string) error {
	return &errors.MoveError{Err: err, Turn: m.turn, From: from, To: to}
}

// without returns ids with the first occurrence of id removed.
func without(ids []chess.PieceID, id chess.PieceID) []chess.PieceID {
	for i, other := range ids {
		if other == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
