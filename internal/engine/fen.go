package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/xadrez-go/internal/chess"
	"github.com/lgbarn/xadrez-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenKinds maps FEN piece letters (upper case) to kinds.
var fenKinds = map[byte]chess.Kind{
	'P': chess.Pawn,
	'N': chess.Knight,
	'B': chess.Bishop,
	'R': chess.Rook,
	'Q': chess.Queen,
	'K': chess.King,
}

// NewMatchFromFEN starts a match from a FEN position on a standard board.
// Only the placement field is required; missing fields default to White to
// move, no castling, no en passant and move 1.
//
// Move counts are derived from the position: kings and rooks without a
// matching castling right and pawns off their starting rank count as moved.
func NewMatchFromFEN(fen string) (*Match, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	m := newMatch(chess.NewBoard(chess.BoardSize, chess.BoardSize))

	if err := m.parsePiecePositions(parts[0]); err != nil {
		return nil, err
	}
	if err := m.parseSideToMove(parts); err != nil {
		return nil, err
	}
	if err := m.parseCastlingRights(parts); err != nil {
		return nil, err
	}
	if err := m.parseEnPassant(parts); err != nil {
		return nil, err
	}
	if err := m.parseMoveNumber(parts); err != nil {
		return nil, err
	}
	if err := m.settleStatus(); err != nil {
		return nil, err
	}
	return m, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func (m *Match) parsePiecePositions(positions string) error {
	row, col := 0, 0
	kings := map[chess.Colour]int{}

	for _, c := range positions {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			kind, ok := fenKinds[byte(unicode.ToUpper(c))]
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			p := chess.Position{Row: row, Column: col}
			if !m.board.IsValidPosition(p) {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			id, err := m.addPiece(kind, colour, p)
			if err != nil {
				return fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
			}
			piece := m.board.Piece(id)
			switch kind {
			case chess.King:
				kings[colour]++
				piece.MoveCount = 1
			case chess.Rook:
				piece.MoveCount = 1
			case chess.Pawn:
				if row != pawnStartRow(m.board, colour) {
					piece.MoveCount = 1
				}
			}
			col++
		}
	}
	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return fmt.Errorf("incomplete piece placement: %w", errors.ErrInvalidFEN)
	}
	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return fmt.Errorf("each side needs exactly one king: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func (m *Match) parseSideToMove(parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		m.current = chess.White
	case "b":
		m.current = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights marks the king and rook of every listed right as
// unmoved. A right whose rook is missing is ignored.
func (m *Match) parseCastlingRights(parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		colour := chess.White
		if unicode.IsLower(c) {
			colour = chess.Black
		}
		var side int
		switch unicode.ToUpper(c) {
		case 'K':
			side = 1
		case 'Q':
			side = -1
		default:
			return fmt.Errorf("invalid castling right: %c: %w", c, errors.ErrInvalidFEN)
		}

		kingSquare, err := m.king(colour)
		if err != nil {
			return err
		}
		rookFrom, _ := castlingRookSquares(kingSquare, side)
		rook := occupant(m.board, rookFrom)
		if rook == nil || rook.Kind != chess.Rook || rook.Colour != colour {
			continue
		}
		rook.MoveCount = 0
		m.board.Piece(m.kingID(colour)).MoveCount = 0
	}
	return nil
}

// parseEnPassant maps the en passant target square to the pawn that
// skipped over it.
func (m *Match) parseEnPassant(parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	mover := m.current.Opposite()
	pawn := occupant(m.board, target.Offset(mover.Forward(), 0))
	if pawn == nil || pawn.Kind != chess.Pawn || pawn.Colour != mover {
		return fmt.Errorf("no pawn behind en passant square %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	m.enPassantVulnerable = pawn.ID
	return nil
}

// parseMoveNumber converts the fullmove number into a turn number. The
// halfmove clock is accepted but not tracked.
func (m *Match) parseMoveNumber(parts []string) error {
	if len(parts) < 6 {
		if m.current == chess.Black {
			m.turn = 2
		}
		return nil
	}
	n, err := strconv.Atoi(parts[5])
	if err != nil || n < 1 {
		return fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
	}
	m.turn = 2*(n-1) + 1
	if m.current == chess.Black {
		m.turn++
	}
	return nil
}

// settleStatus computes the check flag for the side to move and ends the
// match if that side is already mated.
func (m *Match) settleStatus() error {
	var err error
	if m.inCheck, err = m.IsInCheck(m.current); err != nil {
		return err
	}
	mate, err := m.TestCheckmate(m.current)
	if err != nil {
		return err
	}
	if mate {
		m.finished = true
		m.winner = m.current.Opposite()
	}
	return nil
}

func (m *Match) kingID(colour chess.Colour) chess.PieceID {
	p, err := m.king(colour)
	if err != nil {
		return chess.NoPiece
	}
	id, _ := m.board.PieceAt(p)
	return id
}

// pawnStartRow returns the row a pawn of the colour starts on.
func pawnStartRow(board *chess.Board, colour chess.Colour) int {
	if colour == chess.White {
		return board.Rows() - 2
	}
	return 1
}

// FEN writes the match position as a FEN string. The halfmove clock is
// always 0. After checkmate the mated side is to move.
func (m *Match) FEN() string {
	var sb strings.Builder

	toMove, turn := m.current, m.turn
	if m.finished && m.current == m.winner {
		// The mating move did not pass the turn.
		toMove, turn = m.winner.Opposite(), turn+1
	}

	m.writePiecePositions(&sb)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	m.writeCastlingRights(&sb)
	sb.WriteByte(' ')
	m.writeEnPassant(&sb)
	fmt.Fprintf(&sb, " 0 %d", (turn-1)/2+1)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func (m *Match) writePiecePositions(sb *strings.Builder) {
	for row := 0; row < m.board.Rows(); row++ {
		emptyCount := 0
		for col := 0; col < m.board.Columns(); col++ {
			piece := occupant(m.board, chess.Position{Row: row, Column: col})
			if piece == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < m.board.Rows()-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func (m *Match) writeCastlingRights(sb *strings.Builder) {
	hasCastling := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kingSquare, err := m.king(colour)
		if err != nil || m.board.Piece(m.kingID(colour)).MoveCount != 0 {
			continue
		}
		for _, right := range []struct {
			side   int
			letter byte
		}{{1, 'K'}, {-1, 'Q'}} {
			rookFrom, _ := castlingRookSquares(kingSquare, right.side)
			if !isCastlingRook(m.board, rookFrom, colour) {
				continue
			}
			letter := right.letter
			if colour == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the square behind the vulnerable pawn, or '-'.
func (m *Match) writeEnPassant(sb *strings.Builder) {
	pawn := m.board.Piece(m.enPassantVulnerable)
	if pawn == nil {
		sb.WriteByte('-')
		return
	}
	p, onBoard := pawn.Position()
	if !onBoard {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(p.Offset(-pawn.Colour.Forward(), 0).String())
}
