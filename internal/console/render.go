// Package console draws a match on a terminal and runs the interactive
// play loop against it.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/xadrez-go/internal/chess"
	"github.com/lgbarn/xadrez-go/internal/config"
	"github.com/lgbarn/xadrez-go/internal/engine"
)

const clearScreen = "\033[H\033[2J"

// figurines holds the Unicode glyphs indexed by colour and kind.
var figurines = [2][chess.NumKinds]string{
	chess.Black: {"", "♟", "♞", "♝", "♜", "♛", "♚"},
	chess.White: {"", "♙", "♘", "♗", "♖", "♕", "♔"},
}

// Renderer writes boards and match status to an output.
type Renderer struct {
	out  io.Writer
	opts *config.OutputConfig

	blackPiece  *color.Color
	highlighted *color.Color
	blackOnHigh *color.Color
}

// NewRenderer creates a renderer for the output settings. Colours are
// forced on or off according to opts.Colour, regardless of whether the
// writer is a terminal.
func NewRenderer(opts *config.OutputConfig) *Renderer {
	r := &Renderer{
		out:         opts.Writer,
		opts:        opts,
		blackPiece:  color.New(color.FgYellow),
		highlighted: color.New(color.BgHiBlack),
		blackOnHigh: color.New(color.FgYellow, color.BgHiBlack),
	}
	for _, c := range []*color.Color{r.blackPiece, r.highlighted, r.blackOnHigh} {
		if opts.Colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Board draws the board with rank labels on the left and file letters
// underneath. Squares marked in highlight are emphasised; highlight may be nil.
func (r *Renderer) Board(board *chess.Board, highlight *chess.Mask) {
	for row := 0; row < board.Rows(); row++ {
		fmt.Fprintf(r.out, "%d ", board.Rows()-row)
		for col := 0; col < board.Columns(); col++ {
			p := chess.Position{Row: row, Column: col}
			marked := highlight != nil && highlight.Get(p)
			id, _ := board.PieceAt(p)
			r.square(board.Piece(id), marked)
			fmt.Fprint(r.out, " ")
		}
		fmt.Fprintln(r.out)
	}

	files := make([]string, board.Columns())
	for col := range files {
		files[col] = string(chess.FileLetter(col))
	}
	fmt.Fprintf(r.out, "  %s\n", strings.Join(files, " "))
}

func (r *Renderer) square(piece *chess.Piece, marked bool) {
	if piece == nil {
		switch {
		case marked && r.opts.Colour:
			r.highlighted.Fprint(r.out, "-")
		case marked:
			fmt.Fprint(r.out, "*")
		default:
			fmt.Fprint(r.out, "-")
		}
		return
	}

	glyph := r.glyph(piece)
	switch {
	case piece.Colour == chess.Black && marked:
		r.blackOnHigh.Fprint(r.out, glyph)
	case piece.Colour == chess.Black:
		r.blackPiece.Fprint(r.out, glyph)
	case marked:
		r.highlighted.Fprint(r.out, glyph)
	default:
		fmt.Fprint(r.out, glyph)
	}
}

// glyph returns the figurine or the piece letter. Letters are upper case
// for both colours; colour tells them apart.
func (r *Renderer) glyph(piece *chess.Piece) string {
	if r.opts.Unicode {
		return figurines[piece.Colour][piece.Kind]
	}
	if !r.opts.Colour {
		return string(piece.Symbol())
	}
	return string(piece.Kind.Letter())
}

// Match redraws the whole screen: the board, the captured pieces and the
// status lines.
func (r *Renderer) Match(m *engine.Match, highlight *chess.Mask) {
	if r.opts.ClearScreen {
		fmt.Fprint(r.out, clearScreen)
	}
	r.Board(m.Board(), highlight)
	fmt.Fprintln(r.out)
	r.Captured(m)
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Turn: %d\n", m.Turn())

	if winner, finished := m.Winner(); finished {
		fmt.Fprintln(r.out, "CHECKMATE!")
		fmt.Fprintf(r.out, "Winner: %v\n", winner)
		return
	}
	fmt.Fprintf(r.out, "Waiting for player: %v\n", m.CurrentPlayer())
	if m.InCheck() {
		fmt.Fprintln(r.out, "CHECK!")
	}
}

// Captured lists the captured pieces of each colour.
func (r *Renderer) Captured(m *engine.Match) {
	fmt.Fprintln(r.out, "Captured pieces:")
	fmt.Fprint(r.out, "White: ")
	r.pieceSet(m, m.Captured(chess.White))
	fmt.Fprint(r.out, "Black: ")
	r.pieceSet(m, m.Captured(chess.Black))
}

func (r *Renderer) pieceSet(m *engine.Match, ids []chess.PieceID) {
	fmt.Fprint(r.out, "[")
	for i, id := range ids {
		if i > 0 {
			fmt.Fprint(r.out, " ")
		}
		r.square(m.Board().Piece(id), false)
	}
	fmt.Fprintln(r.out, "]")
}
