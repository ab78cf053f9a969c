package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/xadrez-go/internal/chess"
)

// MustSquare parses an algebraic square such as "e2".
// It calls t.Fatal if the square is malformed.
func MustSquare(t *testing.T, square string) chess.Position {
	t.Helper()
	p, err := chess.ParseSquare(square)
	if err != nil {
		t.Fatalf("MustSquare(%q): %v", square, err)
	}
	return p
}

// MustMove splits a move written as "e2e4" or "e2-e4" into its origin and
// destination squares.
func MustMove(t *testing.T, move string) (origin, destination chess.Position) {
	t.Helper()
	squares := strings.ReplaceAll(move, "-", "")
	if len(squares) != 4 {
		t.Fatalf("MustMove(%q): want two squares", move)
	}
	return MustSquare(t, squares[:2]), MustSquare(t, squares[2:])
}

// Squares formats positions as algebraic names, keeping their order, for
// readable comparisons of legal-move masks.
func Squares(positions []chess.Position) []string {
	var names []string
	for _, p := range positions {
		names = append(names, p.String())
	}
	return names
}
