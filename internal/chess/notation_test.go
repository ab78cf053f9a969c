package chess

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/xadrez-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		input string
		want  Position
	}{
		{"a8", Position{Row: 0, Column: 0}},
		{"h1", Position{Row: 7, Column: 7}},
		{"e2", Position{Row: 6, Column: 4}},
		{"d5", Position{Row: 3, Column: 3}},
		{"E4", Position{Row: 4, Column: 4}},
		{" c3\n", Position{Row: 5, Column: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSquare(tt.input)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	for _, input := range []string{"", "e", "e22", "i1", "a0", "a9", "11", "ee", "\t"} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseSquare(input); !stderrors.Is(err, errors.ErrInvalidSquare) {
				t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", input, err)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := Position{Row: row, Column: col}
			back, err := ParseSquare(p.String())
			if err != nil || back != p {
				t.Errorf("ParseSquare(%v.String()) = %+v, %v; want %+v", p, back, err, p)
			}
		}
	}

	if got := (Position{Row: 8, Column: 0}).String(); got != "??" {
		t.Errorf("off-board String() = %q; want ??", got)
	}
}

func TestMask(t *testing.T) {
	b := NewBoard(BoardSize, BoardSize)
	m := NewMask(b)

	if m.Any() {
		t.Fatal("new mask has marked squares")
	}

	m.Set(Position{Row: 2, Column: 3})
	m.Set(Position{Row: 7, Column: 7})
	m.Set(Position{Row: 8, Column: 0}) // ignored

	if !m.Any() || m.Count() != 2 {
		t.Errorf("Any() = %v, Count() = %d; want true, 2", m.Any(), m.Count())
	}
	if !m.Get(Position{Row: 2, Column: 3}) {
		t.Error("Get(2,3) = false; want true")
	}
	if m.Get(Position{Row: -1, Column: 0}) {
		t.Error("Get() off board = true; want false")
	}

	squares := m.Squares()
	if len(squares) != 2 || squares[0] != (Position{2, 3}) || squares[1] != (Position{7, 7}) {
		t.Errorf("Squares() = %v; want [{2 3} {7 7}]", squares)
	}
}

func TestColourAndKind(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
	if White.Forward() != -1 || Black.Forward() != 1 {
		t.Errorf("Forward() = %d, %d; want -1, 1", White.Forward(), Black.Forward())
	}
	if King.Letter() != 'K' || Knight.Letter() != 'N' || Kind(42).Letter() != '?' {
		t.Error("Letter() mismatch")
	}
	if Queen.String() != "Queen" || Kind(-1).String() != "Unknown" {
		t.Error("String() mismatch")
	}
}
