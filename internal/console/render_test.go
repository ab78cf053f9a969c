package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/xadrez-go/internal/chess"
	"github.com/lgbarn/xadrez-go/internal/config"
	"github.com/lgbarn/xadrez-go/internal/engine"
)

func plainOutput(buf *bytes.Buffer) *config.OutputConfig {
	return &config.OutputConfig{Writer: buf, ShowMoves: true}
}

func TestRenderer_Board(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(plainOutput(&buf)).Board(engine.NewMatch().Board(), nil)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "8 r n b q k b n r ", lines[0])
	assert.Equal(t, "7 p p p p p p p p ", lines[1])
	assert.Equal(t, "4 - - - - - - - - ", lines[4])
	assert.Equal(t, "1 R N B Q K B N R ", lines[7])
	assert.Equal(t, "  a b c d e f g h", lines[8])
}

func TestRenderer_Highlight(t *testing.T) {
	var buf bytes.Buffer
	m := engine.NewMatch()
	mask := m.LegalMoves(chess.Position{Row: 6, Column: 4})

	NewRenderer(plainOutput(&buf)).Board(m.Board(), &mask)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "4 - - - - * - - - ", lines[4])
	assert.Equal(t, "3 - - - - * - - - ", lines[5])
}

func TestRenderer_Colour(t *testing.T) {
	var buf bytes.Buffer
	opts := plainOutput(&buf)
	opts.Colour = true
	m := engine.NewMatch()
	mask := m.LegalMoves(chess.Position{Row: 7, Column: 6})

	NewRenderer(opts).Board(m.Board(), &mask)

	out := buf.String()
	assert.Contains(t, out, "\x1b[33mR\x1b[0m", "black pieces are yellow")
	assert.Contains(t, out, "\x1b[100m-\x1b[0m", "legal destinations are highlighted")
	assert.NotContains(t, out, "r", "letters are upper case when colour tells the sides apart")
}

func TestRenderer_Unicode(t *testing.T) {
	var buf bytes.Buffer
	opts := plainOutput(&buf)
	opts.Unicode = true

	NewRenderer(opts).Board(engine.NewMatch().Board(), nil)

	assert.Contains(t, buf.String(), "8 ♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜ ")
	assert.Contains(t, buf.String(), "1 ♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖ ")
}

func TestRenderer_MatchStatus(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		want    []string
		notWant []string
	}{
		{
			name:    "opening",
			fen:     engine.InitialFEN,
			want:    []string{"Captured pieces:", "White: []", "Black: []", "Turn: 1", "Waiting for player: White"},
			notWant: []string{"CHECK!", "CHECKMATE!"},
		},
		{
			name:    "check",
			fen:     "4k3/8/8/8/8/8/8/4R1K1 b - - 0 3",
			want:    []string{"Turn: 6", "Waiting for player: Black", "CHECK!"},
			notWant: []string{"CHECKMATE!"},
		},
		{
			name:    "checkmate",
			fen:     "8/8/8/8/8/5k2/6q1/7K w - - 0 1",
			want:    []string{"CHECKMATE!", "Winner: Black"},
			notWant: []string{"Waiting for player"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := engine.NewMatchFromFEN(tt.fen)
			require.NoError(t, err)

			var buf bytes.Buffer
			NewRenderer(plainOutput(&buf)).Match(m, nil)

			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestRenderer_ClearScreen(t *testing.T) {
	var buf bytes.Buffer
	opts := plainOutput(&buf)
	opts.ClearScreen = true

	NewRenderer(opts).Match(engine.NewMatch(), nil)

	assert.True(t, strings.HasPrefix(buf.String(), clearScreen))
}
