package config

import (
	"io"
	"os"
)

// OutputConfig holds settings related to drawing the board.
type OutputConfig struct {
	// Writer receives the board, prompts and messages.
	Writer io.Writer

	// Colour draws black pieces and highlights with ANSI colours.
	Colour bool

	// Unicode draws figurine glyphs instead of letters.
	Unicode bool

	// ShowMoves highlights the legal destinations of the chosen piece.
	ShowMoves bool

	// ClearScreen clears the terminal before each redraw.
	ClearScreen bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Writer:      os.Stdout,
		Colour:      true,
		ShowMoves:   true,
		ClearScreen: true,
	}
}
