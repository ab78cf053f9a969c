package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lgbarn/xadrez-go/internal/config"
	"github.com/lgbarn/xadrez-go/internal/console"
)

// newRootCmd creates the xadrez command.
func newRootCmd() *cobra.Command {
	cfg := config.NewConfig()
	var noColor, noHighlight, noClear bool

	rootCmd := &cobra.Command{
		Use:   "xadrez",
		Short: "Play chess on the console",
		Long: `xadrez is a two-player chess game for the terminal.

Players take turns entering the origin and destination squares of a move
in algebraic form (for example e2 then e4). Castling, en passant and
promotion to a queen are supported; the game ends on checkmate.`,
		Version:      programVersion,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor || color.NoColor {
				cfg.Output.Colour = false
			}
			cfg.Output.ShowMoves = !noHighlight
			cfg.Output.ClearScreen = !noClear
			cfg.Output.Writer = cmd.OutOrStdout()
			cfg.Input = cmd.InOrStdin()
			return run(cfg, cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfg.StartFEN, "fen", cfg.StartFEN, "Start from this FEN position")
	flags.BoolVar(&cfg.Output.Unicode, "unicode", cfg.Output.Unicode, "Draw pieces with Unicode figurines")
	flags.BoolVar(&noColor, "no-color", false, "Disable colours (env: NO_COLOR, XADREZ_NO_COLOR)")
	flags.BoolVar(&noHighlight, "no-highlight", false, "Do not highlight legal destinations")
	flags.BoolVar(&noClear, "no-clear", false, "Do not clear the screen between moves")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error, fatal")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file instead of stderr")

	return rootCmd
}

// run plays one match and prints the final position.
func run(cfg *config.Config, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.LogLevel, cfg.LogFile, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	match, err := cfg.NewMatch()
	if err != nil {
		return err
	}

	if err := console.NewSession(match, cfg, logger).Run(); err != nil {
		logger.WithError(err).Error("session failed")
		return err
	}
	fmt.Fprintf(cfg.Output.Writer, "\nFinal position: %s\n", match.FEN())
	return nil
}
