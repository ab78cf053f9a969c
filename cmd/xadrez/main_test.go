package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/xadrez-go/internal/errors"
)

// execute runs the root command with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_FoolsMate(t *testing.T) {
	stdout, _, err := execute(t, "f2\nf3\ne7\ne5\ng2\ng4\nd8\nh4\n", "--no-color", "--no-clear")
	require.NoError(t, err)

	assert.Contains(t, stdout, "CHECKMATE!")
	assert.Contains(t, stdout, "Winner: Black")
	assert.Contains(t, stdout, "Final position: rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 3")
}

func TestRoot_StartFromFEN(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	stdout, _, err := execute(t, "e1\ng1\n", "--fen", fen, "--no-clear", "--unicode")
	require.NoError(t, err)

	assert.Contains(t, stdout, "♔")
	assert.Contains(t, stdout, "Final position: r3k2r/8/8/8/8/8/8/R4RK1 b kq - 0 1")
}

func TestRoot_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown log level", []string{"--log-level", "chatty"}},
		{"malformed FEN", []string{"--fen", "8/8/8 w"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			assert.ErrorIs(t, err, errors.ErrInvalidConfig)
		})
	}

	_, _, err := execute(t, "", "extra")
	assert.Error(t, err, "positional arguments are rejected")
}

func TestRoot_Version(t *testing.T) {
	stdout, _, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "xadrez version "+programVersion)
}

func TestRoot_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xadrez.log")
	_, stderr, err := execute(t, "e2\ne4\n", "--no-clear", "--log-level", "info", "--log-file", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "match started")
	assert.Contains(t, string(data), "move realized")
	assert.NotContains(t, stderr, "match started")
}

func TestRoot_DefaultLevelIsQuiet(t *testing.T) {
	_, stderr, err := execute(t, "e2\ne4\n", "--no-clear")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
