package console

import (
	"bufio"
	"io"

	"github.com/lgbarn/xadrez-go/internal/chess"
)

// SquareReader reads one algebraic square per line.
type SquareReader struct {
	scanner *bufio.Scanner
}

// NewSquareReader creates a reader over r.
func NewSquareReader(r io.Reader) *SquareReader {
	return &SquareReader{scanner: bufio.NewScanner(r)}
}

// readLine returns the next line, or io.EOF once the input is exhausted.
func (s *SquareReader) readLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// ReadSquare reads a line and parses it as a square such as "e2".
// Malformed input yields an error wrapping ErrInvalidSquare.
func (s *SquareReader) ReadSquare() (chess.Position, error) {
	line, err := s.readLine()
	if err != nil {
		return chess.Position{}, err
	}
	return chess.ParseSquare(line)
}

// WaitForEnter consumes one line.
func (s *SquareReader) WaitForEnter() error {
	_, err := s.readLine()
	return err
}
