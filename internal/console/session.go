package console

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/apex/log"

	"github.com/lgbarn/xadrez-go/internal/chess"
	"github.com/lgbarn/xadrez-go/internal/config"
	"github.com/lgbarn/xadrez-go/internal/engine"
	"github.com/lgbarn/xadrez-go/internal/errors"
)

// Session runs the interactive loop for one match.
type Session struct {
	match    *engine.Match
	renderer *Renderer
	input    *SquareReader
	out      io.Writer
	logger   log.Interface
	opts     *config.OutputConfig
}

// NewSession creates a session that reads squares from cfg.Input and draws
// to cfg.Output.
func NewSession(m *engine.Match, cfg *config.Config, logger log.Interface) *Session {
	return &Session{
		match:    m,
		renderer: NewRenderer(cfg.Output),
		input:    NewSquareReader(cfg.Input),
		out:      cfg.Output.Writer,
		logger:   logger.WithField("match", m.ID().String()),
		opts:     cfg.Output,
	}
}

// Match returns the match being played.
func (s *Session) Match() *engine.Match {
	return s.match
}

// Run plays turns until checkmate or until the input ends. Rule violations
// and malformed squares are reported and the same turn is asked again.
// End of input is not an error.
func (s *Session) Run() error {
	s.logger.WithField("fen", s.match.FEN()).Info("match started")

	for !s.match.Finished() {
		err := s.turn()
		switch {
		case err == nil:
		case stderrors.Is(err, io.EOF):
			s.logger.Info("input closed")
			return nil
		case errors.IsRecoverable(err):
			s.logger.WithError(err).Debug("move rejected")
			fmt.Fprintln(s.out, err)
			fmt.Fprint(s.out, "Press Enter to continue")
			if err := s.input.WaitForEnter(); err != nil {
				if stderrors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		default:
			return err
		}
	}

	s.renderer.Match(s.match, nil)
	winner, _ := s.match.Winner()
	s.logger.WithFields(log.Fields{
		"winner": winner.String(),
		"turn":   s.match.Turn(),
	}).Info("match finished")
	return nil
}

// turn asks for one move and realizes it.
func (s *Session) turn() error {
	s.renderer.Match(s.match, nil)

	fmt.Fprint(s.out, "\nOrigin: ")
	origin, err := s.input.ReadSquare()
	if err != nil {
		return err
	}
	if err := s.match.ValidateOrigin(origin); err != nil {
		return err
	}

	if s.opts.ShowMoves {
		mask := s.match.LegalMoves(origin)
		s.renderer.Match(s.match, &mask)
	}

	fmt.Fprint(s.out, "\nDestination: ")
	destination, err := s.input.ReadSquare()
	if err != nil {
		return err
	}
	if err := s.match.ValidateDestination(origin, destination); err != nil {
		return err
	}

	turn := s.match.Turn()
	if err := s.match.RealizeMove(origin, destination); err != nil {
		return err
	}
	s.logMove(turn, origin, destination)
	return nil
}

func (s *Session) logMove(turn int, origin, destination chess.Position) {
	s.logger.WithFields(log.Fields{
		"turn":  turn,
		"from":  origin.String(),
		"to":    destination.String(),
		"check": s.match.InCheck(),
	}).Info("move realized")
}
