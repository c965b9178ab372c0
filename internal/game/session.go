package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/lox/fairplay/internal/evaluator"
)

// DefaultPrompt is shown before each line of input
const DefaultPrompt = "Enter your move: "

// ExitReason says how a session ended
type ExitReason int

const (
	ExitPlayed ExitReason = iota
	ExitQuit
	ExitHelp
)

func (r ExitReason) String() string {
	switch r {
	case ExitPlayed:
		return "played"
	case ExitQuit:
		return "quit"
	case ExitHelp:
		return "help"
	default:
		return fmt.Sprintf("ExitReason(%d)", int(r))
	}
}

// Summary is what a finished session reports. Result is nil unless a move was
// played.
type Summary struct {
	Reason ExitReason
	Result *Result
}

// Session drives the interactive menu for one round
type Session struct {
	game   *Game
	in     LineReader
	out    io.Writer
	styles *DisplayStyles
	corner string
	logger zerolog.Logger
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithStyles overrides the display styles
func WithStyles(styles *DisplayStyles) SessionOption {
	return func(s *Session) { s.styles = styles }
}

// WithHelpCorner sets the label of the help table's top-left cell
func WithHelpCorner(corner string) SessionOption {
	return func(s *Session) { s.corner = corner }
}

// WithSessionLogger sets the session logger
func WithSessionLogger(logger zerolog.Logger) SessionOption {
	return func(s *Session) { s.logger = logger }
}

// NewSession creates a session reading from in and writing to out
func NewSession(g *Game, in LineReader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		game:   g,
		in:     in,
		out:    out,
		corner: evaluator.DefaultCorner,
		logger: g.logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.styles == nil {
		s.styles = NewDisplayStyles(out, true)
	}
	return s
}

// Run commits to a computer move, prints the HMAC and prompts until the human
// plays, quits or asks for help. Help prints the outcome table and ends the
// session. End of input is treated as quitting.
func (s *Session) Run(ctx context.Context) (Summary, error) {
	round, err := s.game.NewRound()
	if err != nil {
		return Summary{}, err
	}

	s.println(s.styles.FormatCommitment(round.Commitment()))
	s.in.SetPrompt(s.styles.Prompt.Render(DefaultPrompt))

	n := s.game.moves.Len()
	for {
		if err := ctx.Err(); err != nil {
			return Summary{}, err
		}

		s.println(s.styles.FormatMenu(s.game.moves))

		line, err := s.in.Readline()
		if errors.Is(err, ErrInterrupt) {
			s.println(s.styles.Info.Render(fmt.Sprintf("Use '%s' to exit", ExitKey)))
			continue
		} else if errors.Is(err, io.EOF) {
			s.logger.Debug().Msg("Input closed")
			s.println(s.styles.Goodbye.Render("Goodbye!"))
			return Summary{Reason: ExitQuit}, nil
		} else if err != nil {
			return Summary{}, fmt.Errorf("read input: %w", err)
		}

		choice, err := ParseChoice(line, n)
		if err != nil {
			s.logger.Debug().Str("input", line).Err(err).Msg("Invalid input")
			s.println(s.styles.Error.Render(fmt.Sprintf("Error: %s", err.Error())))
			continue
		}

		switch choice.Kind {
		case ChoiceExit:
			s.println(s.styles.Goodbye.Render("Goodbye!"))
			return Summary{Reason: ExitQuit}, nil

		case ChoiceHelp:
			s.println(s.styles.FormatHelp(s.game.eval.HelpGrid(s.corner)))
			s.println(s.styles.Goodbye.Render("Goodbye!"))
			return Summary{Reason: ExitHelp}, nil

		case ChoiceMove:
			res, err := round.Play(choice.Index)
			if err != nil {
				return Summary{}, err
			}
			s.println(s.styles.FormatResult(res))
			return Summary{Reason: ExitPlayed, Result: &res}, nil
		}
	}
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}
