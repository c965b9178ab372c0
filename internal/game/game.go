package game

import (
	"fmt"
	"io"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/fairplay/internal/commitment"
	"github.com/lox/fairplay/internal/evaluator"
	"github.com/lox/fairplay/internal/moveset"
	"github.com/lox/fairplay/internal/randutil"
)

// Game is the state of one session: the move set, its outcome table and the
// sources of randomness. It is built once at startup and passed explicitly.
type Game struct {
	moves     moveset.MoveSet
	eval      *evaluator.Evaluator
	picker    randutil.IntNSource
	keyReader io.Reader
	keyBytes  int
	clock     quartz.Clock
	logger    zerolog.Logger
}

// New creates a Game over a validated move set.
//
// Example usage:
//
//	// Production - secure picker and crypto/rand keys
//	g, err := New(moves)
//
//	// Testing - deterministic picker and key
//	g, err := New(moves, WithPicker(randutil.New(42)), WithKeyReader(r))
func New(moves moveset.MoveSet, opts ...Option) (*Game, error) {
	if moves.Len() < moveset.MinMoves {
		return nil, fmt.Errorf("%w: game needs at least %d moves", moveset.ErrInvalidMoveSet, moveset.MinMoves)
	}

	cfg := defaultGameConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.keyBytes < commitment.MinKeyBytes {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", commitment.ErrKeyTooShort, cfg.keyBytes, commitment.MinKeyBytes)
	}

	if cfg.picker == nil {
		rng, err := randutil.NewSecure()
		if err != nil {
			return nil, err
		}
		cfg.picker = rng
	}

	return &Game{
		moves:     moves,
		eval:      evaluator.New(moves),
		picker:    cfg.picker,
		keyReader: cfg.keyReader,
		keyBytes:  cfg.keyBytes,
		clock:     cfg.clock,
		logger:    cfg.logger,
	}, nil
}

// Moves returns the move set
func (g *Game) Moves() moveset.MoveSet { return g.moves }

// Evaluator returns the outcome table
func (g *Game) Evaluator() *evaluator.Evaluator { return g.eval }

// NewRound picks the computer's move and commits to it. Nothing about the move
// or key is logged until the round is played.
func (g *Game) NewRound() (*Round, error) {
	computer := randutil.Pick(g.picker, g.moves.Len())

	key, err := commitment.GenerateKey(g.keyReader, g.keyBytes)
	if err != nil {
		return nil, fmt.Errorf("new round: %w", err)
	}

	r := &Round{
		game:        g,
		computer:    computer,
		key:         key,
		digest:      commitment.Commit(key, g.moves.Name(computer)),
		committedAt: g.clock.Now(),
	}

	g.logger.Debug().
		Str("hmac", r.digest).
		Int("moves", g.moves.Len()).
		Msg("Round committed")

	return r, nil
}
