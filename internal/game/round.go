package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/lox/fairplay/internal/commitment"
	"github.com/lox/fairplay/internal/evaluator"
)

// ErrRoundPlayed is returned when Play is called twice on the same round
var ErrRoundPlayed = errors.New("round already played")

// Round holds one commitment. The key stays private until Play reveals it.
type Round struct {
	game        *Game
	computer    int
	key         commitment.Key
	digest      string
	committedAt time.Time
	played      bool
}

// Result is the revealed outcome of a round. Outcome is from the human's side:
// Win means the human's move beat the computer's.
type Result struct {
	HumanMove    string
	ComputerMove string
	Outcome      evaluator.Outcome
	Key          commitment.Key
	HMAC         string
	Elapsed      time.Duration
}

// Verify recomputes the commitment from the revealed key and computer move
func (r Result) Verify() bool {
	return commitment.Verify(r.Key, r.ComputerMove, r.HMAC)
}

// Commitment returns the hex HMAC published before the human plays
func (r *Round) Commitment() string { return r.digest }

// Play resolves the round against the human's move index (0-based) and reveals
// the key.
func (r *Round) Play(human int) (Result, error) {
	if r.played {
		return Result{}, ErrRoundPlayed
	}
	moves := r.game.moves
	if human < 0 || human >= moves.Len() {
		return Result{}, fmt.Errorf("%w: move index %d out of range", ErrInvalidInput, human)
	}

	humanMove := moves.Name(human)
	computerMove := moves.Name(r.computer)

	outcome, err := r.game.eval.Resolve(humanMove, computerMove)
	if err != nil {
		return Result{}, err
	}
	r.played = true

	res := Result{
		HumanMove:    humanMove,
		ComputerMove: computerMove,
		Outcome:      outcome,
		Key:          r.key,
		HMAC:         r.digest,
		Elapsed:      r.game.clock.Since(r.committedAt),
	}

	r.game.logger.Debug().
		Str("human", humanMove).
		Str("computer", computerMove).
		Stringer("outcome", outcome).
		Str("key", r.key.String()).
		Dur("elapsed", res.Elapsed).
		Msg("Round resolved")

	return res, nil
}
