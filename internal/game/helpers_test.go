package game

import (
	"bytes"
	"io"
	"testing"

	"github.com/coder/quartz"

	"github.com/lox/fairplay/internal/commitment"
	"github.com/lox/fairplay/internal/moveset"
	"github.com/lox/fairplay/internal/randutil"
)

// FixedPicker always returns the same index
type FixedPicker int

func (p FixedPicker) IntN(n int) int { return int(p) % n }

// FixedKeyReader yields a key made of one repeated byte
func FixedKeyReader(b byte) io.Reader {
	return bytes.NewReader(bytes.Repeat([]byte{b}, commitment.MinKeyBytes))
}

// NewTestGame builds a game with a fixed computer move and key
func NewTestGame(t *testing.T, computer int, names ...string) (*Game, *quartz.Mock) {
	t.Helper()
	if len(names) == 0 {
		names = []string{"Rock", "Paper", "Scissors"}
	}
	clock := quartz.NewMock(t)
	g, err := New(moveset.MustNew(names...),
		WithPicker(FixedPicker(computer)),
		WithKeyReader(FixedKeyReader(0x5a)),
		WithClock(clock),
	)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g, clock
}

// NewSeededGame builds a game whose computer move follows a seeded sequence
func NewSeededGame(t *testing.T, seed int64, names ...string) *Game {
	t.Helper()
	g, err := New(moveset.MustNew(names...), WithPicker(randutil.New(seed)))
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

// ScriptedReader replays canned lines and errors. After the script runs out it
// returns io.EOF.
type ScriptedReader struct {
	Lines   []string
	Errs    []error
	Prompts []string
	calls   int
	closed  bool
}

func (r *ScriptedReader) Readline() (string, error) {
	i := r.calls
	r.calls++
	if i < len(r.Errs) && r.Errs[i] != nil {
		return "", r.Errs[i]
	}
	if i >= len(r.Lines) {
		return "", io.EOF
	}
	return r.Lines[i], nil
}

func (r *ScriptedReader) SetPrompt(prompt string) { r.Prompts = append(r.Prompts, prompt) }

func (r *ScriptedReader) Close() error {
	r.closed = true
	return nil
}

// Calls returns how many reads were attempted
func (r *ScriptedReader) Calls() int { return r.calls }
