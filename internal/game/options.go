package game

import (
	"io"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/fairplay/internal/commitment"
	"github.com/lox/fairplay/internal/randutil"
)

// Option configures a Game during creation.
type Option func(*gameConfig)

type gameConfig struct {
	picker    randutil.IntNSource
	keyReader io.Reader
	keyBytes  int
	clock     quartz.Clock
	logger    zerolog.Logger
}

// WithPicker sets the source used to choose the computer's move. Defaults to a
// ChaCha8 generator keyed from crypto/rand.
func WithPicker(src randutil.IntNSource) Option {
	return func(c *gameConfig) { c.picker = src }
}

// WithKeyReader sets where key bytes come from. Defaults to crypto/rand.
func WithKeyReader(r io.Reader) Option {
	return func(c *gameConfig) { c.keyReader = r }
}

// WithKeyBytes sets the key size in bytes (minimum commitment.MinKeyBytes)
func WithKeyBytes(n int) Option {
	return func(c *gameConfig) { c.keyBytes = n }
}

// WithClock sets the clock used to time decisions
func WithClock(clock quartz.Clock) Option {
	return func(c *gameConfig) { c.clock = clock }
}

// WithLogger sets the logger for round lifecycle events
func WithLogger(logger zerolog.Logger) Option {
	return func(c *gameConfig) { c.logger = logger }
}

func defaultGameConfig() *gameConfig {
	return &gameConfig{
		keyBytes: commitment.MinKeyBytes,
		clock:    quartz.NewReal(),
		logger:   zerolog.Nop(),
	}
}
