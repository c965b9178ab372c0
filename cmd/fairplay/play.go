package main

import (
	"context"
	"os"

	"github.com/lox/fairplay/cmd/fairplay/shared"
	"github.com/lox/fairplay/internal/game"
	"github.com/lox/fairplay/internal/moveset"
	"github.com/lox/fairplay/internal/randutil"
)

type PlayCmd struct {
	Moves []string `arg:"" name:"moves" help:"Odd number (3 or more) of distinct move names, in circular order"`
	Seed  *int64   `help:"Seed for the computer's move choice (keys stay cryptographically random)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	moves, err := moveset.New(c.Moves)
	if err != nil {
		return err
	}

	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	opts := []game.Option{
		game.WithKeyBytes(cfg.Game.KeyBytes),
		game.WithLogger(logger),
	}
	if c.Seed != nil {
		logger.Warn().Int64("seed", *c.Seed).Msg("Using seeded move choice")
		opts = append(opts, game.WithPicker(randutil.New(*c.Seed)))
	}

	gm, err := game.New(moves, opts...)
	if err != nil {
		return err
	}

	reader, err := game.NewLineReader(os.Stdin, stdout, game.ReaderConfig{
		Prompt:      game.DefaultPrompt,
		HistoryFile: cfg.UI.HistoryFile,
		MoveCount:   moves.Len(),
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close input")
		}
	}()

	stop := shared.HandleInterrupts(logger, func() { _ = reader.Close() })
	defer stop()

	session := game.NewSession(gm, reader, stdout,
		game.WithStyles(game.NewDisplayStyles(stdout, cfg.UseColor())),
		game.WithHelpCorner(cfg.Game.HelpCorner),
		game.WithSessionLogger(logger),
	)

	summary, err := session.Run(context.Background())
	if err != nil {
		return err
	}
	logger.Info().Stringer("reason", summary.Reason).Msg("Session finished")
	return nil
}
