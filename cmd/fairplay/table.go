package main

import (
	"fmt"

	"github.com/lox/fairplay/internal/evaluator"
	"github.com/lox/fairplay/internal/game"
	"github.com/lox/fairplay/internal/moveset"
)

// TableCmd prints who beats whom without playing a round
type TableCmd struct {
	Moves []string `arg:"" name:"moves" help:"Odd number (3 or more) of distinct move names, in circular order"`
}

func (c *TableCmd) Run(g *Globals) error {
	moves, err := moveset.New(c.Moves)
	if err != nil {
		return err
	}
	cfg, err := g.load()
	if err != nil {
		return err
	}
	out := stdout

	styles := game.NewDisplayStyles(out, cfg.UseColor())
	eval := evaluator.New(moves)
	beats, err := styles.FormatBeats(eval)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n\n%s\n", styles.FormatHelp(eval.HelpGrid(cfg.Game.HelpCorner)), beats)
	return err
}
