package main

import (
	"errors"
	"fmt"

	"github.com/lox/fairplay/internal/commitment"
	"github.com/lox/fairplay/internal/game"
)

var errHMACMismatch = errors.New("HMAC does not match")

// VerifyCmd recomputes a commitment from a revealed key
type VerifyCmd struct {
	Key  string `required:"" help:"Key revealed after the round"`
	Move string `required:"" help:"Computer's move as shown after the round"`
	HMAC string `name:"hmac" required:"" help:"HMAC published before the round"`
}

func (c *VerifyCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	out := stdout
	styles := game.NewDisplayStyles(out, cfg.UseColor())

	key := commitment.Key(c.Key)
	if !commitment.Verify(key, c.Move, c.HMAC) {
		fmt.Fprintf(out, "%s %s\n", styles.Error.Render("MISMATCH:"), commitment.Commit(key, c.Move))
		return fmt.Errorf("%w for move %q", errHMACMismatch, c.Move)
	}
	fmt.Fprintf(out, "%s HMAC matches %s\n", styles.Win.Render("OK:"), styles.Move.Render(c.Move))
	return nil
}
