package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/fairplay/internal/config"
	"github.com/lox/fairplay/internal/moveset"
)

// version is set by ldflags during build
var version = "dev"

// stdout is where commands write their results
var stdout io.Writer = os.Stdout

// Globals are flags shared by every command
type Globals struct {
	Config   string `help:"Path to HCL config file" default:"${config_file}" type:"path"`
	LogLevel string `help:"Log level (debug|info|warn|error), overrides config"`
	LogJSON  bool   `help:"Output JSON logs instead of console format"`
	NoColor  bool   `help:"Disable colored output"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Play one provably fair round (default)"`
	Verify  VerifyCmd        `cmd:"" help:"Check a revealed key against a published HMAC"`
	Table   TableCmd         `cmd:"" help:"Print the outcome table for a move set"`
}

func kongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("fairplay"),
		kong.Description("Provably fair rock-paper-scissors for any odd number of moves"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kongOptions()...)

	if err := ctx.Run(&cli.Globals); err != nil {
		os.Exit(report(err))
	}
}

// report prints err to stderr and returns the exit status for it
func report(err error) int {
	switch {
	case errors.Is(err, moveset.ErrInvalidMoveSet):
		log.Error("Incorrect moves", "error", err)
		fmt.Fprintln(os.Stderr, "Provide an odd number (3 or more) of distinct moves.")
		fmt.Fprintln(os.Stderr, "Example usage: fairplay Rock Paper Scissors")
	case errors.Is(err, errHMACMismatch):
		log.Error("Verification failed", "error", err)
	default:
		log.Error("fairplay failed", "error", err)
	}
	return 1
}
