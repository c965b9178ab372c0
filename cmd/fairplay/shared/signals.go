package shared

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

// ExitInterrupted is the status used when a signal ends the process
const ExitInterrupted = 130

// HandleInterrupts runs cleanup and exits when SIGINT or SIGTERM arrives. No
// state needs saving, so the process ends right away. The returned func stops
// watching.
func HandleInterrupts(logger zerolog.Logger, cleanup func()) (stop func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	watchStop := watchSignals(logger, sigChan, cleanup, os.Exit)
	return func() {
		signal.Stop(sigChan)
		watchStop()
	}
}

func watchSignals(logger zerolog.Logger, sigChan <-chan os.Signal, cleanup func(), exit func(int)) func() {
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info().Str("signal", sig.String()).Msg("Received signal, exiting")
			if cleanup != nil {
				cleanup()
			}
			exit(ExitInterrupted)
		case <-done:
		}
	}()

	return func() { close(done) }
}
