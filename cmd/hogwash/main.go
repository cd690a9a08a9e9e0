package main

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	log "github.com/hogwash-io/hogwash/internal/logging"
	"github.com/hogwash-io/hogwash/pkg/cmd"
	"github.com/hogwash-io/hogwash/pkg/hogerrors"
)

func main() {
	// Install a process-wide logger before any flags are parsed; the zerolog
	// flag handling replaces it once a command runs.
	out := io.Writer(os.Stderr)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	log.SetGlobalLogger(zerolog.New(out).With().Timestamp().Logger())

	rootCmd, err := cmd.BuildRootCommand()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build the command tree")
	}

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrParsing) {
			log.Err(err).Msg("terminated with errors")
		}

		var termErr hogerrors.TerminationError
		if errors.As(err, &termErr) {
			os.Exit(termErr.ExitCode())
		}

		os.Exit(1)
	}
}
