// Package logging holds the process-wide zerolog logger. Commands install
// the configured logger via SetGlobalLogger; everything else logs through
// the package-level helpers or the context logger returned by Ctx.
package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// Logger is the global logger for the process.
var Logger zerolog.Logger

func init() {
	SetGlobalLogger(zerolog.Nop())
}

// SetGlobalLogger replaces the global logger and makes it the default
// logger returned for contexts that carry none.
func SetGlobalLogger(logger zerolog.Logger) {
	Logger = logger
	zerolog.DefaultContextLogger = &Logger
}

func With() zerolog.Context { return Logger.With() }

func Err(err error) *zerolog.Event { return Logger.Err(err) }

func Trace() *zerolog.Event { return Logger.Trace() }

func Debug() *zerolog.Event { return Logger.Debug() }

func Info() *zerolog.Event { return Logger.Info() }

func Warn() *zerolog.Event { return Logger.Warn() }

func Error() *zerolog.Event { return Logger.Error() }

func Fatal() *zerolog.Event { return Logger.Fatal() }

// Ctx returns the logger associated with ctx, falling back to the global
// logger when the context carries none.
func Ctx(ctx context.Context) *zerolog.Logger { return zerolog.Ctx(ctx) }
