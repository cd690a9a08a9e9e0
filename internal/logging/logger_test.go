package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetGlobalLogger(t *testing.T) {
	originalLogger := Logger
	t.Cleanup(func() {
		SetGlobalLogger(originalLogger)
	})

	var buf bytes.Buffer
	SetGlobalLogger(zerolog.New(&buf))

	Info().Str("component", "test").Msg("hello")

	require.Contains(t, buf.String(), `"component":"test"`)
	require.Contains(t, buf.String(), "hello")
}

func TestCtxFallsBackToGlobalLogger(t *testing.T) {
	originalLogger := Logger
	t.Cleanup(func() {
		SetGlobalLogger(originalLogger)
	})

	var buf bytes.Buffer
	SetGlobalLogger(zerolog.New(&buf))

	Ctx(context.Background()).Info().Msg("from context")

	require.Contains(t, buf.String(), "from context")
}

func TestCtxPrefersContextLogger(t *testing.T) {
	originalLogger := Logger
	t.Cleanup(func() {
		SetGlobalLogger(originalLogger)
	})

	var global, scoped bytes.Buffer
	SetGlobalLogger(zerolog.New(&global))

	ctxLogger := zerolog.New(&scoped)
	ctx := ctxLogger.WithContext(context.Background())

	Ctx(ctx).Info().Msg("scoped only")

	require.Empty(t, global.String())
	require.Contains(t, scoped.String(), "scoped only")
}
