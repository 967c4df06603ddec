package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitSlog(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var quiet bytes.Buffer
	InitSlog(&quiet, false)
	slog.Debug("hidden")
	slog.Info("shown")
	require.NotContains(t, quiet.String(), "hidden")
	require.Contains(t, quiet.String(), "shown")

	var loud bytes.Buffer
	InitSlog(&loud, true)
	slog.Debug("visible", "key", "value")
	require.Contains(t, loud.String(), "visible")
	require.Contains(t, loud.String(), "key")
}

func TestShutdownWithoutProviders(t *testing.T) {
	require.NoError(t, Telemetry{}.Shutdown(context.Background()))
}
