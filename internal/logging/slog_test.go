package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	require.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel(""))
	require.Equal(t, slog.LevelInfo, ParseLevel("garbage"))
}

func TestLevelsWriteToOutput(t *testing.T) {
	log, buf := newBufLogger(slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "d", "k", "v")
	log.Info(ctx, "i")
	log.Warn(ctx, "w")
	log.Error(ctx, "e")

	out := buf.String()
	require.Contains(t, out, "msg=d")
	require.Contains(t, out, "msg=i")
	require.Contains(t, out, "msg=w")
	require.Contains(t, out, "msg=e")
	require.Contains(t, out, "k=v")
}

func TestWithAddsAttributes(t *testing.T) {
	log, buf := newBufLogger(slog.LevelInfo)

	child := log.With("component", "session")
	child.Info(context.Background(), "hello")

	require.Contains(t, buf.String(), "component=session")
}

func TestLevelFiltering(t *testing.T) {
	log, buf := newBufLogger(slog.LevelWarn)

	log.Info(context.Background(), "dropped")
	require.Empty(t, buf.String())

	log.Warn(context.Background(), "kept")
	require.Contains(t, buf.String(), "msg=kept")
}
