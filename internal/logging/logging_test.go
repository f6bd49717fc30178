package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithPath(t *testing.T) {
	t.Parallel()

	t.Run("console by default", func(t *testing.T) {
		t.Parallel()
		result := NewLoggerWithPath(Config{Level: "info"})
		assert.False(t, result.UsingFile)
		assert.False(t, result.FallbackUsed)
	})

	t.Run("file output", func(t *testing.T) {
		t.Parallel()
		logPath := filepath.Join(t.TempDir(), "logs", "gardenledger.log")
		result := NewLoggerWithPath(Config{Level: "debug", File: logPath})

		require.True(t, result.UsingFile)
		assert.Equal(t, logPath, result.FilePath)

		result.Logger.Info().Msg("hello")
		assert.FileExists(t, logPath)
	})

	t.Run("unparseable level falls back to info", func(t *testing.T) {
		t.Parallel()
		result := NewLoggerWithPath(Config{Level: "chatty"})
		assert.Equal(t, zerolog.InfoLevel, result.Logger.GetLevel())
	})
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	t.Run("round trip through context", func(t *testing.T) {
		t.Parallel()
		ctx := ContextWithTraceID(context.Background(), "trace-123")
		assert.Equal(t, "trace-123", TraceIDFromContext(ctx))
		assert.Equal(t, "trace-123", GetOrGenerateTraceID(ctx))
	})

	t.Run("generates a ULID when absent", func(t *testing.T) {
		t.Parallel()
		id := GetOrGenerateTraceID(context.Background())
		assert.Len(t, id, 26)
	})

	t.Run("fresh IDs differ", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, NewTraceID(), NewTraceID())
	})
}

func TestTraceIDOnLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := zerolog.New(&buf).With().Str("trace_id", NewTraceID()).Logger()

	storeLogger := ComponentLogger(base, "store")
	storeLogger.Info().Msg("first")
	ledgerLogger := ComponentLogger(base, "ledger")
	ledgerLogger.Info().Msg("second")

	// Both component loggers inherit the invocation's trace ID.
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	var first, second struct {
		TraceID string `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal(lines[0], &first))
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Len(t, first.TraceID, 26)
	assert.Equal(t, first.TraceID, second.TraceID)
}
