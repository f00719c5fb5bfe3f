package log

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"error", "warn", "info", "debug", "INFO", "Debug"} {
		_, err := ParseLevel(s)
		assert.NoError(t, err, "level %q", s)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestSetLevelInvalid(t *testing.T) {
	assert.Error(t, SetLevel(LogLevel("loud")))
}

func TestHandlerFormatting(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, slog.LevelDebug)
	logger := slog.New(h)

	logger.Info("performance complete", slog.Int("characters", 12))
	logger.Warn("something odd")
	logger.Error("it broke", slog.String("error", "boom"))
	logger.Debug("details")

	got := buf.String()
	assert.Contains(t, got, "performance complete characters=12\n")
	assert.Contains(t, got, "[WARN] something odd\n")
	assert.Contains(t, got, "[ERROR] it broke error=boom\n")
	assert.Contains(t, got, "[DEBUG] details\n")
}

func TestHandlerWithStage(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandlerWithStage(2, 4, "Ledger Miner", &buf, slog.LevelInfo)
	logger := slog.New(h)

	logger.Info("mining")
	assert.Equal(t, "[2/4 Ledger Miner] mining\n", buf.String())
}

func TestHandlerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, slog.LevelWarn)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestCallbackLogger(t *testing.T) {
	var records []slog.Record
	logger := NewCallbackLogger(func(r slog.Record) {
		records = append(records, r)
	}, slog.LevelInfo)

	logger.Info("hello")
	logger.Debug("filtered out")

	require.Len(t, records, 1)
	assert.Equal(t, "hello", records[0].Message)
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Info("routed")
	assert.Contains(t, buf.String(), "routed")
}

func TestSetCallbackRoutesPackageLogs(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	var records []slog.Record
	SetCallback(func(r slog.Record) {
		records = append(records, r)
	})
	defer SetCallback(nil)

	Info("into the frame")

	require.Len(t, records, 1)
	assert.Equal(t, "into the frame", records[0].Message)
	assert.Empty(t, buf.String(), "callback mode must bypass the writer")

	// Restoring writer output resumes normal routing
	SetCallback(nil)
	Info("back on the writer")
	assert.Contains(t, buf.String(), "back on the writer")
	assert.Len(t, records, 1)
}

func TestStageLoggerWriterMode(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	StageLogger(2, 4, "Ledger Miner").Info("mining")

	assert.Equal(t, "[2/4 Ledger Miner] mining\n", buf.String())
}

func TestStageLoggerCallbackMode(t *testing.T) {
	var records []slog.Record
	SetCallback(func(r slog.Record) {
		records = append(records, r)
	})
	defer SetCallback(nil)

	StageLogger(3, 4, "Church Numeral Engine").Info("decoding")

	require.Len(t, records, 1)
	attrs := map[string]any{}
	records[0].Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})
	assert.Equal(t, int64(3), attrs["stageIndex"])
	assert.Equal(t, int64(4), attrs["totalStages"])
	assert.Equal(t, "Church Numeral Engine", attrs["stageName"])
}
