package app

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viviai0214/fanfare/internal/config"
	"github.com/viviai0214/fanfare/internal/log"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.DelayMS = 0
	cfg.Plain = true
	return cfg
}

func TestRunPrintsGreeting(t *testing.T) {
	var out bytes.Buffer
	a := NewPerformApp(&out)

	err := a.Run(context.Background(), testConfig())
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Hello World")
	assert.Contains(t, got, "ENTERPRISE HELLO WORLD v"+Version)
	assert.Contains(t, got, `✓ "Hello"`)
	assert.Contains(t, got, `✓ " "`)
	assert.Contains(t, got, `✓ "World"`)
	assert.Contains(t, got, `✓ "!"`)
	assert.Contains(t, got, "Verifying ledger integrity")
	assert.Contains(t, got, "Characters produced: 12")
	assert.Contains(t, got, "Was it worth it: Absolutely.")
}

func TestRunHonorsDelay(t *testing.T) {
	var out bytes.Buffer
	a := NewPerformApp(&out)

	var slept time.Duration
	a.sleep = func(d time.Duration) { slept += d }

	cfg := testConfig()
	cfg.DelayMS = 10

	require.NoError(t, a.Run(context.Background(), cfg))

	// One pause per segment plus one before verification
	assert.Equal(t, 50*time.Millisecond, slept)
}

func TestRunCanceledContext(t *testing.T) {
	var out bytes.Buffer
	a := NewPerformApp(&out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Run(ctx, testConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunLogsStages(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	require.NoError(t, log.SetLevel(log.LevelDebug))
	defer func() {
		log.SetOutput(os.Stderr)
		_ = log.SetLevel(log.LevelInfo)
	}()

	var out bytes.Buffer
	require.NoError(t, NewPerformApp(&out).Run(context.Background(), testConfig()))

	got := logs.String()
	assert.Contains(t, got, "[DEBUG] [1/4 Fibonacci Decoder] rendering segment")
	assert.Contains(t, got, "[DEBUG] [3/4 Ledger Miner] segment complete characters=5")
	assert.Contains(t, got, "[DEBUG] [4/4 ASCII Pipeline] segment complete characters=1")
}

func TestRunVerboseSubscribesWitness(t *testing.T) {
	var out bytes.Buffer
	a := NewPerformApp(&out)

	cfg := testConfig()
	cfg.Verbose = true

	// Verbose mode must not change the message itself
	require.NoError(t, a.Run(context.Background(), cfg))
	assert.Contains(t, out.String(), "Hello World")
}
