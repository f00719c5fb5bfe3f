package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/viviai0214/fanfare/internal/banner"
	"github.com/viviai0214/fanfare/internal/config"
	"github.com/viviai0214/fanfare/internal/emitter"
	"github.com/viviai0214/fanfare/internal/log"
	"github.com/viviai0214/fanfare/internal/segment"
)

// Version of the performance, displayed in the header banner
const Version = "4.2.0-alpha"

// expected is the message the performance must assemble
const expected = "Hello World!"

// patterns credited in the stats footer
var patterns = []string{
	"Strategy", "Observer", "Factory", "Pipeline/Monad",
	"Ledger", "Church Encoding", "Fibonacci Sequence",
}

// PerformApp handles the perform command logic
type PerformApp struct {
	logger log.Logger
	out    io.Writer

	// sleep is swapped out in tests
	sleep func(time.Duration)
}

// NewPerformApp creates a new perform app writing to out
func NewPerformApp(out io.Writer) *PerformApp {
	return &PerformApp{
		logger: log.Default(),
		out:    out,
		sleep:  time.Sleep,
	}
}

// Run executes the full performance
func (a *PerformApp) Run(ctx context.Context, cfg *config.Config) error {
	runID := uuid.New()
	frames := banner.New(cfg.Width, cfg.NoColor || cfg.Plain)

	a.logger.Debug("starting performance",
		slog.String("runID", runID.String()),
		slog.Int("width", cfg.Width))

	// Every character passes through the event bus, witnessed or not
	em := emitter.New().Subscribe(emitter.SilentWitness{})
	if cfg.Verbose || log.IsDebugEnabled() {
		em.Subscribe(emitter.LogWitness{})
	}

	renderers, err := segment.All(segment.Params{Emitter: em, RunID: runID})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, frames.Header(Version))
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, frames.Initializing())
	fmt.Fprintln(a.out)

	// Assemble the message one technique at a time
	var sb strings.Builder
	for i, r := range renderers {
		if err := ctx.Err(); err != nil {
			return err
		}

		stage := log.StageLogger(i+1, len(renderers), r.Name())
		stage.Debug("rendering segment")

		fmt.Fprintln(a.out, frames.StageLabel(r.Name()))
		a.pause(cfg)

		text, err := r.Render()
		if err != nil {
			stage.Error("segment failed", slog.String("error", err.Error()))
			return fmt.Errorf("%s failed: %w", r.Name(), err)
		}
		sb.WriteString(text)
		fmt.Fprintln(a.out, frames.SegmentDone(text))

		stage.Debug("segment complete", slog.Int("characters", len(text)))
	}

	message := sb.String()

	a.pause(cfg)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, frames.Integrity())

	// One final check, because we're professionals
	if message != expected {
		return fmt.Errorf("integrity check failed: got %q, want %q", message, expected)
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, frames.Reveal(message))
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, frames.Footer(banner.Stats{
		Patterns:   patterns,
		Characters: len(message),
		Segments:   len(renderers),
		RunID:      runID.String(),
	}))

	a.logger.Debug("performance complete",
		slog.Int("characters", len(message)))
	return nil
}

func (a *PerformApp) pause(cfg *config.Config) {
	if cfg.DelayMS > 0 {
		a.sleep(time.Duration(cfg.DelayMS) * time.Millisecond)
	}
}
