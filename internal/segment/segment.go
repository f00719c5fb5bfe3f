// Package segment assembles the greeting one technique at a time. Each
// Renderer is a strategy for producing one slice of the message; New is
// the factory that builds them.
package segment

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/viviai0214/fanfare/internal/church"
	"github.com/viviai0214/fanfare/internal/emitter"
	"github.com/viviai0214/fanfare/internal/fib"
	"github.com/viviai0214/fanfare/internal/ledger"
	"github.com/viviai0214/fanfare/internal/pipeline"
)

// Kind selects a rendering strategy
type Kind int

const (
	KindFibonacci Kind = iota
	KindChurch
	KindLedger
	KindASCII
)

// Renderer produces one slice of the message
type Renderer interface {
	// Name is the display name shown while the segment runs
	Name() string
	// Render produces the segment's characters
	Render() (string, error)
}

// Message encoding constants. Together the four segments spell the
// greeting; each one takes the most indirect route available.
var (
	// "Hello" as (fibIndex, offset) pairs: chr(fib(i) + offset)
	helloEncoded = []fib.Pair{
		{Index: 10, Offset: 17},
		{Index: 11, Offset: 12},
		{Index: 11, Offset: 19},
		{Index: 11, Offset: 19},
		{Index: 11, Offset: 22},
	}

	// " " round-tripped through its Church encoding
	spaceCodepoint = 32

	// "World" mined into the ledger one block per character
	worldCodepoints = []int{87, 111, 114, 108, 100}

	// "!" through the character pipeline
	exclaimCodepoint = 33
)

// Params carries the shared collaborators into the factory
type Params struct {
	Emitter *emitter.Emitter

	// RunID seeds the ledger genesis block
	RunID uuid.UUID
}

// New builds the renderer for a kind
func New(kind Kind, p Params) (Renderer, error) {
	switch kind {
	case KindFibonacci:
		return &fibonacciSegment{emitter: p.Emitter}, nil
	case KindChurch:
		return &churchSegment{emitter: p.Emitter}, nil
	case KindLedger:
		return &ledgerSegment{emitter: p.Emitter, runID: p.RunID}, nil
	case KindASCII:
		return &asciiSegment{emitter: p.Emitter}, nil
	default:
		return nil, fmt.Errorf("unknown segment kind: %d", kind)
	}
}

// All returns the renderers in performance order
func All(p Params) ([]Renderer, error) {
	kinds := []Kind{KindFibonacci, KindChurch, KindLedger, KindASCII}
	renderers := make([]Renderer, 0, len(kinds))
	for _, k := range kinds {
		r, err := New(k, p)
		if err != nil {
			return nil, err
		}
		renderers = append(renderers, r)
	}
	return renderers, nil
}

// fibonacciSegment decodes "Hello" from Fibonacci pairs
type fibonacciSegment struct {
	emitter *emitter.Emitter
}

func (s *fibonacciSegment) Name() string { return "Fibonacci Decoder" }

func (s *fibonacciSegment) Render() (string, error) {
	var sb strings.Builder
	for _, r := range fib.Decode(helloEncoded) {
		sb.WriteRune(s.emitter.Emit(emitter.EventRendered, r))
	}
	return sb.String(), nil
}

// churchSegment produces the space via Church numerals
type churchSegment struct {
	emitter *emitter.Emitter
}

func (s *churchSegment) Name() string { return "Church Numeral Engine" }

func (s *churchSegment) Render() (string, error) {
	r := pipeline.To(pipeline.Start(spaceCodepoint), church.DecodeRune).Unwrap()
	return string(s.emitter.Emit(emitter.EventRendered, r)), nil
}

// ledgerSegment mines "World" into a hash-chained ledger and extracts
// it back out after verification
type ledgerSegment struct {
	emitter *emitter.Emitter
	runID   uuid.UUID
}

func (s *ledgerSegment) Name() string { return "Ledger Miner" }

func (s *ledgerSegment) Render() (string, error) {
	chain := ledger.NewWithRunID(s.runID)
	for _, cp := range worldCodepoints {
		chain.Mine(s.emitter.Emit(emitter.EventSpawned, rune(cp)))
	}
	out, err := chain.VerifyAndExtract()
	if err != nil {
		return "", err
	}
	for _, r := range out {
		s.emitter.Emit(emitter.EventValidated, r)
	}
	return out, nil
}

// Char is an immutable value object for a single codepoint
type Char struct {
	Codepoint int
}

// Glyph returns the character the codepoint stands for
func (c Char) Glyph() string {
	return string(rune(c.Codepoint))
}

// asciiSegment runs the exclamation mark through the pipeline
type asciiSegment struct {
	emitter *emitter.Emitter
}

func (s *asciiSegment) Name() string { return "ASCII Pipeline" }

func (s *asciiSegment) Render() (string, error) {
	out := pipeline.To(pipeline.Start(Char{Codepoint: exclaimCodepoint}), Char.Glyph).Unwrap()
	for _, r := range out {
		s.emitter.Emit(emitter.EventRendered, r)
	}
	return out, nil
}
