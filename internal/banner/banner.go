// Package banner renders the decorative frames around the performance:
// the header box, per-segment status lines, the centered reveal, and
// the stats footer.
package banner

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer holds the styles for one performance
type Renderer struct {
	width int

	header    lipgloss.Style
	subtle    lipgloss.Style
	success   lipgloss.Style
	highlight lipgloss.Style
	reveal    lipgloss.Style
}

// New creates a renderer. width is the inner width of the reveal box;
// noColor strips all color and emphasis but keeps the layout.
func New(width int, noColor bool) *Renderer {
	r := &Renderer{width: width}

	r.header = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		Padding(0, 2)
	r.subtle = lipgloss.NewStyle()
	r.success = lipgloss.NewStyle()
	r.highlight = lipgloss.NewStyle()
	r.reveal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(width).
		Align(lipgloss.Center)

	if !noColor {
		r.header = r.header.Bold(true).Foreground(lipgloss.Color("12"))
		r.subtle = r.subtle.Foreground(lipgloss.Color("241"))
		r.success = r.success.Foreground(lipgloss.Color("10"))
		r.highlight = r.highlight.Bold(true).Foreground(lipgloss.Color("13"))
		r.reveal = r.reveal.Bold(true).Foreground(lipgloss.Color("13"))
	}

	return r
}

// Header renders the opening banner
func (r *Renderer) Header(version string) string {
	lines := []string{
		fmt.Sprintf("🚀 ENTERPRISE HELLO WORLD v%s (Patent Pending)", version),
		"Powered by: Fibonacci · Ledger · Church Numerals",
		"Design Patterns Used: 7",
	}
	return r.header.Render(strings.Join(lines, "\n"))
}

// Initializing renders the warm-up line
func (r *Renderer) Initializing() string {
	return r.highlight.Render("  Initializing subsystems...")
}

// StageLabel renders the faint label shown while a segment runs
func (r *Renderer) StageLabel(name string) string {
	return r.subtle.Render(fmt.Sprintf("  [%s]", strings.ToLower(name)))
}

// SegmentDone renders the completion line for one segment
func (r *Renderer) SegmentDone(text string) string {
	return fmt.Sprintf("%s %q", r.success.Render("✓"), text)
}

// Integrity renders the ledger verification line
func (r *Renderer) Integrity() string {
	return fmt.Sprintf("%s %s",
		r.highlight.Render("  Verifying ledger integrity..."),
		r.success.Render("✓"))
}

// Reveal renders the assembled message in its centered box
func (r *Renderer) Reveal(message string) string {
	return r.reveal.Render(message)
}

// Stats describes the footer of the performance
type Stats struct {
	Patterns   []string
	Characters int
	Segments   int
	RunID      string
}

// Footer renders the closing stats. Efficiency is characters produced
// per pattern employed, a metric nobody asked for.
func (r *Renderer) Footer(s Stats) string {
	lines := []string{
		fmt.Sprintf("  Design patterns used: %s", strings.Join(s.Patterns, ", ")),
		fmt.Sprintf("  Segments performed: %d", s.Segments),
		fmt.Sprintf("  Characters produced: %d", s.Characters),
		fmt.Sprintf("  Efficiency: %.4f%%", float64(s.Characters)/float64(len(s.Patterns)*100)*100),
		"  Was it worth it: Absolutely.",
	}
	if s.RunID != "" {
		lines = append(lines, fmt.Sprintf("  Run: %s", s.RunID))
	}
	return r.subtle.Render(strings.Join(lines, "\n"))
}
