package qsearch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/floats"
)

/*
Histogram renders a probability map as a horizontal bar chart, one line
per address. The most probable address is highlighted. Output is plain
text with lipgloss styling, suitable for the driver's terminal.
*/
type Histogram struct {
	Width int

	labelStyle lipgloss.Style
	barStyle   lipgloss.Style
	bestStyle  lipgloss.Style
}

// NewHistogram returns a histogram with the default 40-column bar width.
func NewHistogram() *Histogram {
	return &Histogram{
		Width:      40,
		labelStyle: lipgloss.NewStyle().Faint(true),
		barStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		bestStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
	}
}

// Render draws one bar per address, scaled so the largest probability
// fills the configured width.
func (h *Histogram) Render(probs ProbabilityMap) string {
	if len(probs) == 0 {
		return ""
	}

	best := probs.Best()
	max := floats.Max(probs)

	var b strings.Builder
	for address, p := range probs {
		cells := 0
		if max > 0 {
			cells = int(p / max * float64(h.Width))
		}

		label := h.labelStyle.Render(fmt.Sprintf("addr %3d", address))
		bar := strings.Repeat("█", cells)
		line := fmt.Sprintf("%s %s %.4f", label, h.barStyle.Render(bar), p)
		if address == best {
			line = fmt.Sprintf("%s %s %.4f", label, h.bestStyle.Render(bar), p)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderCounts draws measured shot counts instead of probabilities,
// matching what a histogram over repeated measurements would show.
func (h *Histogram) RenderCounts(counts []int) string {
	if len(counts) == 0 {
		return ""
	}

	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}

	var b strings.Builder
	for address, c := range counts {
		cells := 0
		if max > 0 {
			cells = c * h.Width / max
		}
		label := h.labelStyle.Render(fmt.Sprintf("addr %3d", address))
		b.WriteString(fmt.Sprintf("%s %s %d\n", label, h.barStyle.Render(strings.Repeat("█", cells)), c))
	}
	return b.String()
}
