// Package ui provides terminal UI components for saleslens.
// This file implements the ASCII charts used by the profile views.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar is one labelled value in a horizontal bar chart.
type Bar struct {
	Label string
	Value int
	Color string // hex color for the filled portion
}

// barRune fills the bars; trackRune fills the empty remainder.
const (
	barRune   = '█'
	trackRune = '░'
)

// BarChart renders horizontal bars scaled to the largest value. width is
// the character budget for the bar itself, not counting the label and
// count columns. Returns an empty string for no bars.
func BarChart(bars []Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	if width < 4 {
		width = 4
	}

	max := 0
	labelWidth := 0
	for _, b := range bars {
		if b.Value > max {
			max = b.Value
		}
		if len(b.Label) > labelWidth {
			labelWidth = len(b.Label)
		}
	}
	if max == 0 {
		max = 1
	}

	var out strings.Builder
	for i, b := range bars {
		filled := b.Value * width / max
		if b.Value > 0 && filled == 0 {
			filled = 1
		}

		bar := strings.Repeat(string(barRune), filled)
		track := strings.Repeat(string(trackRune), width-filled)
		if b.Color != "" {
			bar = lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color)).Render(bar)
		}

		fmt.Fprintf(&out, "%-*s %s%s %d", labelWidth, b.Label, bar, track, b.Value)
		if i < len(bars)-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// Gauge renders a single 0-100 percentage as a compact meter, used for
// the engagement stat.
func Gauge(percent int, width int, color string) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	if width < 4 {
		width = 4
	}

	filled := percent * width / 100
	bar := strings.Repeat(string(barRune), filled)
	track := strings.Repeat(string(trackRune), width-filled)
	if color != "" {
		bar = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(bar)
	}
	return fmt.Sprintf("%s%s %d%%", bar, track, percent)
}
