// Package report generates per-client markdown summaries from assembled
// profile data.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/saleslens-dev/saleslens/internal/crm"
	"github.com/saleslens-dev/saleslens/internal/metrics"
)

// transcriptExcerptLen caps how many transcript lines each meeting
// contributes to the report.
const transcriptExcerptLen = 6

// BuildMarkdown renders the client profile as a markdown document:
// header, stat summary, then each meeting with its insight text and a
// transcript excerpt.
func BuildMarkdown(c *crm.Client) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", c.Name)
	if c.Role != "" {
		fmt.Fprintf(&b, "%s — %s\n\n", c.Role, c.Company)
	} else {
		fmt.Fprintf(&b, "%s\n\n", c.Company)
	}

	emotions := metrics.AllEmotions(c.Meetings)
	b.WriteString("| Meetings | Success Rate | Streak | Avg Engagement | Peak Emotion |\n")
	b.WriteString("|---|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %d%% | %d | %d%% | %s |\n\n",
		len(c.Meetings),
		metrics.SuccessRate(c.Meetings),
		metrics.Streak(c.Meetings),
		metrics.AverageEngagement(emotions),
		metrics.DominantEmotion(emotions),
	)

	if len(c.Meetings) == 0 {
		b.WriteString("No meetings recorded with this client yet.\n")
		return b.String()
	}

	b.WriteString("## Meeting History\n\n")
	for _, m := range c.Meetings {
		writeMeeting(&b, m)
	}

	return b.String()
}

func writeMeeting(b *strings.Builder, m crm.Meeting) {
	outcome := "✗"
	if m.IsSuccessful {
		outcome = "✓"
	}
	fmt.Fprintf(b, "### %s %s — %s\n\n", outcome, m.Title, m.Date.Format("Jan 2, 2006"))

	if m.DurationMin != nil {
		fmt.Fprintf(b, "Duration: %d min\n\n", *m.DurationMin)
	}
	if m.Summary != "" {
		fmt.Fprintf(b, "**Summary.** %s\n\n", m.Summary)
	}
	if m.Feedback != "" {
		fmt.Fprintf(b, "**Coaching.** %s\n\n", m.Feedback)
	}

	if len(m.Transcripts) > 0 {
		b.WriteString("> Transcript excerpt\n")
		excerpt := m.Transcripts
		if len(excerpt) > transcriptExcerptLen {
			excerpt = excerpt[:transcriptExcerptLen]
		}
		for _, seg := range excerpt {
			fmt.Fprintf(b, "> `%s` **%s:** %s\n", seg.Timestamp(), seg.Speaker, seg.Text)
		}
		if len(m.Transcripts) > transcriptExcerptLen {
			fmt.Fprintf(b, "> … %d more segments\n", len(m.Transcripts)-transcriptExcerptLen)
		}
		b.WriteString("\n")
	}
}

// RenderTerminal renders markdown for display in a terminal using the
// ambient glamour style.
func RenderTerminal(markdown string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("report: creating renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("report: rendering markdown: %w", err)
	}
	return out, nil
}

// Write saves the markdown document to path.
func Write(path, markdown string) error {
	if err := os.WriteFile(path, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("report: writing %s: %w", path, err)
	}
	return nil
}
