package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/saleslens-dev/saleslens/internal/crm"
	"github.com/saleslens-dev/saleslens/internal/metrics"
	"github.com/saleslens-dev/saleslens/internal/tui"
	"github.com/saleslens-dev/saleslens/internal/ui"
)

// emotionBadgeWindowMS is how far a physiology snapshot may sit from a
// transcript turn and still annotate it.
const emotionBadgeWindowMS = 2500

// maxProfileWidth is the maximum width for the profile viewport.
const maxProfileWidth = 100

// ============================================================================
// ProfileModel
// ============================================================================

// ProfileModel is the view model for a single client profile screen.
// The client may be nil while loading or when the id matched nothing.
type ProfileModel struct {
	clientID        string
	client          *crm.Client
	viewport        viewport.Model
	showTranscripts bool
	width           int
	height          int
}

// NewProfileModel creates a ProfileModel for the given assembled client.
func NewProfileModel(clientID string, client *crm.Client, width, height int) ProfileModel {
	vp := viewport.New(profileWidth(width), profileHeight(height))
	m := ProfileModel{
		clientID: clientID,
		client:   client,
		viewport: vp,
		width:    width,
		height:   height,
	}
	m.viewport.SetContent(m.renderContent())
	return m
}

func profileWidth(width int) int {
	w := width - 4
	if w > maxProfileWidth {
		w = maxProfileWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func profileHeight(height int) int {
	h := height - 4
	if h < 5 {
		h = 5
	}
	return h
}

// ToggleTranscripts flips transcript visibility and re-renders.
func (m *ProfileModel) ToggleTranscripts() {
	m.showTranscripts = !m.showTranscripts
	m.viewport.SetContent(m.renderContent())
}

// Update handles messages for the profile view.
func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.viewport.Width = profileWidth(size.Width)
		m.viewport.Height = profileHeight(size.Height)
		m.viewport.SetContent(m.renderContent())
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the scrollable profile.
func (m ProfileModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		tui.DimStyle.Render("↑/↓ scroll · t toggle transcripts · esc back · q quit"),
	)
}

func (m ProfileModel) renderContent() string {
	if m.client == nil {
		return tui.ErrorStyle.Render(fmt.Sprintf("No profile found for %q.", m.clientID))
	}
	c := m.client

	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render(c.Name))
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render(fmt.Sprintf("%s, %s", c.Role, c.Company)))
	b.WriteString("\n\n")
	b.WriteString(m.renderStats())
	b.WriteString("\n")
	if engagement := metrics.AverageEngagement(metrics.AllEmotions(c.Meetings)); engagement > 0 {
		b.WriteString(tui.DimStyle.Render("Engagement "))
		b.WriteString(ui.Gauge(engagement, 24, tui.EngagementColor(engagement)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if chart := m.renderEmotionChart(); chart != "" {
		b.WriteString(tui.TitleStyle.Render("Emotion Frequency"))
		b.WriteString("\n")
		b.WriteString(chart)
		b.WriteString("\n\n")
	}

	b.WriteString(tui.TitleStyle.Render("Meeting History"))
	b.WriteString("\n")
	if len(c.Meetings) == 0 {
		b.WriteString(tui.DimStyle.Render("No meetings recorded."))
		b.WriteString("\n")
	}
	for _, meeting := range c.Meetings {
		b.WriteString(m.renderMeeting(meeting))
	}

	return b.String()
}

func (m ProfileModel) renderStats() string {
	c := m.client
	rate := metrics.SuccessRate(c.Meetings)
	emotions := metrics.AllEmotions(c.Meetings)
	engagement := metrics.AverageEngagement(emotions)
	dominant := metrics.DominantEmotion(emotions)

	rateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.RateColor(rate)))
	engStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.EngagementColor(engagement)))
	domStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.EmotionColor(dominant)))

	cells := []string{
		fmt.Sprintf("Meetings %d", len(c.Meetings)),
		"Success " + rateStyle.Render(fmt.Sprintf("%d%%", rate)),
		fmt.Sprintf("Streak %d", metrics.Streak(c.Meetings)),
		"Engagement " + engStyle.Render(fmt.Sprintf("%d%%", engagement)),
		"Peak " + domStyle.Render(dominant),
	}
	return strings.Join(cells, tui.DimStyle.Render("  │  "))
}

// renderEmotionChart draws the per-label frequency of emotion snapshots
// across every meeting, in first-seen order.
func (m ProfileModel) renderEmotionChart() string {
	emotions := metrics.AllEmotions(m.client.Meetings)
	if len(emotions) == 0 {
		return ""
	}

	counts := make(map[string]int)
	var order []string
	for _, e := range emotions {
		if counts[e.Label] == 0 {
			order = append(order, e.Label)
		}
		counts[e.Label]++
	}

	bars := make([]ui.Bar, len(order))
	for i, label := range order {
		bars[i] = ui.Bar{Label: label, Value: counts[label], Color: tui.EmotionColor(label)}
	}
	return ui.BarChart(bars, 30)
}

func (m ProfileModel) renderMeeting(meeting crm.Meeting) string {
	icon := tui.MeetingWon
	if !meeting.IsSuccessful {
		icon = tui.MeetingLost
	}

	duration := ""
	if meeting.DurationMin != nil {
		duration = fmt.Sprintf(" · %d min", *meeting.DurationMin)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s %s%s\n",
		icon,
		meeting.Title,
		tui.DimStyle.Render(meeting.Date.Format("Jan 02, 2006 15:04")),
		tui.DimStyle.Render(duration),
	))
	if meeting.Summary != "" {
		b.WriteString("  " + meeting.Summary + "\n")
	}
	if meeting.Feedback != "" {
		b.WriteString("  " + tui.WarningStyle.Render("Coaching: ") + meeting.Feedback + "\n")
	}

	if m.showTranscripts {
		b.WriteString(m.renderTranscript(meeting))
	}
	return b.String()
}

// renderTranscript lists the meeting's turns with timestamps. Customer
// turns get an emotion badge from the nearest snapshot within the badge
// window.
func (m ProfileModel) renderTranscript(meeting crm.Meeting) string {
	if len(meeting.Transcripts) == 0 {
		return "  " + tui.DimStyle.Render("No transcript available.") + "\n"
	}

	var b strings.Builder
	for _, seg := range meeting.Transcripts {
		speaker := tui.SelectedStyle.Render(seg.Speaker)
		if seg.Speaker == "Customer" {
			speaker = tui.SuccessStyle.Render(seg.Speaker)
		}
		b.WriteString(fmt.Sprintf("  %s %s: %s\n",
			tui.DimStyle.Render(seg.Timestamp()),
			speaker,
			seg.Text,
		))
		if seg.Speaker == "Customer" {
			if badge := emotionBadge(meeting.Emotions, seg.OffsetMS); badge != "" {
				b.WriteString("       " + badge + "\n")
			}
		}
	}
	return b.String()
}

// emotionBadge finds the snapshot closest to the given offset, within
// emotionBadgeWindowMS, and renders it as a short annotation. Returns
// empty when no snapshot is close enough.
func emotionBadge(emotions []crm.EmotionSnapshot, offsetMS int64) string {
	var nearest *crm.EmotionSnapshot
	var nearestDist int64
	for i := range emotions {
		dist := emotions[i].OffsetMS - offsetMS
		if dist < 0 {
			dist = -dist
		}
		if dist > emotionBadgeWindowMS {
			continue
		}
		if nearest == nil || dist < nearestDist {
			nearest = &emotions[i]
			nearestDist = dist
		}
	}
	if nearest == nil {
		return ""
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.EmotionColor(nearest.Label)))
	if !nearest.EngagementKnown {
		return style.Render(fmt.Sprintf("Client showed %s", nearest.Label))
	}
	// Engagement is stored on a 0-1 scale; display as a percentage.
	return style.Render(fmt.Sprintf("Client showed %s (%d%% engagement)",
		nearest.Label, int(math.Round(100*nearest.Engagement))))
}
