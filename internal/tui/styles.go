package tui

import "github.com/charmbracelet/lipgloss"

// Core color constants for the dashboard.
const (
	primaryColor   = "#7C3AED" // Purple
	secondaryColor = "#10B981" // Green
	warningColor   = "#F59E0B" // Amber
	errorColor     = "#EF4444" // Red
	dimColor       = "#6B7280" // Gray
)

// Style variables for consistent TUI rendering.
var (
	// BoxStyle provides a rounded border box with primary color.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(primaryColor)).
			Padding(1, 2)

	// TitleStyle renders titles in primary color with bold.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// SelectedStyle highlights selected items in primary color.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// SuccessStyle renders success messages in green.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(secondaryColor))

	// ErrorStyle renders error messages in red.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorColor))

	// WarningStyle renders warning messages in amber.
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(warningColor))

	// StatusBarStyle provides styling for the status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(lipgloss.Color("#9CA3AF")).
			Padding(0, 1)
)

// Meeting outcome icons (pre-rendered strings).
var (
	// MeetingWon indicates a successful meeting.
	MeetingWon = SuccessStyle.Render("✓")

	// MeetingLost indicates an unsuccessful meeting.
	MeetingLost = ErrorStyle.Render("✗")
)

// emotionFallbackColor is used for labels the palette does not cover.
const emotionFallbackColor = "#6B84A6"

// emotionColors maps emotion labels to display colors. Covers both the
// score-derived labels and the richer labels the backend may emit.
var emotionColors = map[string]string{
	"Happiness":   "#10B981",
	"Interest":    "#0066CC",
	"Curiosity":   "#1E80E8",
	"Relief":      "#34D399",
	"Focus":       "#6366F1",
	"Neutral":     "#6B84A6",
	"Concern":     "#F59E0B",
	"Hesitation":  "#F97316",
	"Skepticism":  "#EF4444",
	"Frustration": "#DC2626",
	"Confusion":   "#EF4444",
}

// EmotionColor returns the display color for an emotion label.
func EmotionColor(label string) string {
	if c, ok := emotionColors[label]; ok {
		return c
	}
	return emotionFallbackColor
}

// EngagementColor maps an engagement percentage to a traffic-light color.
func EngagementColor(percent int) string {
	switch {
	case percent >= 75:
		return secondaryColor
	case percent >= 50:
		return warningColor
	default:
		return errorColor
	}
}

// RateColor maps a success rate percentage to a traffic-light color.
func RateColor(percent int) string {
	switch {
	case percent >= 60:
		return secondaryColor
	case percent >= 40:
		return warningColor
	default:
		return errorColor
	}
}
