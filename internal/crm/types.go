// Package crm turns raw backend sessions into per-client meeting histories.
// This file defines the derived domain types. All of them are transient:
// recomputed on every render, never cached or mutated in place.
package crm

import (
	"fmt"
	"time"
)

// Client is a customer derived by grouping sessions on the slugified
// customer name. Meetings is sorted descending by date once assembled.
type Client struct {
	ID       string
	Name     string
	Company  string
	Role     string // empty when the directory has no entry
	Meetings []Meeting
}

// Meeting is the per-session view of a client relationship. List-view
// aggregation fills only ID, Date and IsSuccessful; detail assembly fills
// the rest.
type Meeting struct {
	ID           string
	Date         time.Time
	Title        string
	Summary      string // body of the first summary insight, empty when none
	Feedback     string // first coaching insight, else first highlight
	IsSuccessful bool
	DurationMin  *int // nil when the session has no end time
	Transcripts  []TranscriptSegment
	Emotions     []EmotionSnapshot
}

// TranscriptSegment is one utterance offset against the session start.
// OffsetMS may be negative when upstream timestamps are inconsistent.
type TranscriptSegment struct {
	ID       string
	OffsetMS int64
	Speaker  string // capitalized for display: "Seller", "Customer"
	Text     string
}

// EmotionSnapshot is one classified physiology reading. Engagement is only
// meaningful when EngagementKnown is true; the backend sometimes delivers
// segments with physiology but no engagement reading, and we surface that
// as unknown instead of fabricating a value.
type EmotionSnapshot struct {
	ID              string
	OffsetMS        int64
	Engagement      float64
	EngagementKnown bool
	Label           string
}

// Timestamp renders the segment offset as m:ss for display. Negative
// offsets are clamped to 0:00.
func (s TranscriptSegment) Timestamp() string {
	return formatOffset(s.OffsetMS)
}

// Timestamp renders the snapshot offset as m:ss for display.
func (e EmotionSnapshot) Timestamp() string {
	return formatOffset(e.OffsetMS)
}

func formatOffset(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	total := ms / 1000
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
