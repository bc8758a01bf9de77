package crm

import (
	"context"
	"fmt"
	"sort"
	"time"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/saleslens-dev/saleslens/internal/api"
	"github.com/saleslens-dev/saleslens/internal/log"
)

// DetailSource is the subset of the backend API detail assembly needs.
// *api.Client satisfies it.
type DetailSource interface {
	SessionSource
	Timeline(ctx context.Context, sessionID string) ([]api.TimelineSegment, error)
	Insights(ctx context.Context, sessionID string) ([]api.Insight, error)
}

// Assembler builds the full profile for a single client: transcripts,
// classified emotions, insight-derived summary and feedback, and
// durations, merged across all of the client's sessions.
type Assembler struct {
	src    DetailSource
	dir    Directory
	logger *log.Logger
	limit  int
}

// AssemblerOption is a functional option for NewAssembler.
type AssemblerOption func(*Assembler)

// WithFetchLimit caps how many sessions are detailed concurrently.
// Defaults to 8. Values below 1 are ignored.
func WithFetchLimit(n int) AssemblerOption {
	return func(a *Assembler) {
		if n >= 1 {
			a.limit = n
		}
	}
}

// NewAssembler creates an Assembler. dir and logger may be nil.
func NewAssembler(src DetailSource, dir Directory, logger *log.Logger, opts ...AssemblerOption) *Assembler {
	a := &Assembler{src: src, dir: dir, logger: logger, limit: 8}
	for _, o := range opts {
		o(a)
	}
	return a
}

// ClientDetail assembles the profile for the client whose slug is
// clientID. Sessions are matched by slugified customer name; when none
// match, or the top-level session fetch fails, the result is nil (the
// caller renders a not-found or empty state).
//
// Per-session timeline and insight fetches for different sessions run
// concurrently. Each branch degrades independently: a failed or non-OK
// sub-fetch yields empty data for that session and never cancels the
// others. Meetings are sorted descending by date after the join.
func (a *Assembler) ClientDetail(ctx context.Context, clientID string) *Client {
	start := time.Now()

	sessions, err := a.src.ListSessions(ctx)
	if err != nil {
		_ = a.logger.Append(log.LogEvent{
			Event:    log.EventFetchFailed,
			ClientID: clientID,
			Endpoint: "/sessions",
			Error:    err.Error(),
		})
		return nil
	}

	var matched []api.Session
	for _, s := range sessions {
		if Slugify(clientName(s.CustomerName)) == clientID {
			matched = append(matched, s)
		}
	}
	if len(matched) == 0 {
		return nil
	}

	name := clientName(matched[0].CustomerName)
	profile := resolveProfile(a.dir, name)
	client := &Client{
		ID:       clientID,
		Name:     name,
		Company:  profile.Company,
		Role:     profile.Role,
		Meetings: make([]Meeting, len(matched)),
	}

	// Fan out one goroutine per session, joining by index so no locking
	// is needed. Branches never return an error: sub-fetch failures are
	// logged and degrade to empty slices.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(a.limit)
	for i, s := range matched {
		eg.Go(func() error {
			client.Meetings[i] = a.assembleMeeting(egCtx, s)
			return nil
		})
	}
	_ = eg.Wait()

	sort.Slice(client.Meetings, func(i, j int) bool {
		return client.Meetings[i].Date.After(client.Meetings[j].Date)
	})

	_ = a.logger.Append(log.LogEvent{
		Event:      log.EventDetailAssembled,
		ClientID:   clientID,
		Meetings:   len(client.Meetings),
		DurationMs: time.Since(start).Milliseconds(),
	})

	return client
}

// assembleMeeting builds one meeting from a session plus its timeline and
// insights. The two sub-fetches are independently fault-tolerant.
func (a *Assembler) assembleMeeting(ctx context.Context, s api.Session) Meeting {
	timeline, err := a.src.Timeline(ctx, s.SessionID)
	if err != nil {
		a.logFetchFailed(s.SessionID, "timeline", err)
		timeline = nil
	}

	insights, err := a.src.Insights(ctx, s.SessionID)
	if err != nil {
		a.logFetchFailed(s.SessionID, "insights", err)
		insights = nil
	}

	m := Meeting{
		ID:           s.SessionID,
		Date:         time.UnixMilli(s.StartTimeMS),
		Title:        meetingTitle(s.Notes),
		Summary:      firstInsightBody(insights, api.InsightSummary),
		Feedback:     feedbackBody(insights),
		IsSuccessful: statusSuccessful(s.Status) || anyPositive(insights),
	}

	if s.EndTimeMS != nil {
		min := int((*s.EndTimeMS - s.StartTimeMS + 30000) / 60000)
		m.DurationMin = &min
	}

	for i, seg := range timeline {
		m.Transcripts = append(m.Transcripts, TranscriptSegment{
			ID:       fmt.Sprintf("seg-%d", i),
			OffsetMS: seg.StartMS - s.StartTimeMS,
			Speaker:  capitalize(seg.Speaker),
			Text:     seg.Text,
		})
	}

	// Emotions come only from segments carrying physiology. A missing
	// emotion score counts as 0 (Neutral); a missing engagement reading
	// is surfaced as unknown rather than substituted.
	emoIndex := 0
	for _, seg := range timeline {
		if seg.Physiology == nil {
			continue
		}
		snap := EmotionSnapshot{
			ID:       fmt.Sprintf("emo-%d", emoIndex),
			OffsetMS: seg.StartMS - s.StartTimeMS,
			Label:    ClassifyEmotion(scoreOf(seg.Physiology)),
		}
		if seg.Physiology.Engagement != nil {
			snap.Engagement = *seg.Physiology.Engagement
			snap.EngagementKnown = true
		}
		m.Emotions = append(m.Emotions, snap)
		emoIndex++
	}

	return m
}

func (a *Assembler) logFetchFailed(sessionID, endpoint string, err error) {
	_ = a.logger.Append(log.LogEvent{
		Event:     log.EventFetchFailed,
		SessionID: sessionID,
		Endpoint:  fmt.Sprintf("/sessions/%s/%s", sessionID, endpoint),
		Error:     err.Error(),
	})
}

func scoreOf(p *api.Physiology) float64 {
	if p.EmotionScore == nil {
		return 0
	}
	return *p.EmotionScore
}

func meetingTitle(notes *string) string {
	if notes != nil && *notes != "" {
		return *notes
	}
	return "Meeting Details"
}

// firstInsightBody returns the body of the first insight with the given
// type, in insertion order, or empty.
func firstInsightBody(insights []api.Insight, insightType string) string {
	for _, in := range insights {
		if in.InsightType == insightType {
			return in.Body
		}
	}
	return ""
}

// feedbackBody prefers the first coaching insight, falling back to the
// first highlight.
func feedbackBody(insights []api.Insight) string {
	if body := firstInsightBody(insights, api.InsightCoaching); body != "" {
		return body
	}
	return firstInsightBody(insights, api.InsightHighlight)
}

func anyPositive(insights []api.Insight) bool {
	for _, in := range insights {
		if in.Severity == api.SeverityPositive {
			return true
		}
	}
	return false
}

// capitalize upcases the first rune: "seller" -> "Seller".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
