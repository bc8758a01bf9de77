// Package testutil provides test helper utilities for saleslens tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/saleslens-dev/saleslens/internal/api"
)

// Ptr returns a pointer to v. Handy for the optional wire fields.
func Ptr[T any](v T) *T {
	return &v
}

// Session builds a session fixture with the given customer name and
// start time. A nil name models a session recorded without a customer.
func Session(id string, customerName *string, startMS int64, status string) api.Session {
	return api.Session{
		SessionID:    id,
		CustomerName: customerName,
		StartTimeMS:  startMS,
		Status:       status,
	}
}

// RandomSession builds a session with a generated UUID, mirroring the
// IDs the backend assigns.
func RandomSession(customerName *string, startMS int64, status string) api.Session {
	return Session(uuid.NewString(), customerName, startMS, status)
}

// Segment builds a timeline segment without physiology.
func Segment(startMS, endMS int64, speaker, text string) api.TimelineSegment {
	return api.TimelineSegment{
		StartMS: startMS,
		EndMS:   endMS,
		Speaker: speaker,
		Text:    text,
	}
}

// SegmentWithPhysiology builds a timeline segment carrying an emotion
// score and engagement reading.
func SegmentWithPhysiology(startMS, endMS int64, speaker, text string, score, engagement float64) api.TimelineSegment {
	seg := Segment(startMS, endMS, speaker, text)
	seg.Physiology = &api.Physiology{
		EmotionScore: Ptr(score),
		Engagement:   Ptr(engagement),
	}
	return seg
}

// Insight builds an insight fixture.
func Insight(insightType, body, severity string) api.Insight {
	return api.Insight{
		InsightType: insightType,
		Body:        body,
		Severity:    severity,
	}
}

// Backend is a scriptable fake of the SalesLens HTTP API. Configure its
// data maps, then Start it and point an api.Client at the returned URL.
type Backend struct {
	Sessions  []api.Session
	Timelines map[string][]api.TimelineSegment
	Insights  map[string][]api.Insight

	// FailSessions makes GET /sessions return 500. FailTimelines and
	// FailInsights do the same per session ID.
	FailSessions  bool
	FailTimelines map[string]bool
	FailInsights  map[string]bool
}

// Start serves the backend on an httptest server. The server is shut
// down when the test finishes.
func (b *Backend) Start(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /sessions", func(w http.ResponseWriter, r *http.Request) {
		if b.FailSessions {
			http.Error(w, "backend down", http.StatusInternalServerError)
			return
		}
		writeJSON(t, w, b.Sessions)
	})
	mux.HandleFunc("GET /sessions/{id}/timeline", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if b.FailTimelines[id] {
			http.Error(w, "timeline unavailable", http.StatusInternalServerError)
			return
		}
		segments := b.Timelines[id]
		if segments == nil {
			segments = []api.TimelineSegment{}
		}
		writeJSON(t, w, segments)
	})
	mux.HandleFunc("GET /sessions/{id}/insights", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if b.FailInsights[id] {
			http.Error(w, "insights unavailable", http.StatusInternalServerError)
			return
		}
		insights := b.Insights[id]
		if insights == nil {
			insights = []api.Insight{}
		}
		writeJSON(t, w, insights)
	})
	mux.HandleFunc("POST /sessions", func(w http.ResponseWriter, r *http.Request) {
		var req api.CreateSessionRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		id := uuid.NewString()
		b.Sessions = append(b.Sessions, api.Session{
			SessionID:    id,
			CustomerName: req.CustomerName,
			Notes:        req.Notes,
			Status:       api.StatusRecording,
		})
		writeJSON(t, w, api.CreateSessionResponse{
			SessionID: id,
			Message:   "Session created. Start capture modules with --session-id " + id,
		})
	})
	mux.HandleFunc("POST /sessions/{id}/stop", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, api.StopSessionResponse{
			Status: api.StatusAnalyzed,
			Score:  Ptr(0.82),
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil && !strings.Contains(err.Error(), "broken pipe") {
		t.Errorf("encoding fake backend response: %v", err)
	}
}
