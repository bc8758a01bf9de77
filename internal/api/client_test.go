package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestListSessionsDecodesWireFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/sessions" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"session_id": "abc", "customer_name": "Sarah Williams",
			 "start_time_ms": 1000, "end_time_ms": 61000,
			 "status": "analyzed", "notes": "intro call"},
			{"session_id": "def", "customer_name": null,
			 "start_time_ms": 2000, "end_time_ms": null,
			 "status": "recording", "notes": null}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	sessions, err := c.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}

	s := sessions[0]
	if s.SessionID != "abc" {
		t.Errorf("SessionID = %q, want %q", s.SessionID, "abc")
	}
	if s.CustomerName == nil || *s.CustomerName != "Sarah Williams" {
		t.Errorf("CustomerName = %v, want Sarah Williams", s.CustomerName)
	}
	if s.StartTimeMS != 1000 {
		t.Errorf("StartTimeMS = %d, want 1000", s.StartTimeMS)
	}
	if s.EndTimeMS == nil || *s.EndTimeMS != 61000 {
		t.Errorf("EndTimeMS = %v, want 61000", s.EndTimeMS)
	}

	if sessions[1].CustomerName != nil {
		t.Errorf("null customer_name should decode to nil")
	}
	if sessions[1].EndTimeMS != nil {
		t.Errorf("null end_time_ms should decode to nil")
	}
}

func TestNonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	if _, err := c.Timeline(context.Background(), "abc"); err == nil {
		t.Fatal("expected error for 500 response")
	}
	if _, err := c.Insights(context.Background(), "abc"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestTimelinePath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"start_ms": 5, "end_ms": 9, "speaker": "seller", "text": "hi",
			"physiology": {"emotion_score": 0.4}}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	segments, err := c.Timeline(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if gotPath != "/sessions/abc/timeline" {
		t.Errorf("path = %q, want /sessions/abc/timeline", gotPath)
	}
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if segments[0].Physiology == nil || segments[0].Physiology.EmotionScore == nil {
		t.Fatal("physiology emotion_score should be decoded")
	}
	if *segments[0].Physiology.EmotionScore != 0.4 {
		t.Errorf("emotion_score = %v, want 0.4", *segments[0].Physiology.EmotionScore)
	}
	if segments[0].Physiology.Engagement != nil {
		t.Error("absent engagement should decode to nil")
	}
}

func TestCreateSessionSendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var req CreateSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.CustomerName == nil || *req.CustomerName != "James Chen" {
			t.Errorf("customer_name = %v, want James Chen", req.CustomerName)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"session_id": "new-id", "message": "Session created."}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	name := "James Chen"
	resp, err := c.CreateSession(context.Background(), &name, nil)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if resp.SessionID != "new-id" {
		t.Errorf("SessionID = %q, want new-id", resp.SessionID)
	}
}

func TestStopSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/sessions/abc/stop" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "analyzed", "score": 0.82}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	resp, err := c.StopSession(context.Background(), "abc")
	if err != nil {
		t.Fatalf("StopSession: %v", err)
	}
	if resp.Status != "analyzed" {
		t.Errorf("Status = %q, want analyzed", resp.Status)
	}
	if resp.Score == nil || *resp.Score != 0.82 {
		t.Errorf("Score = %v, want 0.82", resp.Score)
	}
}

func TestTranscriptPassthrough(t *testing.T) {
	raw := `{"provider": "elevenlabs", "words": [{"w": "hello", "t": 120}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(raw))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	got, err := c.Transcript(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}

	// The payload shape is passed through untouched.
	var decoded map[string]any
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatalf("raw transcript should stay valid JSON: %v", err)
	}
	if decoded["provider"] != "elevenlabs" {
		t.Errorf("provider = %v, want elevenlabs", decoded["provider"])
	}
}

func TestContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := NewClient(srv.URL, time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := c.ListSessions(ctx); err == nil {
		t.Fatal("expected error when context deadline passes")
	}
}
