// Package api provides the typed HTTP client for the SalesLens backend.
// This file defines the wire types returned by the backend endpoints.
// Field names are snake_case on the wire; the crm package renames to
// camelCase domain types.
package api

// Session status values reported by the backend.
const (
	StatusRecording = "recording"
	StatusCompleted = "completed"
	StatusAnalyzing = "analyzing"
	StatusAnalyzed  = "analyzed"
	StatusError     = "error"
)

// Insight type values.
const (
	InsightCoaching  = "coaching"
	InsightRisk      = "risk"
	InsightHighlight = "highlight"
	InsightSummary   = "summary"
)

// Insight severity values.
const (
	SeverityPositive = "positive"
	SeverityNeutral  = "neutral"
	SeverityConcern  = "concern"
	SeverityCritical = "critical"
)

// Speaker labels used in timeline segments.
const (
	SpeakerSeller   = "seller"
	SpeakerCustomer = "customer"
	SpeakerUnknown  = "unknown"
)

// Session is one recorded sales conversation as returned by GET /sessions.
type Session struct {
	SessionID    string  `json:"session_id"`
	CustomerName *string `json:"customer_name"`
	StartTimeMS  int64   `json:"start_time_ms"`
	EndTimeMS    *int64  `json:"end_time_ms"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes"`
}

// Physiology holds the biometric readings attached to a timeline segment.
// All fields are optional; the backend omits readings it could not capture.
type Physiology struct {
	HeartRate     *float64 `json:"heart_rate,omitempty"`
	HRV           *float64 `json:"hrv,omitempty"`
	BreathingRate *float64 `json:"breathing_rate,omitempty"`
	EmotionScore  *float64 `json:"emotion_score,omitempty"`
	Engagement    *float64 `json:"engagement,omitempty"`
}

// TimelineSegment is one utterance in the merged timeline, with optional
// physiology readings synced to the same time window.
type TimelineSegment struct {
	StartMS    int64       `json:"start_ms"`
	EndMS      int64       `json:"end_ms"`
	Speaker    string      `json:"speaker"`
	Text       string      `json:"text"`
	Physiology *Physiology `json:"physiology,omitempty"`
}

// Insight is one AI-derived annotation for a session.
type Insight struct {
	InsightType string  `json:"insight_type"`
	Title       *string `json:"title"`
	Body        string  `json:"body"`
	Severity    string  `json:"severity"`
}

// PhysiologySample is one row of raw physiology data, roughly one per second.
type PhysiologySample struct {
	TimestampMS   int64    `json:"timestamp_ms"`
	HeartRate     *float64 `json:"heart_rate"`
	HRV           *float64 `json:"hrv"`
	BreathingRate *float64 `json:"breathing_rate"`
	EmotionScore  *float64 `json:"emotion_score"`
	Engagement    *float64 `json:"engagement"`
}

// CreateSessionRequest is the body for POST /sessions.
type CreateSessionRequest struct {
	CustomerName *string `json:"customer_name,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// CreateSessionResponse is the reply to POST /sessions.
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// StopSessionResponse is the reply to POST /sessions/{id}/stop. Score is
// only present when analysis succeeded; Detail carries the error otherwise.
type StopSessionResponse struct {
	Status string   `json:"status"`
	Score  *float64 `json:"score,omitempty"`
	Detail string   `json:"detail,omitempty"`
}
