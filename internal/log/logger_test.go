package log

import (
	"testing"
	"time"
)

func TestAppendAndReadAll(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	events := []LogEvent{
		{Event: EventSessionStarted, SessionID: "s1"},
		{Event: EventFetchFailed, Endpoint: "/sessions", Error: "connection refused"},
		{Event: EventClientsLoaded, Clients: 4, Sessions: 9},
	}
	for _, ev := range events {
		if err := logger.Append(ev); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	got, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	if got[0].Event != EventSessionStarted || got[0].SessionID != "s1" {
		t.Errorf("event 0 = %+v", got[0])
	}
	if got[1].Error != "connection refused" {
		t.Errorf("event 1 error = %q", got[1].Error)
	}
	if got[2].Clients != 4 {
		t.Errorf("event 2 clients = %d, want 4", got[2].Clients)
	}

	// Time should have been stamped automatically.
	if got[0].Time.IsZero() {
		t.Error("Append should set a timestamp")
	}
	if time.Since(got[0].Time) > time.Minute {
		t.Error("timestamp is not recent")
	}
}

func TestReadAllMissingFile(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	events, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll on missing file: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestNilLoggerIsNoOp(t *testing.T) {
	var logger *Logger
	if err := logger.Append(LogEvent{Event: EventFetchFailed}); err != nil {
		t.Errorf("nil logger Append should be a no-op, got %v", err)
	}
	events, err := logger.ReadAll()
	if err != nil || len(events) != 0 {
		t.Errorf("nil logger ReadAll = (%v, %v), want empty", events, err)
	}
}
