package crm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saleslens-dev/saleslens/internal/api"
	"github.com/saleslens-dev/saleslens/internal/crm"
	"github.com/saleslens-dev/saleslens/internal/testutil"
)

// stubSource returns canned sessions or a canned error.
type stubSource struct {
	sessions []api.Session
	err      error
}

func (s stubSource) ListSessions(context.Context) ([]api.Session, error) {
	return s.sessions, s.err
}

func testDirectory() crm.StaticDirectory {
	return crm.StaticDirectory{
		"Sarah Williams": {Company: "Acme Enterprises", Role: "VP of Operations"},
		"James Chen":     {Company: "Nexus Technologies", Role: "CEO & Co-Founder"},
	}
}

func TestClientsGroupsBySlug(t *testing.T) {
	sessions := []api.Session{
		testutil.Session("s1", testutil.Ptr("Sarah Williams"), 3000, api.StatusAnalyzed),
		testutil.Session("s2", testutil.Ptr("James Chen"), 2000, api.StatusRecording),
		testutil.Session("s3", testutil.Ptr("sarah williams"), 1000, api.StatusCompleted),
	}
	agg := crm.NewAggregator(stubSource{sessions: sessions}, testDirectory(), nil)

	clients := agg.Clients(context.Background())
	require.Len(t, clients, 2)

	// First-seen insertion order, not alphabetical.
	assert.Equal(t, "sarah-williams", clients[0].ID)
	assert.Equal(t, "james-chen", clients[1].ID)

	// Case-normalized names group together; the first spelling wins.
	assert.Equal(t, "Sarah Williams", clients[0].Name)
	require.Len(t, clients[0].Meetings, 2)
	assert.Equal(t, "s1", clients[0].Meetings[0].ID)
	assert.Equal(t, "s3", clients[0].Meetings[1].ID)

	assert.Equal(t, "Acme Enterprises", clients[0].Company)
	assert.Equal(t, "VP of Operations", clients[0].Role)
}

func TestClientsPartitionsEverySession(t *testing.T) {
	names := []*string{
		testutil.Ptr("Sarah Williams"),
		testutil.Ptr("David Park"),
		nil,
		testutil.Ptr("sarah  williams!"),
		testutil.Ptr(""),
	}
	var sessions []api.Session
	for i, n := range names {
		for j := 0; j < i+1; j++ {
			sessions = append(sessions, testutil.RandomSession(n, int64(1000*(i+j)), api.StatusCompleted))
		}
	}

	agg := crm.NewAggregator(stubSource{sessions: sessions}, nil, nil)
	clients := agg.Clients(context.Background())

	seen := make(map[string]string) // session ID -> client ID
	for _, c := range clients {
		for _, m := range c.Meetings {
			prev, dup := seen[m.ID]
			require.False(t, dup, "session %s in both %s and %s", m.ID, prev, c.ID)
			seen[m.ID] = c.ID
		}
	}
	assert.Len(t, seen, len(sessions), "every session appears in exactly one client")

	// Every session keys to the client owning it.
	for _, s := range sessions {
		name := crm.UnknownClientName
		if s.CustomerName != nil && *s.CustomerName != "" {
			name = *s.CustomerName
		}
		assert.Equal(t, crm.Slugify(name), seen[s.SessionID])
	}
}

func TestClientsStatusOnlySuccessRule(t *testing.T) {
	sessions := []api.Session{
		testutil.Session("s1", testutil.Ptr("James Chen"), 1000, api.StatusAnalyzed),
		testutil.Session("s2", testutil.Ptr("James Chen"), 2000, api.StatusCompleted),
		testutil.Session("s3", testutil.Ptr("James Chen"), 3000, api.StatusRecording),
		testutil.Session("s4", testutil.Ptr("James Chen"), 4000, api.StatusError),
	}
	agg := crm.NewAggregator(stubSource{sessions: sessions}, nil, nil)

	clients := agg.Clients(context.Background())
	require.Len(t, clients, 1)

	want := []bool{true, true, false, false}
	for i, m := range clients[0].Meetings {
		assert.Equal(t, want[i], m.IsSuccessful, "meeting %s", m.ID)
	}
}

func TestClientsUnknownNameAndCompany(t *testing.T) {
	sessions := []api.Session{
		testutil.Session("s1", nil, 1000, api.StatusCompleted),
		testutil.Session("s2", testutil.Ptr("Nobody Known"), 2000, api.StatusCompleted),
	}
	agg := crm.NewAggregator(stubSource{sessions: sessions}, testDirectory(), nil)

	clients := agg.Clients(context.Background())
	require.Len(t, clients, 2)

	assert.Equal(t, "unknown-client", clients[0].ID)
	assert.Equal(t, crm.UnknownClientName, clients[0].Name)
	assert.Equal(t, crm.UnknownCompany, clients[0].Company)
	assert.Empty(t, clients[0].Role)

	assert.Equal(t, crm.UnknownCompany, clients[1].Company)
}

func TestClientsFetchFailureReturnsEmpty(t *testing.T) {
	agg := crm.NewAggregator(stubSource{err: errors.New("connection refused")}, nil, nil)
	assert.Empty(t, agg.Clients(context.Background()))
}
