package crm

import (
	"context"
	"time"

	"github.com/saleslens-dev/saleslens/internal/api"
	"github.com/saleslens-dev/saleslens/internal/log"
)

// SessionSource is the subset of the backend API the aggregator needs.
// *api.Client satisfies it.
type SessionSource interface {
	ListSessions(ctx context.Context) ([]api.Session, error)
}

// Aggregator builds the client list view: one fetch of all sessions,
// grouped by derived client identity.
type Aggregator struct {
	src    SessionSource
	dir    Directory
	logger *log.Logger
}

// NewAggregator creates an Aggregator. dir and logger may be nil.
func NewAggregator(src SessionSource, dir Directory, logger *log.Logger) *Aggregator {
	return &Aggregator{src: src, dir: dir, logger: logger}
}

// Clients fetches all sessions and groups them into clients keyed by the
// slugified customer name. Clients appear in first-seen order; each
// client's meetings carry only ID, Date and IsSuccessful, where success
// uses the status-only rule (insights are not fetched at list
// granularity). A failed fetch is logged and yields an empty list; the
// error never reaches the caller.
func (a *Aggregator) Clients(ctx context.Context) []Client {
	sessions, err := a.src.ListSessions(ctx)
	if err != nil {
		_ = a.logger.Append(log.LogEvent{
			Event:    log.EventFetchFailed,
			Endpoint: "/sessions",
			Error:    err.Error(),
		})
		return nil
	}

	// Local fold over an ordered accumulator: the index map finds the
	// client record, the slice preserves first-seen order.
	var clients []Client
	index := make(map[string]int)

	for _, s := range sessions {
		name := clientName(s.CustomerName)
		id := Slugify(name)

		i, ok := index[id]
		if !ok {
			profile := resolveProfile(a.dir, name)
			i = len(clients)
			index[id] = i
			clients = append(clients, Client{
				ID:      id,
				Name:    name,
				Company: profile.Company,
				Role:    profile.Role,
			})
		}

		clients[i].Meetings = append(clients[i].Meetings, Meeting{
			ID:           s.SessionID,
			Date:         time.UnixMilli(s.StartTimeMS),
			IsSuccessful: statusSuccessful(s.Status),
		})
	}

	_ = a.logger.Append(log.LogEvent{
		Event:    log.EventClientsLoaded,
		Clients:  len(clients),
		Sessions: len(sessions),
	})

	return clients
}

// statusSuccessful is the status-only success rule used at list
// granularity. Detail assembly additionally considers insight severity.
func statusSuccessful(status string) bool {
	return status == api.StatusAnalyzed || status == api.StatusCompleted
}
