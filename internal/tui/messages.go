package tui

import "github.com/saleslens-dev/saleslens/internal/crm"

// ClientsLoadedMsg carries the aggregated client list for the list view.
// Clients is empty (never nil panics) when the backend is unreachable;
// the list view renders an empty state in that case.
type ClientsLoadedMsg struct {
	Clients []crm.Client
}

// ClientDetailMsg carries the assembled profile for one client.
// Client is nil when the id matched no sessions or the fetch failed.
type ClientDetailMsg struct {
	ClientID string
	Client   *crm.Client
}
