// Package commands provides Bubble Tea commands for TUI operations.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saleslens-dev/saleslens/internal/crm"
	"github.com/saleslens-dev/saleslens/internal/tui"
)

// LoadClientsCmd fetches and aggregates the client list from the backend.
func LoadClientsCmd(agg *crm.Aggregator) tea.Cmd {
	return func() tea.Msg {
		return tui.ClientsLoadedMsg{Clients: agg.Clients(context.Background())}
	}
}

// LoadClientDetailCmd assembles the full profile for one client.
func LoadClientDetailCmd(asm *crm.Assembler, clientID string) tea.Cmd {
	return func() tea.Msg {
		return tui.ClientDetailMsg{
			ClientID: clientID,
			Client:   asm.ClientDetail(context.Background(), clientID),
		}
	}
}
