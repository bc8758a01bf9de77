// Package views provides TUI view components for the saleslens dashboard.
package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/saleslens-dev/saleslens/internal/crm"
	"github.com/saleslens-dev/saleslens/internal/metrics"
	"github.com/saleslens-dev/saleslens/internal/tui"
)

// ============================================================================
// ClientItem
// ============================================================================

// ClientItem implements list.Item for the client list.
type ClientItem struct {
	client crm.Client
}

// NewClientItem creates a new ClientItem from an aggregated client.
func NewClientItem(c crm.Client) ClientItem {
	return ClientItem{client: c}
}

// Title returns the client name for list display.
func (i ClientItem) Title() string {
	return i.client.Name
}

// Description returns the company and per-client stats for list display.
func (i ClientItem) Description() string {
	m := i.client.Meetings
	return fmt.Sprintf("%s · %s · %d meetings · %d%% success · streak %d",
		i.client.Company,
		i.client.Role,
		len(m),
		metrics.SuccessRate(m),
		metrics.Streak(m),
	)
}

// FilterValue returns the value used for filtering in the list.
func (i ClientItem) FilterValue() string {
	return i.client.Name + " " + i.client.Company
}

// ============================================================================
// ClientsModel
// ============================================================================

// ClientsModel is the view model for the client list screen.
type ClientsModel struct {
	clients []crm.Client
	list    list.Model
	width   int
	height  int
}

// maxListWidth is the maximum width for the client list box.
const maxListWidth = 100

// NewClientsModel creates a ClientsModel for the given clients.
func NewClientsModel(clients []crm.Client, width, height int) ClientsModel {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("#7C3AED")).
		BorderLeftForeground(lipgloss.Color("#7C3AED"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("#9CA3AF")).
		BorderLeftForeground(lipgloss.Color("#7C3AED"))

	l := list.New(toItems(clients), delegate, listWidth(width), listHeight(height))
	l.Title = "Clients"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.Styles.Title = tui.TitleStyle

	return ClientsModel{
		clients: clients,
		list:    l,
		width:   width,
		height:  height,
	}
}

func toItems(clients []crm.Client) []list.Item {
	items := make([]list.Item, len(clients))
	for i, c := range clients {
		items[i] = NewClientItem(c)
	}
	return items
}

func listWidth(width int) int {
	w := width - 4
	if w > maxListWidth {
		w = maxListWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func listHeight(height int) int {
	h := height - 6
	if h < 5 {
		h = 5
	}
	return h
}

// SetClients replaces the listed clients, keeping the cursor in range.
func (m *ClientsModel) SetClients(clients []crm.Client) {
	m.clients = clients
	m.list.SetItems(toItems(clients))
	if m.list.Index() >= len(clients) && len(clients) > 0 {
		m.list.Select(len(clients) - 1)
	}
}

// SelectedID returns the slug of the highlighted client, or empty when
// the list is empty.
func (m ClientsModel) SelectedID() string {
	item, ok := m.list.SelectedItem().(ClientItem)
	if !ok {
		return ""
	}
	return item.client.ID
}

// Update handles messages for the client list.
func (m ClientsModel) Update(msg tea.Msg) (ClientsModel, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.list.SetSize(listWidth(size.Width), listHeight(size.Height))
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the client list with an overall summary strip.
func (m ClientsModel) View() string {
	if len(m.clients) == 0 {
		empty := tui.DimStyle.Render("No clients found. Is the backend running?")
		return lipgloss.JoinVertical(lipgloss.Left,
			tui.TitleStyle.Render("Clients"),
			"",
			empty,
			"",
			m.helpLine(),
		)
	}

	overall := metrics.Overall(m.clients)
	rateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.RateColor(overall.SuccessRate)))
	summary := tui.StatusBarStyle.Render(fmt.Sprintf(
		"%d clients · %d meetings · %d successful · %s overall",
		overall.Clients,
		overall.Meetings,
		overall.Successful,
		rateStyle.Render(fmt.Sprintf("%d%%", overall.SuccessRate)),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.list.View(),
		summary,
		m.helpLine(),
	)
}

func (m ClientsModel) helpLine() string {
	return tui.DimStyle.Render("↑/↓ navigate · enter open profile · r refresh · q quit")
}
