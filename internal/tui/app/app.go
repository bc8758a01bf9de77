// Package app provides the main TUI application that wires all views together.
package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/saleslens-dev/saleslens/internal/api"
	"github.com/saleslens-dev/saleslens/internal/crm"
	"github.com/saleslens-dev/saleslens/internal/log"
	"github.com/saleslens-dev/saleslens/internal/tui"
	"github.com/saleslens-dev/saleslens/internal/tui/commands"
	"github.com/saleslens-dev/saleslens/internal/tui/views"
)

// state identifies which screen the dashboard is showing.
type state int

const (
	stateLoading state = iota
	stateList
	stateDetailLoading
	stateDetail
)

// App is the dashboard TUI: a client list that drills into per-client
// profiles assembled from the recording backend.
type App struct {
	state state
	keys  tui.KeyMap

	aggregator *crm.Aggregator
	assembler  *crm.Assembler

	spinner      spinner.Model
	clientsView  views.ClientsModel
	clientsReady bool
	profileView  views.ProfileModel

	width  int
	height int
}

// New creates the dashboard App backed by the given API client.
// dir and logger may be nil.
func New(client *api.Client, dir crm.Directory, logger *log.Logger) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))

	return &App{
		state:      stateLoading,
		keys:       tui.DefaultKeyMap,
		aggregator: crm.NewAggregator(client, dir, logger),
		assembler:  crm.NewAssembler(client, dir, logger),
		spinner:    sp,
	}
}

// Init starts the spinner and kicks off the initial client load.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, commands.LoadClientsCmd(a.aggregator))
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var cmd tea.Cmd
		switch a.state {
		case stateList:
			a.clientsView, cmd = a.clientsView.Update(msg)
		case stateDetail:
			a.profileView, cmd = a.profileView.Update(msg)
		}
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)

	case spinner.TickMsg:
		if a.state == stateLoading || a.state == stateDetailLoading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tui.ClientsLoadedMsg:
		// Reloads keep the existing list so the cursor survives a refresh.
		if a.clientsReady {
			a.clientsView.SetClients(msg.Clients)
		} else {
			a.clientsView = views.NewClientsModel(msg.Clients, a.width, a.height)
			a.clientsReady = true
		}
		a.state = stateList
		return a, nil

	case tui.ClientDetailMsg:
		a.profileView = views.NewProfileModel(msg.ClientID, msg.Client, a.width, a.height)
		a.state = stateDetail
		return a, nil
	}

	// Delegate everything else to the active view.
	var cmd tea.Cmd
	switch a.state {
	case stateList:
		a.clientsView, cmd = a.clientsView.Update(msg)
	case stateDetail:
		a.profileView, cmd = a.profileView.Update(msg)
	}
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}

	switch a.state {
	case stateList:
		switch {
		case key.Matches(msg, a.keys.Enter):
			id := a.clientsView.SelectedID()
			if id == "" {
				return a, nil
			}
			a.state = stateDetailLoading
			return a, tea.Batch(a.spinner.Tick, commands.LoadClientDetailCmd(a.assembler, id))

		case key.Matches(msg, a.keys.Refresh):
			a.state = stateLoading
			return a, tea.Batch(a.spinner.Tick, commands.LoadClientsCmd(a.aggregator))
		}

		var cmd tea.Cmd
		a.clientsView, cmd = a.clientsView.Update(msg)
		return a, cmd

	case stateDetail:
		switch {
		case key.Matches(msg, a.keys.Escape):
			a.state = stateLoading
			return a, tea.Batch(a.spinner.Tick, commands.LoadClientsCmd(a.aggregator))

		case key.Matches(msg, a.keys.Transcript):
			a.profileView.ToggleTranscripts()
			return a, nil
		}

		var cmd tea.Cmd
		a.profileView, cmd = a.profileView.Update(msg)
		return a, cmd
	}

	return a, nil
}

// View renders the current screen.
func (a *App) View() string {
	switch a.state {
	case stateLoading:
		return tui.BoxStyle.Render(a.spinner.View() + " Loading clients...")
	case stateDetailLoading:
		return tui.BoxStyle.Render(a.spinner.View() + " Assembling profile...")
	case stateList:
		return a.clientsView.View()
	case stateDetail:
		return a.profileView.View()
	}
	return ""
}
