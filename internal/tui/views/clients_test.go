package views

import (
	"testing"

	"github.com/saleslens-dev/saleslens/internal/crm"
)

func demoClients(names ...string) []crm.Client {
	clients := make([]crm.Client, len(names))
	for i, n := range names {
		clients[i] = crm.Client{ID: crm.Slugify(n), Name: n, Company: "Acme Inc"}
	}
	return clients
}

func TestClientsModelSelectedID(t *testing.T) {
	m := NewClientsModel(demoClients("Sarah Williams", "James Chen"), 80, 24)
	if got := m.SelectedID(); got != "sarah-williams" {
		t.Errorf("SelectedID() = %q, want %q", got, "sarah-williams")
	}
}

func TestClientsModelSelectedIDEmpty(t *testing.T) {
	m := NewClientsModel(nil, 80, 24)
	if got := m.SelectedID(); got != "" {
		t.Errorf("SelectedID() = %q, want empty for no clients", got)
	}
}

func TestSetClientsKeepsCursorInRange(t *testing.T) {
	m := NewClientsModel(demoClients("Sarah Williams", "James Chen", "David Park"), 80, 24)
	m.list.Select(2)

	m.SetClients(demoClients("Sarah Williams"))
	if got := m.SelectedID(); got != "sarah-williams" {
		t.Errorf("SelectedID() after shrink = %q, want %q", got, "sarah-williams")
	}
}

func TestSetClientsPreservesSelection(t *testing.T) {
	m := NewClientsModel(demoClients("Sarah Williams", "James Chen"), 80, 24)
	m.list.Select(1)

	m.SetClients(demoClients("Sarah Williams", "James Chen"))
	if got := m.SelectedID(); got != "james-chen" {
		t.Errorf("SelectedID() after reload = %q, want %q", got, "james-chen")
	}
}
