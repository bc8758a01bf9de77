// clients.go implements the "saleslens clients" command listing all clients.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saleslens-dev/saleslens/internal/crm"
	"github.com/saleslens-dev/saleslens/internal/metrics"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List all clients with meeting stats",
	Long: `Display every client derived from recorded sessions, with meeting
counts, success rates, and current streaks.`,
	RunE: runClients,
}

func runClients(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	agg := crm.NewAggregator(env.API, env.Directory, env.Logger)
	clients := agg.Clients(cmd.Context())

	if len(clients) == 0 {
		fmt.Println("No clients yet. Record a session with: saleslens record start")
		return nil
	}

	overall := metrics.Overall(clients)
	fmt.Println("My Clients")
	fmt.Printf("%d active clients · %d meetings · %d%% overall success rate\n\n",
		overall.Clients, overall.Meetings, overall.SuccessRate)

	fmt.Printf("  %-22s %-26s %8s %8s %7s\n", "CLIENT", "COMPANY", "MEETINGS", "SUCCESS", "STREAK")
	for _, c := range clients {
		fmt.Printf("  %-22s %-26s %8d %7d%% %7d\n",
			truncate(c.Name, 22),
			truncate(c.Company, 26),
			len(c.Meetings),
			metrics.SuccessRate(c.Meetings),
			metrics.Streak(c.Meetings),
		)
	}

	fmt.Println()
	fmt.Println("View a profile with: saleslens client <id>")
	return nil
}

// truncate shortens s to max runes with an ellipsis. Slicing on runes
// keeps multibyte names intact.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
