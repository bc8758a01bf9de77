// sessions.go implements the "saleslens sessions" command listing raw sessions.
package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded sessions",
	Long:  `Display all sessions known to the backend, newest first.`,
	RunE:  runSessions,
}

func runSessions(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	sessions, err := env.API.ListSessions(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet. Start one with: saleslens record start")
		return nil
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTimeMS > sessions[j].StartTimeMS
	})

	fmt.Printf("  %-36s %-20s %-10s %s\n", "SESSION", "CUSTOMER", "STATUS", "STARTED")
	for _, s := range sessions {
		customer := "—"
		if s.CustomerName != nil && *s.CustomerName != "" {
			customer = *s.CustomerName
		}
		started := time.UnixMilli(s.StartTimeMS).Format("Jan 02 15:04")
		fmt.Printf("  %-36s %-20s %-10s %s\n", s.SessionID, truncate(customer, 20), s.Status, started)
	}

	fmt.Printf("\n%d sessions\n", len(sessions))
	return nil
}
