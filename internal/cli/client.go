// client.go implements the "saleslens client <id>" profile command.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saleslens-dev/saleslens/internal/crm"
	"github.com/saleslens-dev/saleslens/internal/metrics"
)

var showTranscripts bool

var clientCmd = &cobra.Command{
	Use:   "client <id>",
	Short: "Show a client profile with meeting history",
	Long: `Display one client's full profile: engagement stats, success streak,
and the meeting history with summaries and coaching feedback.

The id is the client slug shown by "saleslens clients", e.g. sarah-williams.`,
	Args: cobra.ExactArgs(1),
	RunE: runClient,
}

func init() {
	clientCmd.Flags().BoolVar(&showTranscripts, "transcripts", false, "Include full transcripts")
}

func runClient(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	asm := crm.NewAssembler(env.API, env.Directory, env.Logger)
	client := asm.ClientDetail(cmd.Context(), args[0])
	if client == nil {
		return fmt.Errorf("client %q not found", args[0])
	}

	printProfile(client)
	return nil
}

func printProfile(c *crm.Client) {
	fmt.Println(c.Name)
	if c.Role != "" {
		fmt.Printf("%s — %s\n", c.Role, c.Company)
	} else {
		fmt.Println(c.Company)
	}
	fmt.Println()

	emotions := metrics.AllEmotions(c.Meetings)
	fmt.Printf("  Avg Engagement: %d%%\n", metrics.AverageEngagement(emotions))
	fmt.Printf("  Meetings Total: %d\n", len(c.Meetings))
	fmt.Printf("  Success Rate:   %d%%\n", metrics.SuccessRate(c.Meetings))
	fmt.Printf("  Current Streak: %d\n", metrics.Streak(c.Meetings))
	fmt.Printf("  Peak Emotion:   %s\n", metrics.DominantEmotion(emotions))
	fmt.Println()

	if len(c.Meetings) == 0 {
		fmt.Println("No meetings recorded with this client yet.")
		return
	}

	fmt.Println("Meeting History")
	for _, m := range c.Meetings {
		outcome := "✗"
		if m.IsSuccessful {
			outcome = "✓"
		}
		line := fmt.Sprintf("  %s %s  %s", outcome, m.Date.Format("Jan 02, 2006"), m.Title)
		if m.DurationMin != nil {
			line += fmt.Sprintf("  (%d min)", *m.DurationMin)
		}
		fmt.Println(line)

		if m.Summary != "" {
			fmt.Printf("      Summary:  %s\n", m.Summary)
		}
		if m.Feedback != "" {
			fmt.Printf("      Coaching: %s\n", m.Feedback)
		}
		if showTranscripts && len(m.Transcripts) > 0 {
			fmt.Println()
			for _, seg := range m.Transcripts {
				fmt.Printf("      [%s] %-9s %s\n", seg.Timestamp(), seg.Speaker+":", seg.Text)
			}
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("─", 40))
	fmt.Println("Full report: saleslens report " + c.ID)
}
