// report.go implements the "saleslens report <id>" command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saleslens-dev/saleslens/internal/crm"
	"github.com/saleslens-dev/saleslens/internal/log"
	"github.com/saleslens-dev/saleslens/internal/report"
	"github.com/saleslens-dev/saleslens/internal/tui"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report <id>",
	Short: "Generate a markdown report for a client",
	Long: `Build a markdown report for one client: profile, engagement stats,
and the full meeting history with summaries, coaching feedback, and
transcript excerpts.

In a terminal the report is rendered; use --out to save the raw markdown.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportOut, "out", "", "Write raw markdown to this file instead of rendering")
}

func runReport(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	asm := crm.NewAssembler(env.API, env.Directory, env.Logger)
	client := asm.ClientDetail(cmd.Context(), args[0])
	if client == nil {
		return fmt.Errorf("client %q not found", args[0])
	}

	md := report.BuildMarkdown(client)

	if reportOut != "" {
		if err := report.Write(reportOut, md); err != nil {
			return err
		}
		_ = env.Logger.Append(log.LogEvent{
			Event:    log.EventReportWritten,
			ClientID: client.ID,
			Path:     reportOut,
		})
		fmt.Printf("Report written to %s\n", reportOut)
		return nil
	}

	if tui.IsTTY() {
		rendered, err := report.RenderTerminal(md, 100)
		if err != nil {
			// Fall back to raw markdown rather than failing the command.
			fmt.Print(md)
			return nil
		}
		fmt.Print(rendered)
		return nil
	}

	fmt.Print(md)
	return nil
}
