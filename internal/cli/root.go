// Package cli defines Cobra command definitions for the saleslens CLI.
// This file contains the root command, version flag, and help output.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saleslens-dev/saleslens/internal/tui"
	"github.com/saleslens-dev/saleslens/internal/tui/app"
)

var (
	apiOverride string
	version     = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "saleslens",
	Short: "Sales conversation analytics in your terminal",
	Long: `SalesLens turns recorded sales conversations into client insight.
It reads sessions from the SalesLens backend and renders client lists,
meeting histories, transcripts, and engagement stats.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When no subcommand is provided, launch the dashboard if TTY,
		// show help otherwise.
		if !tui.IsTTY() {
			return cmd.Help()
		}

		env, err := loadEnv()
		if err != nil {
			return err
		}

		dashboard := app.New(env.API, env.Directory, env.Logger)
		return tui.Run(dashboard)
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiOverride, "api", "", "Backend base URL (overrides config)")

	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(reportCmd)
}
