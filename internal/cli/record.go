// record.go implements "saleslens record start" and "saleslens record stop".
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saleslens-dev/saleslens/internal/log"
)

var (
	recordCustomer string
	recordNotes    string
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Start or stop a recording session",
}

var recordStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Create a new recording session",
	Long: `Create a new recording session on the backend. The returned session
ID is what the capture modules need to tag their data with.`,
	RunE: runRecordStart,
}

var recordStopCmd = &cobra.Command{
	Use:   "stop <session-id>",
	Short: "Stop a recording session and trigger analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordStop,
}

func init() {
	recordStartCmd.Flags().StringVar(&recordCustomer, "customer", "", "Customer name for the session")
	recordStartCmd.Flags().StringVar(&recordNotes, "notes", "", "Free-form session notes")

	recordCmd.AddCommand(recordStartCmd)
	recordCmd.AddCommand(recordStopCmd)
}

func runRecordStart(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	var customer, notes *string
	if recordCustomer != "" {
		customer = &recordCustomer
	}
	if recordNotes != "" {
		notes = &recordNotes
	}

	resp, err := env.API.CreateSession(cmd.Context(), customer, notes)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	_ = env.Logger.Append(log.LogEvent{
		Event:     log.EventSessionStarted,
		SessionID: resp.SessionID,
	})

	fmt.Printf("Session created: %s\n", resp.SessionID)
	if resp.Message != "" {
		fmt.Println(resp.Message)
	}
	return nil
}

func runRecordStop(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	sessionID := args[0]
	resp, err := env.API.StopSession(cmd.Context(), sessionID)
	if err != nil {
		return fmt.Errorf("stopping session: %w", err)
	}

	_ = env.Logger.Append(log.LogEvent{
		Event:     log.EventSessionStopped,
		SessionID: sessionID,
	})

	fmt.Printf("Status: %s\n", resp.Status)
	if resp.Score != nil {
		fmt.Printf("Overall score: %.2f\n", *resp.Score)
	}
	if resp.Detail != "" {
		fmt.Printf("Detail: %s\n", resp.Detail)
	}
	return nil
}
