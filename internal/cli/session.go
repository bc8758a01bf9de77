// session.go implements "saleslens session <id>" for inspecting one session.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/saleslens-dev/saleslens/internal/api"
)

var sessionRawTranscript bool

var sessionCmd = &cobra.Command{
	Use:   "session <session-id>",
	Short: "Inspect a single session",
	Long: `Show one session's metadata and a summary of its physiology stream.
Use --raw-transcript to dump the provider transcript JSON unmodified.`,
	Args: cobra.ExactArgs(1),
	RunE: runSession,
}

func init() {
	sessionCmd.Flags().BoolVar(&sessionRawTranscript, "raw-transcript", false, "Dump the raw transcript JSON")
}

func runSession(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	sessionID := args[0]

	if sessionRawTranscript {
		raw, err := env.API.Transcript(cmd.Context(), sessionID)
		if err != nil {
			return fmt.Errorf("fetching transcript: %w", err)
		}
		_, err = os.Stdout.Write(raw)
		fmt.Println()
		return err
	}

	s, err := env.API.GetSession(cmd.Context(), sessionID)
	if err != nil {
		return fmt.Errorf("fetching session: %w", err)
	}

	customer := "—"
	if s.CustomerName != nil && *s.CustomerName != "" {
		customer = *s.CustomerName
	}
	fmt.Printf("Session:  %s\n", s.SessionID)
	fmt.Printf("Customer: %s\n", customer)
	fmt.Printf("Status:   %s\n", s.Status)
	fmt.Printf("Started:  %s\n", time.UnixMilli(s.StartTimeMS).Format("Jan 02, 2006 15:04"))
	if s.EndTimeMS != nil {
		fmt.Printf("Ended:    %s\n", time.UnixMilli(*s.EndTimeMS).Format("Jan 02, 2006 15:04"))
	}
	if s.Notes != nil && *s.Notes != "" {
		fmt.Printf("Notes:    %s\n", *s.Notes)
	}

	samples, err := env.API.Physiology(cmd.Context(), sessionID)
	if err != nil {
		// Physiology may be absent for sessions without capture hardware.
		fmt.Println("\nPhysiology: unavailable")
		return nil
	}
	fmt.Printf("\nPhysiology: %d samples\n", len(samples))
	for _, line := range sampleAverages(samples) {
		fmt.Println(line)
	}
	return nil
}

// sampleAverages formats the mean heart rate and engagement across the
// stream, skipping null readings. Engagement samples are on a 0-1 scale
// and are displayed as percentages.
func sampleAverages(samples []api.PhysiologySample) []string {
	var hrSum, engSum float64
	var hrN, engN int
	for _, s := range samples {
		if s.HeartRate != nil {
			hrSum += *s.HeartRate
			hrN++
		}
		if s.Engagement != nil {
			engSum += *s.Engagement
			engN++
		}
	}

	var lines []string
	if hrN > 0 {
		lines = append(lines, fmt.Sprintf("  Avg heart rate: %.0f bpm", hrSum/float64(hrN)))
	}
	if engN > 0 {
		lines = append(lines, fmt.Sprintf("  Avg engagement: %.0f%%", 100*engSum/float64(engN)))
	}
	return lines
}
