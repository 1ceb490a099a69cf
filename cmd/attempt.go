package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/engine"
)

var attemptCmd = &cobra.Command{
	Use:   "attempt <topic> <score>",
	Short: "Record a test or question attempt (score 0-100)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", args[1], err)
		}
		if score < 0 || score > 100 {
			return fmt.Errorf("score %v out of range 0-100", score)
		}

		diff, _ := cmd.Flags().GetInt("difficulty")
		bloom, _ := cmd.Flags().GetString("bloom")
		timeSecs, _ := cmd.Flags().GetInt("time-secs")

		svc, closer, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		err = svc.RecordAttempt(cmd.Context(), engine.Attempt{
			LearnerID:     learnerID(cmd),
			Topic:         args[0],
			BloomLevel:    bloom,
			Score:         score,
			Difficulty:    diff,
			TimeSpentSecs: timeSecs,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Recorded %s: %.1f (difficulty %d)\n", args[0], score, diff)
		return nil
	},
}

func init() {
	attemptCmd.Flags().Int("difficulty", 5, "Difficulty 1-10 at which the attempt was made")
	attemptCmd.Flags().String("bloom", "", "Bloom taxonomy level, if known")
	attemptCmd.Flags().Int("time-secs", 0, "Time spent in seconds")
}
