package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/engine"
	"github.com/abhisek/learnpath/internal/sm2"
)

var reviewCmd = &cobra.Command{
	Use:   "review <item-id> <quality>",
	Short: "Submit a review for an item (quality 0-5)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		quality, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quality %q: %w", args[1], err)
		}
		attemptID, _ := cmd.Flags().GetString("attempt-id")
		responseMs, _ := cmd.Flags().GetInt("response-ms")

		svc, closer, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		card, err := svc.SubmitReview(cmd.Context(), engine.ReviewSubmission{
			AttemptID:      attemptID,
			LearnerID:      learnerID(cmd),
			ItemID:         args[0],
			Quality:        sm2.Quality(quality),
			ResponseTimeMs: responseMs,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Item:        %s\n", card.ItemID)
		fmt.Printf("Quality:     %d\n", quality)
		fmt.Printf("Ease factor: %.2f\n", card.EaseFactor)
		fmt.Printf("Interval:    %d day(s)\n", card.Interval)
		fmt.Printf("Repetition:  %d\n", card.Repetition)
		fmt.Printf("Next review: %s\n", card.NextReviewDate.Format("2006-01-02"))
		return nil
	},
}

func init() {
	reviewCmd.Flags().String("attempt-id", "", "Idempotency key; a repeated submission with the same ID is rejected")
	reviewCmd.Flags().Int("response-ms", 0, "Response time in milliseconds")
}
