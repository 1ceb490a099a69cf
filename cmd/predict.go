package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var predictCmd = &cobra.Command{
	Use:   "predict [target-score]",
	Short: "Project future scores and time to a target (default target 90)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := 90.0
		if len(args) == 1 {
			t, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid target %q: %w", args[0], err)
			}
			target = t
		}

		svc, closer, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		p, err := svc.Predict(cmd.Context(), learnerID(cmd), target)
		if err != nil {
			return err
		}

		if p.Forecast.SampleSize < 2 {
			fmt.Println("Not enough history to predict; record at least two attempts.")
			return nil
		}

		fmt.Printf("Next score:     %d (confidence %d%%, %d samples)\n",
			p.Forecast.PredictedScore, p.Forecast.Confidence, p.Forecast.SampleSize)
		fmt.Printf("Score ceiling:  %d (confidence %d%%)\n",
			p.Ceiling.Ceiling, p.Ceiling.Confidence)
		if p.Target.Achievable {
			fmt.Printf("Target %.0f:      reachable in ~%d day(s)\n",
				p.Target.TargetScore, p.Target.DaysToTarget)
		} else {
			fmt.Printf("Target %.0f:      not reachable on the current trend\n",
				p.Target.TargetScore)
		}
		fmt.Printf("Study ROI:      %.1f points/hour\n", p.ScorePerHour)
		fmt.Printf("Suggested pace: %d exam(s)/week\n", p.ExamsPerWeek)
		if len(p.KeyAreas) > 0 {
			fmt.Printf("Key areas:      %s\n", strings.Join(p.KeyAreas, ", "))
		}
		return nil
	},
}
