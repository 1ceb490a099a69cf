package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/analyzer"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show strengths, weaknesses, and learning patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		a, err := svc.Analytics(cmd.Context(), learnerID(cmd))
		if err != nil {
			return err
		}

		if a.Patterns.QuestionsAnswered == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		printTopics := func(name string, topics []analyzer.TopicStat) {
			fmt.Printf("%s:\n", name)
			if len(topics) == 0 {
				fmt.Println("  (none qualified yet)")
				return
			}
			for _, t := range topics {
				fmt.Printf("  %-24s  %5.1f avg over %d attempts\n", t.Topic, t.MeanScore, t.Attempts)
			}
		}

		printTopics("Strengths", a.Profile.Strengths)
		printTopics("Weaknesses", a.Profile.Weaknesses)

		fmt.Println("Patterns:")
		fmt.Printf("  Questions answered: %d\n", a.Patterns.QuestionsAnswered)
		fmt.Printf("  Days active:        %d\n", a.Patterns.DaysActive)
		fmt.Printf("  Learning rate:      %.1f questions/day\n", a.Patterns.LearningRate)
		fmt.Printf("  Engagement:         %.0f/100\n", a.Patterns.EngagementLevel)
		fmt.Printf("  Improvement trend:  %+.1f%%\n", a.Patterns.ImprovementTrend)
		fmt.Printf("  Average score:      %.1f\n", a.AvgScore)

		diff, err := svc.RecommendDifficulty(cmd.Context(), learnerID(cmd), 0)
		if err != nil {
			return err
		}
		fmt.Printf("  Suggested difficulty: %d\n", diff)
		return nil
	},
}
