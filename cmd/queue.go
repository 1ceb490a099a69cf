package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/sm2"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show today's review queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		q, err := svc.ReviewQueue(cmd.Context(), learnerID(cmd), time.Now())
		if err != nil {
			return err
		}

		if q.TotalDue == 0 && len(q.Learning) == 0 {
			fmt.Println("Nothing to review.")
			return nil
		}

		printSection := func(name string, cards []sm2.Card) {
			if len(cards) == 0 {
				return
			}
			fmt.Printf("%s (%d)\n", name, len(cards))
			for _, c := range cards {
				fmt.Printf("  %-24s  EF %.2f  rep %d  due %s\n",
					c.ItemID, c.EaseFactor, c.Repetition,
					c.NextReviewDate.Format("2006-01-02"))
			}
		}

		printSection("Overdue", q.Overdue)
		printSection("Today", q.Today)
		printSection("Learning", q.Learning)
		fmt.Printf("Total due: %d\n", q.TotalDue)
		return nil
	},
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Recommend today's study load",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		dl, err := svc.DailyLoad(cmd.Context(), learnerID(cmd))
		if err != nil {
			return err
		}

		fmt.Printf("New cards:    %d\n", dl.NewCards)
		fmt.Printf("Review cards: %d\n", dl.ReviewCards)
		fmt.Printf("Estimated:    %.1f minutes\n", dl.EstimatedMinutes)
		return nil
	},
}
