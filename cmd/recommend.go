package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show study recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		recs, err := svc.Recommendations(cmd.Context(), learnerID(cmd))
		if err != nil {
			return err
		}

		if len(recs) == 0 {
			fmt.Println("Nothing to recommend; keep going.")
			return nil
		}
		for _, r := range recs {
			fmt.Println("-", r)
		}
		return nil
	},
}
