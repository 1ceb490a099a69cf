package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/engine"
	"github.com/abhisek/learnpath/internal/path"
	"github.com/abhisek/learnpath/internal/sm2"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Generate and track learning paths",
}

var pathGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a learning path from the attempt history",
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := loadPool(cmd)
		if err != nil {
			return err
		}

		svc, closer, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		p, err := svc.GeneratePath(cmd.Context(), learnerID(cmd), pool)
		if err != nil {
			return err
		}

		fmt.Printf("Path:       %s\n", p.ID)
		fmt.Printf("Subjects:   %s\n", strings.Join(p.Subjects, ", "))
		fmt.Printf("Difficulty: %d\n", p.Difficulty)
		fmt.Printf("Questions:  %d\n", len(p.Questions))
		fmt.Println("Milestones:")
		for _, m := range p.Milestones {
			fmt.Printf("  %-32s  target %d%%  ~%d days  %d questions\n",
				m.Name, m.TargetAccuracy, m.EstimatedDays, m.QuestionQuota)
		}
		return nil
	},
}

var pathListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active learning paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		paths, err := svc.ActivePaths(cmd.Context(), learnerID(cmd))
		if err != nil {
			return err
		}

		if len(paths) == 0 {
			fmt.Println("No active paths.")
			return nil
		}
		for _, p := range paths {
			fmt.Printf("%s  %s  %d/%d questions\n",
				p.ID, strings.Join(p.Subjects, ","), p.QuestionsCompleted, len(p.Questions))
		}
		return nil
	},
}

var pathProgressCmd = &cobra.Command{
	Use:   "progress <path-id>",
	Short: "Show progress on a path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		r, err := svc.PathProgress(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printReport(r)
		return nil
	},
}

var pathLogCmd = &cobra.Command{
	Use:   "log <path-id> <item-id> <quality>",
	Short: "Log a completed question against a path (quality 0-5)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		quality, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid quality %q: %w", args[2], err)
		}
		timeSecs, _ := cmd.Flags().GetInt("time-secs")

		svc, closer, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		r, err := svc.LogCompletion(cmd.Context(), args[0], args[1], sm2.Quality(quality), timeSecs)
		if err != nil {
			return err
		}
		printReport(r)
		return nil
	},
}

var pathCompleteCmd = &cobra.Command{
	Use:   "complete <path-id>",
	Short: "Mark a path completed",
	Args:  cobra.ExactArgs(1),
	RunE:  transitionRunE((*engine.Service).CompletePath, "completed"),
}

var pathPauseCmd = &cobra.Command{
	Use:   "pause <path-id>",
	Short: "Pause an active path",
	Args:  cobra.ExactArgs(1),
	RunE:  transitionRunE((*engine.Service).PausePath, "paused"),
}

var pathResumeCmd = &cobra.Command{
	Use:   "resume <path-id>",
	Short: "Resume a paused path",
	Args:  cobra.ExactArgs(1),
	RunE:  transitionRunE((*engine.Service).ResumePath, "resumed"),
}

var pathAbandonCmd = &cobra.Command{
	Use:   "abandon <path-id>",
	Short: "Abandon a path",
	Args:  cobra.ExactArgs(1),
	RunE:  transitionRunE((*engine.Service).AbandonPath, "abandoned"),
}

// transitionRunE wraps a path lifecycle call in the usual open/close dance.
func transitionRunE(fn func(*engine.Service, context.Context, string) error, verb string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		if err := fn(svc, cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Path %s %s.\n", args[0], verb)
		return nil
	}
}

func printReport(r path.Report) {
	fmt.Printf("Complete:  %d%% (%d done, %d remaining)\n",
		r.PercentComplete, r.QuestionsCompleted, r.QuestionsRemaining)
	if r.CurrentMilestone != nil {
		fmt.Printf("Milestone: %s (target %d%%)\n",
			r.CurrentMilestone.Name, r.CurrentMilestone.TargetAccuracy)
	}
	if r.NextMilestone != nil {
		fmt.Printf("Next:      %s\n", r.NextMilestone.Name)
	}
	fmt.Printf("Est. done: %s\n", r.EstimatedCompletion.Format("2006-01-02"))
}

// loadPool reads a question pool from the --pool JSON file, when given.
func loadPool(cmd *cobra.Command) ([]path.Item, error) {
	poolPath, _ := cmd.Flags().GetString("pool")
	if poolPath == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(poolPath)
	if err != nil {
		return nil, fmt.Errorf("read pool file: %w", err)
	}
	var pool []path.Item
	if err := json.Unmarshal(raw, &pool); err != nil {
		return nil, fmt.Errorf("parse pool file: %w", err)
	}
	return pool, nil
}

func init() {
	pathGenerateCmd.Flags().String("pool", "", "JSON file with candidate questions [{id, topic, difficulty}]")
	pathLogCmd.Flags().Int("time-secs", 0, "Time spent in seconds")

	pathCmd.AddCommand(pathGenerateCmd)
	pathCmd.AddCommand(pathListCmd)
	pathCmd.AddCommand(pathProgressCmd)
	pathCmd.AddCommand(pathLogCmd)
	pathCmd.AddCommand(pathCompleteCmd)
	pathCmd.AddCommand(pathPauseCmd)
	pathCmd.AddCommand(pathResumeCmd)
	pathCmd.AddCommand(pathAbandonCmd)
}
