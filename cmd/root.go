package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/engine"
	"github.com/abhisek/learnpath/internal/policy"
	"github.com/abhisek/learnpath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "learnpath",
	Short: "Adaptive learning engine",
	Long: "Learnpath tracks spaced repetition state, analyzes performance, and\n" +
		"generates personalized learning paths from the command line.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNPATH_DB env var)")
	rootCmd.PersistentFlags().String("learner", "default", "Learner identifier")
	rootCmd.PersistentFlags().String("policy", "", "Path to a JSON policy override file")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(attemptCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEARNPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func resolvePolicy(cmd *cobra.Command) (policy.Policy, error) {
	p, _ := cmd.Flags().GetString("policy")
	if p == "" {
		return policy.Default(), nil
	}
	return policy.Load(p)
}

func learnerID(cmd *cobra.Command) string {
	id, _ := cmd.Flags().GetString("learner")
	return id
}

// openService opens the store and wires the engine. The caller must invoke
// the returned closer.
func openService(cmd *cobra.Command) (*engine.Service, func() error, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}

	pol, err := resolvePolicy(cmd)
	if err != nil {
		return nil, nil, err
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	svc := engine.New(engine.Options{
		Cards:    s.CardRepo(),
		Reviews:  s.ReviewLogRepo(),
		Attempts: s.AttemptRepo(),
		Paths:    s.PathRepo(),
		Policy:   pol,
	})
	return svc, s.Close, nil
}
