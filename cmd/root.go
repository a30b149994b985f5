package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AhmetShbz/wordrush/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wordrush",
	Short: "Timed Turkish vocabulary games in the terminal",
	Long:  "WordRush — fast-paced terminal word games for learning Turkish vocabulary: match, unscramble, duel, and race against the clock.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORDRUSH_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WORDRUSH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
