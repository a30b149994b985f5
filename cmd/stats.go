package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AhmetShbz/wordrush/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		eventRepo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}

		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap != nil {
			fmt.Fprintf(out, "Wallet balance: %d coins\n", snap.Data.WalletBalance)

			if len(snap.Data.BestScores) > 0 {
				fmt.Fprintln(out, "\nPersonal bests:")
				keys := make([]string, 0, len(snap.Data.BestScores))
				for k := range snap.Data.BestScores {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(out, "  %-16s %d\n", k, snap.Data.BestScores[k])
				}
			}
		}

		results, err := eventRepo.QuerySessionResults(ctx, store.QueryOpts{Limit: 10})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(results) == 0 {
			fmt.Fprintln(out, "\nNo sessions played yet.")
			return nil
		}

		fmt.Fprintln(out, "\nRecent sessions:")
		w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  WHEN\tMODE\tTIER\tOUTCOME\tSCORE\tWORDS\tCOMBO")
		for _, r := range results {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%d\t%d\t×%d\n",
				r.Timestamp.Format("2006-01-02 15:04"),
				r.Mode, r.Tier, r.Outcome,
				r.Score, r.ItemsCompleted, r.ComboPeak)
		}
		w.Flush()

		grants, err := eventRepo.QueryAchievementEvents(ctx, store.QueryOpts{Limit: 10})
		if err != nil {
			return fmt.Errorf("query achievements: %w", err)
		}
		if len(grants) > 0 {
			fmt.Fprintln(out, "\nAchievements unlocked:")
			for _, g := range grants {
				fmt.Fprintf(out, "  ★ %-20s +%d coins  (%s)\n",
					g.Name, g.Reward, g.Timestamp.Format("2006-01-02"))
			}
		}
		return nil
	},
}
