package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AhmetShbz/wordrush/internal/achievements"
	"github.com/AhmetShbz/wordrush/internal/app"
	"github.com/AhmetShbz/wordrush/internal/catalog"
	"github.com/AhmetShbz/wordrush/internal/economy"
	"github.com/AhmetShbz/wordrush/internal/game"
	"github.com/AhmetShbz/wordrush/internal/screens/play"
	"github.com/AhmetShbz/wordrush/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

// runPlay opens the store, restores player state from the latest snapshot,
// and starts the TUI.
func runPlay(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps, err := buildDeps(cmd.Context(), st)
	if err != nil {
		return err
	}
	return app.Run(app.Options{Deps: deps})
}

// buildDeps loads the catalog and rebuilds wallet, achievements, and
// personal bests from the latest snapshot.
func buildDeps(ctx context.Context, st *store.Store) (play.Deps, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cat, err := catalog.Load()
	if err != nil {
		return play.Deps{}, fmt.Errorf("load word catalog: %w", err)
	}

	eventRepo, err := st.EventRepo()
	if err != nil {
		return play.Deps{}, fmt.Errorf("open event repo: %w", err)
	}
	snapshotRepo := st.SnapshotRepo()

	snap, err := snapshotRepo.Latest(ctx)
	if err != nil {
		return play.Deps{}, fmt.Errorf("load snapshot: %w", err)
	}

	balance := economy.StartingBalance
	saved := map[string]store.AchievementProgressData{}
	bests := map[string]int{}
	if snap != nil {
		balance = snap.Data.WalletBalance
		if snap.Data.Achievements != nil {
			saved = snap.Data.Achievements
		}
		if snap.Data.BestScores != nil {
			bests = snap.Data.BestScores
		}
	}

	ledger := economy.NewLedger(balance, eventRepo)
	evaluator := achievements.NewEvaluator(saved, ledger, eventRepo)

	return play.Deps{
		Catalog:      cat,
		Profiles:     game.DefaultProfiles(),
		EventRepo:    eventRepo,
		SnapshotRepo: snapshotRepo,
		Ledger:       ledger,
		Evaluator:    evaluator,
		Bests:        bests,
	}, nil
}
