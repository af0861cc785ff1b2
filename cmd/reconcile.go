package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/database"
	"github.com/axe08/tmasearcher-api/internal/services/reconcile"
	"github.com/axe08/tmasearcher-api/internal/services/rss"
	"github.com/axe08/tmasearcher-api/pkg/config"
)

var reconcileLookback int

// reconcileCmd represents the reconcile command
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Backfill audio URLs from the podcast RSS feed",
	Long: `Fetch the podcast RSS feed and match its entries against recently
scraped episodes by normalized title and date. Matched episodes that do
not yet have an audio URL get one; episodes already reconciled are left
untouched.

Example:
  tmasearcher-api reconcile
  tmasearcher-api reconcile --lookback 7`,
	RunE: runReconcile,
}

func init() {
	rootCmd.AddCommand(reconcileCmd)

	reconcileCmd.Flags().IntVar(&reconcileLookback, "lookback", 0, "days of feed entries to consider (overrides config)")
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	lookback := cfg.Reconcile.LookbackDays
	if reconcileLookback > 0 {
		lookback = reconcileLookback
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	fetcher := rss.NewFetcher(rss.WithUserAgent(cfg.Scraper.UserAgent))
	entries, err := fetcher.Fetch(cmd.Context(), cfg.Reconcile.FeedURL)
	if err != nil {
		return fmt.Errorf("fetching feed: %w", err)
	}
	fmt.Printf("Fetched %d feed entries\n", len(entries))

	svc := reconcile.NewService(reconcile.NewRepository(db.DB))
	for _, show := range catalog.All() {
		updated, err := svc.Reconcile(cmd.Context(), show, entries, lookback)
		if err != nil {
			return fmt.Errorf("reconciling %s: %w", show, err)
		}
		fmt.Printf("%s: %d episodes backfilled\n", show, updated)
	}
	return nil
}
