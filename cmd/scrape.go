package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/database"
	"github.com/axe08/tmasearcher-api/internal/services/episodes"
	"github.com/axe08/tmasearcher-api/internal/services/scraper"
	"github.com/axe08/tmasearcher-api/pkg/config"
)

var (
	scrapePodcast string
	scrapePages   int
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape episode listings from the station site",
	Long: `Scrape the station site for new episodes and insert them into the
episode catalog. Already-known episodes (by URL) are skipped, so the
command is safe to re-run.

Example:
  tmasearcher-api scrape
  tmasearcher-api scrape --podcast TMA --pages 3`,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVar(&scrapePodcast, "podcast", "", "scrape only this podcast (default: all)")
	scrapeCmd.Flags().IntVar(&scrapePages, "pages", 0, "listing pages to scan per podcast (overrides config)")
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	shows := catalog.All()
	if scrapePodcast != "" {
		show, err := catalog.ParseShow(scrapePodcast)
		if err != nil {
			return err
		}
		shows = []catalog.Show{show}
	}

	pages := cfg.Scraper.Pages
	if scrapePages > 0 {
		pages = scrapePages
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	sc := scraper.NewScraper(episodes.NewRepository(db.DB), cfg.Scraper.BaseURL,
		scraper.WithUserAgent(cfg.Scraper.UserAgent),
		scraper.WithPageDelay(cfg.Scraper.PageDelay),
	)

	for _, show := range shows {
		result, err := sc.Scrape(cmd.Context(), show, pages)
		if err != nil {
			return fmt.Errorf("scraping %s: %w", show, err)
		}
		fmt.Printf("%s: %d pages, %d episodes seen, %d inserted\n",
			show, result.PagesFetched, result.Seen, result.Inserted)
	}
	return nil
}
