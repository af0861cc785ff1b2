package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/axe08/tmasearcher-api/api"
	"github.com/axe08/tmasearcher-api/internal/database"
	"github.com/axe08/tmasearcher-api/internal/scheduler"
	"github.com/axe08/tmasearcher-api/internal/services/episodes"
	"github.com/axe08/tmasearcher-api/internal/services/reconcile"
	"github.com/axe08/tmasearcher-api/internal/services/rss"
	"github.com/axe08/tmasearcher-api/internal/services/scraper"
	"github.com/axe08/tmasearcher-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the TMA Searcher API server with the configured settings.

The server exposes episode search, catalog browsing, user accounts, and
engagement endpoints. When the scheduler is enabled it also runs the
daily scrape and RSS reconciliation jobs in-process.

Example:
  tmasearcher-api serve
  tmasearcher-api serve --port 9090
  tmasearcher-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	server.SetDatabase(db)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		episodeRepo := episodes.NewRepository(db.DB)
		sched = scheduler.New(
			scheduler.Config{
				ScrapeSpec:    cfg.Scheduler.ScrapeSpec,
				ReconcileSpec: cfg.Scheduler.ReconcileSpec,
				ScrapePages:   cfg.Scraper.Pages,
				FeedURL:       cfg.Reconcile.FeedURL,
				LookbackDays:  cfg.Reconcile.LookbackDays,
			},
			scraper.NewScraper(episodeRepo, cfg.Scraper.BaseURL,
				scraper.WithUserAgent(cfg.Scraper.UserAgent),
				scraper.WithPageDelay(cfg.Scraper.PageDelay),
			),
			rss.NewFetcher(rss.WithUserAgent(cfg.Scraper.UserAgent)),
			reconcile.NewService(reconcile.NewRepository(db.DB)),
		)
		if err := sched.Start(); err != nil {
			return fmt.Errorf("starting scheduler: %w", err)
		}
	}

	fmt.Printf("Starting TMA Searcher API server on %s:%d\n", serverHost, serverPort)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	if sched != nil {
		sched.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}
