// Package scheduler runs the recurring ingestion jobs: the daily catalog
// scrape and the RSS audio reconciliation that follows it.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/services/reconcile"
	"github.com/axe08/tmasearcher-api/internal/services/rss"
	"github.com/axe08/tmasearcher-api/internal/services/scraper"
)

const jobTimeout = 10 * time.Minute

// Config holds the cron specs and job parameters.
type Config struct {
	ScrapeSpec    string
	ReconcileSpec string
	ScrapePages   int
	FeedURL       string
	LookbackDays  int
}

// Scheduler owns the cron runner and the jobs it drives.
type Scheduler struct {
	cron      *cron.Cron
	cfg       Config
	scraper   *scraper.Scraper
	fetcher   *rss.Fetcher
	reconcile reconcile.EpisodeReconciler
}

func New(cfg Config, sc *scraper.Scraper, fetcher *rss.Fetcher, rec reconcile.EpisodeReconciler) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		cfg:       cfg,
		scraper:   sc,
		fetcher:   fetcher,
		reconcile: rec,
	}
}

// Start registers the jobs and launches the cron runner.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.ScrapeSpec, s.runScrape); err != nil {
		return fmt.Errorf("registering scrape job: %w", err)
	}
	if _, err := s.cron.AddFunc(s.cfg.ReconcileSpec, s.runReconcile); err != nil {
		return fmt.Errorf("registering reconcile job: %w", err)
	}

	s.cron.Start()
	log.Printf("[INFO] Scheduler started: scrape %q, reconcile %q", s.cfg.ScrapeSpec, s.cfg.ReconcileSpec)
	return nil
}

// Stop halts the cron runner and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Printf("[INFO] Scheduler stopped")
}

// runScrape pulls the latest listing pages for every show. One show
// failing does not stop the others.
func (s *Scheduler) runScrape() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	for _, show := range catalog.All() {
		if _, err := s.scraper.Scrape(ctx, show, s.cfg.ScrapePages); err != nil {
			log.Printf("[ERROR] Scheduled scrape for %s: %v", show, err)
		}
	}
}

// runReconcile fetches the feed once and reconciles every show against it.
func (s *Scheduler) runReconcile() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	entries, err := s.fetcher.Fetch(ctx, s.cfg.FeedURL)
	if err != nil {
		log.Printf("[ERROR] Scheduled reconcile: %v", err)
		return
	}

	for _, show := range catalog.All() {
		updated, err := s.reconcile.Reconcile(ctx, show, entries, s.cfg.LookbackDays)
		if err != nil {
			log.Printf("[ERROR] Scheduled reconcile for %s: %v", show, err)
			continue
		}
		if updated > 0 {
			log.Printf("[INFO] Reconcile backfilled %d episodes for %s", updated, show)
		}
	}
}
