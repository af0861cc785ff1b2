package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string          `mapstructure:"environment"`
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	Scraper      ScraperConfig   `mapstructure:"scraper"`
	Reconcile    ReconcileConfig `mapstructure:"reconcile"`
	Scheduler    SchedulerConfig `mapstructure:"scheduler"`
	Search       SearchConfig    `mapstructure:"search"`
	Auth         AuthConfig      `mapstructure:"auth"`
	Spotify      SpotifyConfig   `mapstructure:"spotify"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// ScraperConfig contains episode catalog scraper settings
type ScraperConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	PageDelay time.Duration `mapstructure:"page_delay"`
	Pages     int           `mapstructure:"pages"`
}

// ReconcileConfig contains RSS reconciliation settings
type ReconcileConfig struct {
	FeedURL      string `mapstructure:"feed_url"`
	LookbackDays int    `mapstructure:"lookback_days"`
}

// SchedulerConfig contains cron job settings
type SchedulerConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	ScrapeSpec    string `mapstructure:"scrape_spec"`
	ReconcileSpec string `mapstructure:"reconcile_spec"`
}

// SearchConfig contains search pagination settings
type SearchConfig struct {
	DefaultPerPage int `mapstructure:"default_per_page"`
	MaxPerPage     int `mapstructure:"max_per_page"`
}

// AuthConfig contains user authentication settings
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// SpotifyConfig contains Spotify API settings
type SpotifyConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	APIURL       string `mapstructure:"api_url"`
	AuthURL      string `mapstructure:"auth_url"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
