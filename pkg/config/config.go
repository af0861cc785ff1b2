package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("TMA")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		return fmt.Errorf("database path must be configured")
	}

	if viper.GetInt("reconcile.lookback_days") <= 0 {
		viper.Set("reconcile.lookback_days", 3)
	}

	if viper.GetInt("search.default_per_page") <= 0 {
		viper.Set("search.default_per_page", 20)
	}

	// JWT secret must not keep a placeholder value in production
	env := viper.GetString("environment")
	secret := viper.GetString("auth.jwt_secret")
	if secret == "" || secret == "changeme" {
		if env == "production" || env == "prod" {
			return fmt.Errorf("auth.jwt_secret must be set in production")
		}
		fmt.Println("Warning: auth.jwt_secret is using a placeholder value - this is insecure!")
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/TMASTL.db")
	viper.SetDefault("database.verbose", false)

	// Scraper defaults
	viper.SetDefault("scraper.base_url", "https://www.tmastl.com")
	viper.SetDefault("scraper.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:94.0) Gecko/20100101 Firefox/94.0")
	viper.SetDefault("scraper.page_delay", 3*time.Second)
	viper.SetDefault("scraper.pages", 1)

	// Reconcile defaults
	viper.SetDefault("reconcile.feed_url", "https://feeds.megaphone.fm/tmastl")
	viper.SetDefault("reconcile.lookback_days", 3)

	// Scheduler defaults
	viper.SetDefault("scheduler.enabled", true)
	viper.SetDefault("scheduler.scrape_spec", "0 6 * * *")
	viper.SetDefault("scheduler.reconcile_spec", "30 6 * * *")

	// Search defaults
	viper.SetDefault("search.default_per_page", 20)
	viper.SetDefault("search.max_per_page", 100)

	// Auth defaults
	viper.SetDefault("auth.jwt_secret", "changeme")
	viper.SetDefault("auth.token_ttl", 24*time.Hour)

	// Spotify defaults
	viper.SetDefault("spotify.client_id", "")
	viper.SetDefault("spotify.client_secret", "")
	viper.SetDefault("spotify.api_url", "https://api.spotify.com/v1")
	viper.SetDefault("spotify.auth_url", "https://accounts.spotify.com/api/token")

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
}
