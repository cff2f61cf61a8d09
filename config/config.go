package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"poolbot/api"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Remote betting-pool service
	APIBaseURL string
	APIToken   string
	APITimeout time.Duration

	// Database configuration (front-end-local state only)
	DatabaseURL string

	// Contribution quick-pick presets shown in the capture prompt
	QuickPicks []int64

	// Environment: "development", "production", or "test"
	Environment string
}

var (
	instance *Config
	once     sync.Once
)

// defaultQuickPicks are the stake presets offered when none are configured
var defaultQuickPicks = []int64{5, 10, 20, 50}

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		APIBaseURL: os.Getenv("POOL_API_URL"),
		APIToken:   os.Getenv("POOL_API_TOKEN"),
		APITimeout: api.DefaultTimeout,

		DatabaseURL: os.Getenv("DATABASE_URL"),

		QuickPicks: defaultQuickPicks,

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if timeout := os.Getenv("POOL_API_TIMEOUT_SECONDS"); timeout != "" {
		if parsed, err := strconv.Atoi(timeout); err == nil && parsed > 0 {
			config.APITimeout = time.Duration(parsed) * time.Second
		}
	}

	// Parse quick-pick presets, e.g. "5,10,20,50"
	if picks := os.Getenv("QUICK_PICKS"); picks != "" {
		var parsed []int64
		for _, part := range strings.Split(picks, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			value, err := strconv.ParseInt(part, 10, 64)
			if err != nil || value <= 0 {
				return nil, fmt.Errorf("invalid quick pick value %q", part)
			}
			parsed = append(parsed, value)
		}
		if len(parsed) > 0 {
			config.QuickPicks = parsed
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.APIBaseURL == "" {
			return nil, fmt.Errorf("POOL_API_URL is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}
