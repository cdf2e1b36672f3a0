package config

import (
	"fmt"
	"os"
	"sync"
)

// DefaultPrefix is the command prefix used for guilds that never set one.
const DefaultPrefix = "pinbot "

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string

	// Database configuration
	DatabaseURL string

	// Bot configuration
	DefaultPrefix string

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

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
		DiscordToken:  os.Getenv("DISCORD_TOKEN"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DefaultPrefix: DefaultPrefix,
		Environment:   os.Getenv("ENVIRONMENT"),
	}

	if prefix := os.Getenv("DEFAULT_PREFIX"); prefix != "" {
		config.DefaultPrefix = prefix
	}

	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}
