package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPlayers       = 3
	DefaultDecks         = 6
	DefaultReshuffleAt   = 120
	DefaultStartingChips = 300
	DefaultStakeStep     = 15
	DefaultDealInterval  = 300 * time.Millisecond

	MaxPlayers = 3
)

// Config holds all configuration for the application
type Config struct {
	// Table configuration
	Players       int
	Decks         int
	ReshuffleAt   int // reshuffle once this many cards or fewer remain
	StartingChips int64
	StakeStep     int64

	// Pacing between engine steps, owned by the driver
	DealInterval time.Duration

	LogLevel    string
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
	}

	var err error
	if cfg.Players, err = getEnvInt("NUM_PLAYERS", DefaultPlayers); err != nil {
		return nil, err
	}
	if cfg.Decks, err = getEnvInt("NUM_DECKS", DefaultDecks); err != nil {
		return nil, err
	}
	if cfg.ReshuffleAt, err = getEnvInt("RESHUFFLE_AT", DefaultReshuffleAt); err != nil {
		return nil, err
	}
	chips, err := getEnvInt("STARTING_CHIPS", DefaultStartingChips)
	if err != nil {
		return nil, err
	}
	cfg.StartingChips = int64(chips)
	step, err := getEnvInt("STAKE_STEP", DefaultStakeStep)
	if err != nil {
		return nil, err
	}
	cfg.StakeStep = int64(step)
	if cfg.DealInterval, err = getEnvDuration("DEAL_INTERVAL", DefaultDealInterval); err != nil {
		return nil, err
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Players:       DefaultPlayers,
		Decks:         DefaultDecks,
		ReshuffleAt:   DefaultReshuffleAt,
		StartingChips: DefaultStartingChips,
		StakeStep:     DefaultStakeStep,
		DealInterval:  DefaultDealInterval,
		LogLevel:      "info",
		Environment:   "development",
	}
}

// Validate checks the table can actually be dealt with these values
func (c *Config) Validate() error {
	if c.Players < 1 || c.Players > MaxPlayers {
		return fmt.Errorf("NUM_PLAYERS must be between 1 and %d, got %d", MaxPlayers, c.Players)
	}
	if c.Decks < 1 {
		return fmt.Errorf("NUM_DECKS must be at least 1, got %d", c.Decks)
	}
	if c.ReshuffleAt < 0 || c.ReshuffleAt >= 52*c.Decks {
		return fmt.Errorf("RESHUFFLE_AT must be in [0, %d), got %d", 52*c.Decks, c.ReshuffleAt)
	}
	if c.StartingChips <= 0 {
		return fmt.Errorf("STARTING_CHIPS must be positive, got %d", c.StartingChips)
	}
	if c.StakeStep <= 0 {
		return fmt.Errorf("STAKE_STEP must be positive, got %d", c.StakeStep)
	}
	if c.DealInterval < 0 {
		return fmt.Errorf("DEAL_INTERVAL cannot be negative")
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}
