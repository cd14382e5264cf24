package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/fadedpez/blackjack/internal/config"
	"github.com/fadedpez/blackjack/internal/logging"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `default:"${log_level}" env:"LOG_LEVEL" help:"Log level (debug|info|warn|error)"`

	Play   PlayCmd   `cmd:"" help:"Play paced rounds with basic strategy bots in every seat"`
	Advise AdviseCmd `cmd:"" help:"Grade one decision against basic strategy"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-table blackjack round engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":        version,
			"log_level":      cfg.LogLevel,
			"players":        strconv.Itoa(cfg.Players),
			"decks":          strconv.Itoa(cfg.Decks),
			"reshuffle_at":   strconv.Itoa(cfg.ReshuffleAt),
			"starting_chips": strconv.FormatInt(cfg.StartingChips, 10),
			"stake_step":     strconv.FormatInt(cfg.StakeStep, 10),
			"deal_interval":  cfg.DealInterval.String(),
		},
	)

	logger := logging.NewLogger(logging.ParseLevel(cli.LogLevel))
	if cfg.IsDevelopment() {
		logger.Debug("Loaded config: %+v", *cfg)
	}

	err = ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
