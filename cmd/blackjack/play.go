package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/fadedpez/blackjack/pkg/table"
)

type PlayCmd struct {
	Rounds      int           `default:"10" help:"Number of rounds to play"`
	Players     int           `default:"${players}" help:"Seats at the table (1-3)"`
	Decks       int           `default:"${decks}" help:"Decks in the shoe"`
	ReshuffleAt int           `default:"${reshuffle_at}" help:"Rebuild the shoe once this many cards or fewer remain"`
	Chips       int64         `default:"${starting_chips}" help:"Starting chips per seat"`
	Stake       int64         `default:"${stake_step}" help:"Stake every seat plays"`
	Interval    time.Duration `default:"${deal_interval}" help:"Pause between dealing steps"`
	Seed        int64         `help:"Shuffle seed (0 for time-based)"`
}

func (c *PlayCmd) Run(logger *logging.Logger) error {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	tbl, err := table.New(table.Options{
		Round: blackjack.Options{
			Seats:         c.Players,
			Decks:         c.Decks,
			ReshuffleAt:   c.ReshuffleAt,
			StartingChips: c.Chips,
			Rand:          rand.New(rand.NewSource(seed)),
		},
		Interval: c.Interval,
		Logger:   logger,
		Observer: boardObserver(logger),
	})
	if err != nil {
		return err
	}
	logger.Info("Table %s ready: %d seats, %d decks, seed %d", tbl.ID(), c.Players, c.Decks, seed)

	for _, seat := range tbl.Snapshot().Players {
		if _, err := tbl.Dispatch(blackjack.SetStake{PlayerID: seat.ID, Amount: c.Stake}); err != nil {
			return err
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	for i := 1; i <= c.Rounds; i++ {
		results, err := tbl.PlayRound(ctx, nil)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info("Interrupted after %d rounds", i-1)
				break
			}
			if types.IsGameError(err, types.ErrInvalidAction) {
				logger.Warn("Stopping: %v", err)
				break
			}
			logger.LogError(err)
			return err
		}
		logger.Info("Round %d settled %d seats", i, len(results))
	}

	fmt.Println(renderStatistics(tbl.Statistics()))
	for _, rank := range tbl.Standings() {
		if rank.IsTopWinner {
			logger.Info("Top winner: seat %d, net %+d (%.0f%% of staked)", rank.PlayerID, rank.NetWinnings, rank.ProfitRate*100)
		}
	}
	return nil
}

// boardObserver logs the board after every action. Rendering is skipped
// entirely unless the logger emits debug lines.
func boardObserver(logger *logging.Logger) table.Observer {
	return table.ObserverFunc(func(snap table.Snapshot) {
		if logger.Level() > logging.DEBUG {
			return
		}
		logger.Debug("%s", render(snap))
	})
}
