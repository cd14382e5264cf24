package table

import (
	"context"
	"time"

	"github.com/coder/quartz"
)

// pacer spaces out the steps of a round so a renderer can show each card
// as it lands. A zero interval never waits.
type pacer struct {
	clock    quartz.Clock
	interval time.Duration
}

// wait blocks for one interval or until ctx is done
func (p pacer) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.interval <= 0 {
		return nil
	}

	timer := p.clock.NewTimer(p.interval, "pacer", "wait")
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
