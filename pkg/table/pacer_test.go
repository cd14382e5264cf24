package table

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
)

func TestPacerZeroIntervalNeverWaits(t *testing.T) {
	p := pacer{clock: quartz.NewMock(t)}
	assert.NoError(t, p.wait(context.Background()))
}

func TestPacerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := pacer{clock: quartz.NewMock(t), interval: time.Second}
	assert.ErrorIs(t, p.wait(ctx), context.Canceled)
}

func TestPacerWaitsForClock(t *testing.T) {
	clock := quartz.NewMock(t)
	p := pacer{clock: clock, interval: time.Second}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- p.wait(ctx) }()

	for {
		select {
		case err := <-done:
			assert.NoError(t, err)
			return
		case <-ctx.Done():
			t.Fatal("pacer never returned")
		default:
			clock.Advance(time.Second).MustWait(ctx)
			time.Sleep(time.Millisecond)
		}
	}
}
