package table

import (
	"context"

	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/fadedpez/blackjack/pkg/services/strategy"
)

// Turn is what a decider sees when it is a seat's turn to act
type Turn struct {
	Seat      blackjack.PlayerView
	Dealer    []entities.Card
	CanDouble bool
}

// Decider chooses a move for a seat. Returning an error abandons the round
// run; the round itself stays valid.
type Decider interface {
	Decide(ctx context.Context, turn Turn) (blackjack.Move, error)
}

// DeciderFunc adapts a function to Decider
type DeciderFunc func(ctx context.Context, turn Turn) (blackjack.Move, error)

// Decide implements Decider
func (f DeciderFunc) Decide(ctx context.Context, turn Turn) (blackjack.Move, error) {
	return f(ctx, turn)
}

// StrategyBot always plays the basic strategy move the engine can accept
type StrategyBot struct{}

// Decide implements Decider
func (StrategyBot) Decide(_ context.Context, turn Turn) (blackjack.Move, error) {
	return strategy.Playable(turn.Seat.Cards, turn.Dealer, turn.CanDouble), nil
}

// FixedBot plays the same move every turn
type FixedBot blackjack.Move

// Decide implements Decider
func (b FixedBot) Decide(context.Context, Turn) (blackjack.Move, error) {
	return blackjack.Move(b), nil
}
