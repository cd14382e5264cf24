package blackjack

import (
	"github.com/fadedpez/blackjack/internal/types"
)

// Action is one discrete input to the round. Every action either applies
// completely or is rejected with the round left as it was.
type Action interface {
	isAction()
}

// Betting-phase actions
type (
	OpenBetting struct{}
	SetStake    struct {
		PlayerID int
		Amount   int64
	}
	AddPlayer               struct{}
	RemovePlayer            struct{}
	AdvanceToInitialDealing struct{}
)

// Dealing and player-turn actions
type (
	DealNext struct{}
	Hit      struct{ PlayerID int }
	Stand    struct{ PlayerID int }
	Double   struct{ PlayerID int }
)

// Dealer and settlement actions
type (
	FlipDealerHoleCard struct{}
	ResolveDealerStep  struct{}
	// PlayDealer flips the hole card if needed and plays the dealer hand to
	// settlement in one call
	PlayDealer struct{}
	ResetRound struct{}
)

func (OpenBetting) isAction()             {}
func (SetStake) isAction()                {}
func (AddPlayer) isAction()               {}
func (RemovePlayer) isAction()            {}
func (AdvanceToInitialDealing) isAction() {}
func (DealNext) isAction()                {}
func (Hit) isAction()                     {}
func (Stand) isAction()                   {}
func (Double) isAction()                  {}
func (FlipDealerHoleCard) isAction()      {}
func (ResolveDealerStep) isAction()       {}
func (PlayDealer) isAction()              {}
func (ResetRound) isAction()              {}

// Move is a player decision as named by basic strategy
type Move string

const (
	MoveNone   Move = ""
	MoveHit    Move = "hit"
	MoveStand  Move = "stand"
	MoveDouble Move = "double"
	MoveSplit  Move = "split"
)

// ActionFor turns a move into the action for a seat. Split has no action
// because the engine does not split hands.
func ActionFor(move Move, playerID int) (Action, error) {
	switch move {
	case MoveHit:
		return Hit{PlayerID: playerID}, nil
	case MoveStand:
		return Stand{PlayerID: playerID}, nil
	case MoveDouble:
		return Double{PlayerID: playerID}, nil
	default:
		return nil, types.Errorf(types.ErrInvalidAction, "move %q has no engine action", move)
	}
}

// MoveOf reports the move a player action represents, if any
func MoveOf(a Action) (Move, int, bool) {
	switch act := a.(type) {
	case Hit:
		return MoveHit, act.PlayerID, true
	case Stand:
		return MoveStand, act.PlayerID, true
	case Double:
		return MoveDouble, act.PlayerID, true
	default:
		return MoveNone, 0, false
	}
}
