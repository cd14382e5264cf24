package blackjack

import "github.com/fadedpez/blackjack/pkg/entities"

// Phase is the round's state. A nil Phase means no round has been opened
// yet. Only PlayerTurn carries a turn pointer, so a turn exists exactly
// when the phase is PlayerTurn.
type Phase interface {
	Name() entities.Phase
	isPhase()
}

// Betting accepts stakes and seat changes
type Betting struct{}

// InitialDealing deals the opening cards one DealNext at a time. Step is
// the index of the next card in the deal plan.
type InitialDealing struct {
	Step int
}

// PlayerTurn lets exactly one seat act
type PlayerTurn struct {
	PlayerID int
}

// DealerTurn plays out the dealer hand once the hole card is showing
type DealerTurn struct {
	HoleRevealed bool
}

// EndState holds the settled results until the round is reset
type EndState struct {
	Results []Settlement
}

func (Betting) Name() entities.Phase        { return entities.PhaseBetting }
func (InitialDealing) Name() entities.Phase { return entities.PhaseInitialDealing }
func (PlayerTurn) Name() entities.Phase     { return entities.PhasePlayerTurn }
func (DealerTurn) Name() entities.Phase     { return entities.PhaseDealerTurn }
func (EndState) Name() entities.Phase       { return entities.PhaseEnd }

func (Betting) isPhase()        {}
func (InitialDealing) isPhase() {}
func (PlayerTurn) isPhase()     {}
func (DealerTurn) isPhase()     {}
func (EndState) isPhase()       {}

// PhaseName returns the exposed name of p, PhaseNone for a nil phase
func PhaseName(p Phase) entities.Phase {
	if p == nil {
		return entities.PhaseNone
	}
	return p.Name()
}
