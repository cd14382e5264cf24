package entities

// Phase names the round's current state as exposed to renderers
type Phase string

const (
	PhaseNone           Phase = ""
	PhaseBetting        Phase = "BETTING"
	PhaseInitialDealing Phase = "INITIAL_DEALING"
	PhasePlayerTurn     Phase = "PLAYER_TURN"
	PhaseDealerTurn     Phase = "DEALER_TURN"
	PhaseEnd            Phase = "END"
)

// Outcome represents how a seat's hand settled against the dealer
type Outcome string

const (
	OutcomeWin       Outcome = "WIN"
	OutcomeLose      Outcome = "LOSE"
	OutcomePush      Outcome = "PUSH"
	OutcomeBlackjack Outcome = "BLACKJACK"
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	return string(o)
}

// IsWin returns true if this outcome paid the seat
func (o Outcome) IsWin() bool {
	return o == OutcomeWin || o == OutcomeBlackjack
}
