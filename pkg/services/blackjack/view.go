package blackjack

import "github.com/fadedpez/blackjack/pkg/entities"

// PlayerView is the read-only state of one seat
type PlayerView struct {
	ID      int
	Cards   []entities.Card
	Total   int
	Chips   int64
	Stake   int64
	Playing bool

	// CanDouble is true when a double would be accepted on the seat's turn
	CanDouble bool
}

// View is everything a driver may read from a round. Face-down cards are
// included but never counted in a total.
type View struct {
	RoundID       string
	Phase         entities.Phase
	TurnPlayerID  int
	HasTurn       bool
	Players       []PlayerView
	DealerCards   []entities.Card
	DealerTotal   int
	ShoeRemaining int
	ShoeDiscarded int
	Results       []Settlement
}

// View returns a copy of the exposed state, seats in ascending id order
func (r *Round) View() View {
	v := View{
		RoundID:       r.ID,
		Phase:         PhaseName(r.Phase),
		DealerCards:   r.Dealer.clone().Cards,
		DealerTotal:   r.Dealer.Value(),
		ShoeRemaining: r.Shoe.Remaining(),
		ShoeDiscarded: r.Shoe.Discarded(),
		Players:       make([]PlayerView, 0, len(r.Players)),
	}
	v.TurnPlayerID, v.HasTurn = r.TurnPlayerID()

	for _, id := range r.PlayerIDs() {
		p := r.Players[id]
		v.Players = append(v.Players, PlayerView{
			ID:      p.ID,
			Cards:   p.Hand.clone().Cards,
			Total:   p.Hand.Value(),
			Chips:   p.Chips,
			Stake:   p.Stake,
			Playing: p.Playing,

			CanDouble: p.CanDouble(),
		})
	}

	if results := r.Results(); results != nil {
		v.Results = make([]Settlement, len(results))
		copy(v.Results, results)
	}
	return v
}

// Seat returns the view of one seat
func (v View) Seat(id int) (PlayerView, bool) {
	for _, p := range v.Players {
		if p.ID == id {
			return p, true
		}
	}
	return PlayerView{}, false
}
