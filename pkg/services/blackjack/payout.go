package blackjack

import (
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/shopspring/decimal"
)

var blackjackPayout = decimal.RequireFromString("1.5")

// Settlement is the result of resolving one playing seat against the dealer
type Settlement struct {
	PlayerID  int
	Outcome   entities.Outcome
	Total     int
	Stake     int64 // stake that was at risk, doubled if the seat doubled
	Net       int64 // chips won (positive), lost (negative), or 0 on a push
	Chips     int64 // unreserved balance after settling
	NextStake int64 // standing bet reserved for the next round
}

// Winnings returns what a winning stake earns on top of itself. Blackjack
// pays 3:2, rounded down to a whole chip.
func Winnings(stake int64, natural bool) int64 {
	if !natural {
		return stake
	}
	return decimal.NewFromInt(stake).Mul(blackjackPayout).Floor().IntPart()
}

// Outcome decides how a player hand fares against the dealer hand
func Outcome(player, dealer []entities.Card) entities.Outcome {
	playerTotal := Total(player)
	dealerTotal := Total(dealer)
	playerBJ := HasBlackjack(player)

	switch {
	case HasBlackjack(dealer):
		if playerBJ {
			return entities.OutcomePush
		}
		return entities.OutcomeLose
	case playerTotal > 21:
		return entities.OutcomeLose
	case dealerTotal > 21:
		return win(playerBJ)
	case playerTotal == dealerTotal:
		// The dealer has no natural here, so a natural still wins
		if playerBJ {
			return entities.OutcomeBlackjack
		}
		return entities.OutcomePush
	case playerTotal > dealerTotal:
		return win(playerBJ)
	default:
		return entities.OutcomeLose
	}
}

func win(natural bool) entities.Outcome {
	if natural {
		return entities.OutcomeBlackjack
	}
	return entities.OutcomeWin
}

// Resolve settles every playing seat against the dealer's cards. It does
// not modify its arguments; apply the returned settlements to update seats.
// Seats that are not playing are skipped.
func Resolve(players []Player, dealer []entities.Card) []Settlement {
	settlements := make([]Settlement, 0, len(players))

	for _, p := range players {
		if !p.Playing {
			continue
		}

		outcome := Outcome(p.Hand.Cards, dealer)

		// The stake was reserved when it was placed, so a win hands it back
		// along with the winnings and a loss simply keeps it.
		var returned, net int64
		switch outcome {
		case entities.OutcomeWin, entities.OutcomeBlackjack:
			won := Winnings(p.Stake, outcome == entities.OutcomeBlackjack)
			returned = p.Stake + won
			net = won
		case entities.OutcomePush:
			returned = p.Stake
		case entities.OutcomeLose:
			net = -p.Stake
		}

		chips := p.Chips + returned
		next := p.BaseStake
		if next > chips {
			next = chips
		}
		chips -= next

		settlements = append(settlements, Settlement{
			PlayerID:  p.ID,
			Outcome:   outcome,
			Total:     Total(p.Hand.Cards),
			Stake:     p.Stake,
			Net:       net,
			Chips:     chips,
			NextStake: next,
		})
	}

	return settlements
}
