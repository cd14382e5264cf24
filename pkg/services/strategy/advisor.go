// Package strategy grades player decisions against basic strategy charts
// for a six-deck, dealer-hits-soft-17 game.
package strategy

import (
	"fmt"

	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
)

// Advice is the verdict on one decision. Optimal is MoveNone when the hand
// could not be evaluated.
type Advice struct {
	Suboptimal bool
	Optimal    blackjack.Move
	Reason     string
}

// classification is how a hand is looked up in the charts
type classification struct {
	row  chartRow
	ok   bool
	name string
}

// Evaluate grades chosen against the chart play for the player's face-up
// cards and the dealer's first face-up card
func Evaluate(player, dealer []entities.Card, chosen blackjack.Move) Advice {
	upCard, ok := dealerUpCard(dealer)
	if !ok {
		return Advice{Reason: "Cannot evaluate without dealer up card"}
	}

	total := blackjack.Total(player)
	if total > 21 {
		return Advice{Reason: "Hand is already busted"}
	}
	if blackjack.HasBlackjack(player) {
		return Advice{Optimal: stand, Reason: "Blackjack"}
	}

	class := classify(player, total, true)
	if !class.ok {
		return Advice{Reason: fmt.Sprintf("No chart entry for %s", class.name)}
	}

	optimal := class.row.against(upCard)
	// Doubling is only possible on the first two cards
	if optimal == double && len(player) > 2 {
		optimal = hit
	}

	if chosen != optimal {
		return Advice{
			Suboptimal: true,
			Optimal:    optimal,
			Reason:     fmt.Sprintf("%s vs dealer %d: should %s, not %s", class.name, upCard, optimal, chosen),
		}
	}
	return Advice{Optimal: optimal}
}

// Optimal returns the chart play, or MoveNone when there is none
func Optimal(player, dealer []entities.Card) blackjack.Move {
	return Evaluate(player, dealer, blackjack.MoveNone).Optimal
}

// Playable narrows the chart play to a move the engine accepts: a split
// is replayed as the hand's total, and a double the seat cannot afford
// becomes a hit. Hands that cannot be evaluated stand.
func Playable(player, dealer []entities.Card, canDouble bool) blackjack.Move {
	move := Optimal(player, dealer)

	if move == split {
		upCard, _ := dealerUpCard(dealer)
		if class := classify(player, blackjack.Total(player), false); class.ok {
			move = class.row.against(upCard)
		} else {
			move = hit
		}
	}

	switch move {
	case double:
		if !canDouble {
			return hit
		}
		return double
	case hit:
		return hit
	default:
		return stand
	}
}

func classify(player []entities.Card, total int, pairs bool) classification {
	if pairs {
		if rank, ok := pairRank(player); ok {
			row, found := pairChart[rank]
			return classification{row: row, ok: found, name: fmt.Sprintf("pair of %ss", rank)}
		}
	}

	if blackjack.IsSoft(player) {
		row, found := softChart[total]
		return classification{row: row, ok: found, name: fmt.Sprintf("soft %d", total)}
	}

	lookup := total
	if lookup < 8 {
		lookup = 8
	}
	row, found := hardChart[lookup]
	return classification{row: row, ok: found, name: fmt.Sprintf("hard %d", total)}
}

// dealerUpCard returns the value of the dealer's first face-up card
func dealerUpCard(dealer []entities.Card) (int, bool) {
	for _, c := range dealer {
		if c.FaceUp {
			return blackjack.CardValue(c.Rank), true
		}
	}
	return 0, false
}

// pairRank reports the rank to look up when the hand is exactly two
// face-up cards of equal value
func pairRank(cards []entities.Card) (entities.Rank, bool) {
	if len(cards) != 2 || !cards[0].FaceUp || !cards[1].FaceUp {
		return "", false
	}
	if blackjack.CardValue(cards[0].Rank) != blackjack.CardValue(cards[1].Rank) {
		return "", false
	}
	return cards[0].Rank, true
}
