package blackjack

import (
	"strconv"

	"github.com/fadedpez/blackjack/pkg/entities"
)

const (
	DefaultDecks       = 6   // Standard number of decks in the shoe
	DefaultReshuffleAt = 120 // Reshuffle once 120 cards or fewer remain
	DefaultChips       = 300 // Bankroll each new seat starts with
	MaxPlayers         = 3
	MinPlayers         = 1

	// Index of the dealer's face-down card within the dealer hand
	holeCardIndex = 1
)

// CardValue returns the blackjack value of a rank with an Ace counted as 11
func CardValue(rank entities.Rank) int {
	switch rank {
	case entities.Ace:
		return 11
	case entities.Jack, entities.Queen, entities.King:
		return 10
	default:
		val, _ := strconv.Atoi(string(rank))
		return val
	}
}

func IsAce(card entities.Card) bool {
	return card.Rank == entities.Ace
}

// hardTotal sums face-up cards with every Ace as 1 and reports how many
// face-up Aces there were
func hardTotal(cards []entities.Card) (int, int) {
	score := 0
	aces := 0

	for _, card := range cards {
		if !card.FaceUp {
			continue
		}
		if IsAce(card) {
			aces++
			score++
		} else {
			score += CardValue(card.Rank)
		}
	}

	return score, aces
}

// Total returns the best blackjack total of the face-up cards. Face-down
// cards count as 0 until revealed. At most one Ace is ever worth 11.
func Total(cards []entities.Card) int {
	score, aces := hardTotal(cards)
	if aces > 0 && score+10 <= 21 {
		score += 10
	}
	return score
}

// IsSoft reports whether an Ace is currently being counted as 11
func IsSoft(cards []entities.Card) bool {
	score, aces := hardTotal(cards)
	return aces > 0 && score+10 <= 21
}

// HasBlackjack is true only for 21 on the opening two cards
func HasBlackjack(cards []entities.Card) bool {
	return len(cards) == 2 && Total(cards) == 21
}

// IsSoft17 is true when a face-up Ace counted as 11 makes exactly 17
func IsSoft17(cards []entities.Card) bool {
	score, aces := hardTotal(cards)
	return aces > 0 && score+10 == 17
}

// IsBust checks if a hand exceeds 21
func IsBust(cards []entities.Card) bool {
	return Total(cards) > 21
}

// ShouldDealerHit is the house rule: draw below 17 and on soft 17
func ShouldDealerHit(cards []entities.Card) bool {
	total := Total(cards)
	return total < 17 || (total == 17 && IsSoft17(cards))
}
