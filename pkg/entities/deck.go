package entities

import (
	"math/rand"
)

// NewDeck creates a new deck of 52 face-down cards, one of each rank and suit
func NewDeck() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// NewMultiDeck concatenates n fresh decks, unshuffled
func NewMultiDeck(n int) []Card {
	cards := make([]Card, 0, 52*n)
	for i := 0; i < n; i++ {
		cards = append(cards, NewDeck()...)
	}
	return cards
}

// Shuffle performs an in-place Fisher–Yates shuffle using r
func Shuffle(cards []Card, r *rand.Rand) {
	r.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
