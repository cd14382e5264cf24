package entities

import "fmt"

// Suit represents a card suit

type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Suits lists the four suits in shoe-building order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Rank represents a card rank

type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Ranks lists the thirteen ranks in shoe-building order
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// Card represents a playing card. Rank and Suit never change once the card
// is created; FaceUp is flipped only when a hidden card is revealed.
type Card struct {
	Suit   Suit
	Rank   Rank
	FaceUp bool
}

// NewCard creates a new face-down card

func NewCard(suit Suit, rank Rank) Card {
	return Card{
		Suit: suit,
		Rank: rank,
	}
}

// String returns the string representation of the card, or a card back
// when it is face down

func (c Card) String() string {
	if !c.FaceUp {
		return "🂠"
	}
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// ParseRank converts user input such as "a", "10" or "k" into a Rank
func ParseRank(s string) (Rank, error) {
	switch s {
	case "A", "a", "1":
		return Ace, nil
	case "J", "j":
		return Jack, nil
	case "Q", "q":
		return Queen, nil
	case "K", "k":
		return King, nil
	case "T", "t":
		return Ten, nil
	}
	for _, r := range Ranks {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("invalid rank %q", s)
}
