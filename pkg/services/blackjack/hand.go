package blackjack

import (
	"strings"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
)

// Hand is an ordered, append-only set of cards. The only in-place change
// allowed is revealing a face-down card.
type Hand struct {
	Cards []entities.Card
}

// NewHand creates a new empty hand
func NewHand() *Hand {
	return &Hand{
		Cards: make([]entities.Card, 0, 4),
	}
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card entities.Card) {
	h.Cards = append(h.Cards, card)
}

// Reveal turns the card at index face up
func (h *Hand) Reveal(index int) error {
	if index < 0 || index >= len(h.Cards) {
		return types.Errorf(types.ErrInvalidAction, "no card at position %d", index)
	}
	h.Cards[index].FaceUp = true
	return nil
}

// Len returns the number of cards held, face-down included
func (h *Hand) Len() int {
	return len(h.Cards)
}

// Value returns the best possible score for the face-up cards
func (h *Hand) Value() int {
	return Total(h.Cards)
}

// Clear empties the hand and returns how many cards it held
func (h *Hand) Clear() int {
	n := len(h.Cards)
	h.Cards = make([]entities.Card, 0, 4)
	return n
}

func (h *Hand) clone() *Hand {
	cards := make([]entities.Card, len(h.Cards))
	copy(cards, h.Cards)
	return &Hand{Cards: cards}
}

// String renders the hand as comma-separated cards
func (h *Hand) String() string {
	parts := make([]string, len(h.Cards))
	for i, card := range h.Cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, ", ")
}

// Player is one seat at the table. Chips is the unreserved balance and
// Stake is the amount reserved for the current round.
type Player struct {
	ID      int
	Hand    *Hand
	Chips   int64
	Stake   int64
	Playing bool

	// BaseStake is the standing bet, restored after a double settles
	BaseStake int64
	Doubled   bool
}

// NewPlayer creates a seat with a fresh bankroll and no stake
func NewPlayer(id int, chips int64) *Player {
	return &Player{
		ID:    id,
		Hand:  NewHand(),
		Chips: chips,
	}
}

// setStake moves chips between the balance and the reserved stake so the
// seat is only ever charged the difference
func (p *Player) setStake(amount int64) error {
	if amount < 0 {
		return types.Errorf(types.ErrInvalidStake, "stake cannot be negative (got %d)", amount)
	}
	available := p.Chips + p.Stake
	if amount > available {
		amount = available
	}
	p.Chips -= amount - p.Stake
	p.Stake = amount
	p.BaseStake = amount
	return nil
}

// CanDouble reports whether doubling is legal right now
func (p *Player) CanDouble() bool {
	return p.Playing && !p.Doubled && p.Hand.Len() == 2 && p.Chips >= p.Stake
}

func (p *Player) clone() *Player {
	c := *p
	c.Hand = p.Hand.clone()
	return &c
}
