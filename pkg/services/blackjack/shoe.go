package blackjack

import (
	"math/rand"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
)

// Shoe is the pool of undealt cards from one or more decks
type Shoe struct {
	cards       []entities.Card
	discarded   int
	decks       int
	reshuffleAt int
	reshuffles  int

	// seed for the next shuffle, carried as a value so a cloned shoe
	// reshuffles exactly like the shoe it was copied from
	seed int64
}

// NewShoe creates a shuffled shoe of decks × 52 cards. Once a deal leaves
// reshuffleAt cards or fewer, the shoe is rebuilt from scratch. rng only
// seeds the shoe; it is not kept.
func NewShoe(decks, reshuffleAt int, rng *rand.Rand) *Shoe {
	s := &Shoe{
		decks:       decks,
		reshuffleAt: reshuffleAt,
		seed:        rng.Int63(),
	}
	s.regenerate()
	return s
}

// NewStackedShoe creates a shoe that deals cards in exactly the given
// order, for replays and tests. Reshuffling still follows reshuffleAt.
func NewStackedShoe(cards []entities.Card, decks, reshuffleAt int, rng *rand.Rand) *Shoe {
	stacked := make([]entities.Card, len(cards))
	copy(stacked, cards)
	return &Shoe{
		cards:       stacked,
		decks:       decks,
		reshuffleAt: reshuffleAt,
		seed:        rng.Int63(),
	}
}

func (s *Shoe) regenerate() {
	rng := rand.New(rand.NewSource(s.seed))
	s.cards = entities.NewMultiDeck(s.decks)
	entities.Shuffle(s.cards, rng)
	s.seed = rng.Int63()
	s.discarded = 0
}

// Deal removes the front card and returns it with the requested facing
func (s *Shoe) Deal(faceUp bool) (entities.Card, error) {
	if len(s.cards) == 0 {
		return entities.Card{}, types.NewGameError(types.ErrEmptyShoe, "no cards left in the shoe")
	}

	card := s.cards[0]
	s.cards = s.cards[1:]
	card.FaceUp = faceUp

	// Hard cutover: discards are not merged back in
	if len(s.cards) <= s.reshuffleAt {
		s.regenerate()
		s.reshuffles++
	}

	return card, nil
}

// Remaining returns the number of undealt cards
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Discarded returns the number of cards discarded since the last reshuffle
func (s *Shoe) Discarded() int {
	return s.discarded
}

// Discard adds n used cards to the discard count
func (s *Shoe) Discard(n int) {
	s.discarded += n
}

// Reshuffles counts how many times the shoe has been rebuilt
func (s *Shoe) Reshuffles() int {
	return s.reshuffles
}

// Size is the card count of a full shoe
func (s *Shoe) Size() int {
	return 52 * s.decks
}

// clone copies the undealt cards and the next shuffle seed
func (s *Shoe) clone() *Shoe {
	c := *s
	c.cards = make([]entities.Card, len(s.cards))
	copy(c.cards, s.cards)
	return &c
}
