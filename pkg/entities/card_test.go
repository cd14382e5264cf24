package entities

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CardsTestSuite struct {
	suite.Suite
}

func TestCardsSuite(t *testing.T) {
	suite.Run(t, new(CardsTestSuite))
}

func (s *CardsTestSuite) TestCardString() {
	testCases := []struct {
		name     string
		card     Card
		expected string
	}{
		{
			name:     "ace of hearts",
			card:     Card{Suit: Hearts, Rank: Ace, FaceUp: true},
			expected: "A♥",
		},
		{
			name:     "ten of diamonds",
			card:     Card{Suit: Diamonds, Rank: Ten, FaceUp: true},
			expected: "10♦",
		},
		{
			name:     "face down king",
			card:     Card{Suit: Clubs, Rank: King},
			expected: "🂠",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.card.String())
		})
	}
}

func (s *CardsTestSuite) TestNewDeck() {
	deck := NewDeck()

	s.Len(deck, 52, "Deck should have 52 cards")

	suits := map[Suit]int{}
	ranks := map[Rank]int{}
	for _, card := range deck {
		suits[card.Suit]++
		ranks[card.Rank]++
		s.False(card.FaceUp, "Fresh cards are face down")
	}

	s.Len(suits, 4)
	for suit, count := range suits {
		s.Equal(13, count, "Each suit should have 13 cards: %s", suit)
	}
	s.Len(ranks, 13)
	for rank, count := range ranks {
		s.Equal(4, count, "Each rank should have 4 cards: %s", rank)
	}
}

func (s *CardsTestSuite) TestNewMultiDeck() {
	cards := NewMultiDeck(6)
	s.Len(cards, 312)

	counts := make(map[Card]int)
	for _, c := range cards {
		counts[c]++
	}
	s.Len(counts, 52)
	for card, count := range counts {
		s.Equal(6, count, "Card %v should appear once per deck", card)
	}
}

func (s *CardsTestSuite) TestShuffle() {
	deck1 := NewDeck()
	deck2 := NewDeck()

	Shuffle(deck1, rand.New(rand.NewSource(42)))

	s.NotEqual(deck2, deck1, "Shuffled deck should be in different order than original")
	s.ElementsMatch(deck2, deck1, "Shuffling must not add or lose cards")
}

func (s *CardsTestSuite) TestParseRank() {
	for _, r := range Ranks {
		got, err := ParseRank(string(r))
		s.NoError(err)
		s.Equal(r, got)
	}

	got, err := ParseRank("k")
	s.NoError(err)
	s.Equal(King, got)

	_, err = ParseRank("11")
	s.Error(err)
}

func (s *CardsTestSuite) TestOutcomeIsWin() {
	s.True(OutcomeWin.IsWin())
	s.True(OutcomeBlackjack.IsWin())
	s.False(OutcomePush.IsWin())
	s.False(OutcomeLose.IsWin())
}

func (s *CardsTestSuite) TestStatisticsRates() {
	stats := &PlayerStatistics{HandsPlayed: 4, Wins: 1, Decisions: 10, Deviations: 2}
	s.InDelta(25.0, stats.WinRate(), 0.001)
	s.InDelta(80.0, stats.Accuracy(), 0.001)

	empty := &PlayerStatistics{}
	s.Zero(empty.WinRate())
	s.Equal(100.0, empty.Accuracy())
}
