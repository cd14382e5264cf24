package blackjack

import (
	"testing"

	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seat builds a playing seat whose stake is already reserved
func seat(id int, chips, stake int64, cards []entities.Card) Player {
	p := NewPlayer(id, chips+stake)
	_ = p.setStake(stake)
	p.Playing = stake > 0
	for _, c := range cards {
		p.Hand.AddCard(c)
	}
	return *p
}

func TestWinnings(t *testing.T) {
	tests := []struct {
		stake   int64
		natural bool
		want    int64
	}{
		{15, false, 15},
		{100, true, 150},
		{15, true, 22},
		{25, true, 37},
		{1, true, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Winnings(tt.stake, tt.natural), "stake %d natural %v", tt.stake, tt.natural)
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name   string
		player []entities.Card
		dealer []entities.Card
		want   entities.Outcome
	}{
		{"higher total wins", faceUp(entities.King, entities.Nine), faceUp(entities.King, entities.Eight), entities.OutcomeWin},
		{"lower total loses", faceUp(entities.King, entities.Seven), faceUp(entities.King, entities.Eight), entities.OutcomeLose},
		{"equal totals push", faceUp(entities.King, entities.Eight), faceUp(entities.Nine, entities.Nine), entities.OutcomePush},
		{"player bust loses to dealer bust", faceUp(entities.King, entities.Six, entities.Nine), faceUp(entities.King, entities.Six, entities.Eight), entities.OutcomeLose},
		{"dealer bust pays", faceUp(entities.Ten, entities.Two), faceUp(entities.King, entities.Six, entities.Eight), entities.OutcomeWin},
		{"natural pays 3:2", faceUp(entities.Ace, entities.King), faceUp(entities.King, entities.Nine), entities.OutcomeBlackjack},
		{"natural beats three-card 21", faceUp(entities.Ace, entities.King), faceUp(entities.Seven, entities.Seven, entities.Seven), entities.OutcomeBlackjack},
		{"dealer natural beats 21", faceUp(entities.Seven, entities.Seven, entities.Seven), faceUp(entities.Ace, entities.Queen), entities.OutcomeLose},
		{"two naturals push", faceUp(entities.Ace, entities.Jack), faceUp(entities.Ace, entities.Queen), entities.OutcomePush},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Outcome(tt.player, tt.dealer))
		})
	}
}

func TestResolve(t *testing.T) {
	dealer := faceUp(entities.King, entities.Eight) // 18

	players := []Player{
		seat(1, 285, 15, faceUp(entities.King, entities.Nine)),               // win
		seat(2, 285, 15, faceUp(entities.King, entities.Seven)),              // lose
		seat(3, 285, 15, faceUp(entities.Ace, entities.King)),                // blackjack
		seat(4, 290, 10, faceUp(entities.Nine, entities.Nine)),               // push
		seat(5, 300, 0, faceUp(entities.King, entities.King)),                // not playing
		seat(6, 285, 15, faceUp(entities.King, entities.Five, entities.Ten)), // bust
	}
	before := players[0].Chips

	results := Resolve(players, dealer)
	require.Len(t, results, 5)
	assert.Equal(t, before, players[0].Chips, "inputs are not modified")

	byID := make(map[int]Settlement)
	for _, s := range results {
		byID[s.PlayerID] = s
	}
	assert.NotContains(t, byID, 5)

	// Chips shown are after the standing bet is reserved again
	assert.Equal(t, entities.OutcomeWin, byID[1].Outcome)
	assert.Equal(t, int64(15), byID[1].Net)
	assert.Equal(t, int64(300), byID[1].Chips)
	assert.Equal(t, int64(15), byID[1].NextStake)

	assert.Equal(t, entities.OutcomeLose, byID[2].Outcome)
	assert.Equal(t, int64(-15), byID[2].Net)
	assert.Equal(t, int64(270), byID[2].Chips)

	assert.Equal(t, entities.OutcomeBlackjack, byID[3].Outcome)
	assert.Equal(t, int64(22), byID[3].Net)
	assert.Equal(t, int64(307), byID[3].Chips)

	assert.Equal(t, entities.OutcomePush, byID[4].Outcome)
	assert.Equal(t, int64(0), byID[4].Net)
	assert.Equal(t, int64(290), byID[4].Chips)
	assert.Equal(t, int64(10), byID[4].NextStake)

	assert.Equal(t, entities.OutcomeLose, byID[6].Outcome)
	assert.Equal(t, 25, byID[6].Total)
}

func TestResolveDoubledSeat(t *testing.T) {
	p := seat(1, 285, 15, faceUp(entities.Five, entities.Six, entities.King))
	p.Chips -= p.Stake
	p.Stake *= 2
	p.Doubled = true

	results := Resolve([]Player{p}, faceUp(entities.King, entities.Nine))
	require.Len(t, results, 1)

	s := results[0]
	assert.Equal(t, entities.OutcomeWin, s.Outcome)
	assert.Equal(t, int64(30), s.Stake)
	assert.Equal(t, int64(30), s.Net)
	assert.Equal(t, int64(15), s.NextStake, "standing bet is restored")
	assert.Equal(t, int64(315), s.Chips)
}

func TestResolveClampsNextStake(t *testing.T) {
	p := seat(1, 0, 20, faceUp(entities.King, entities.Six))

	results := Resolve([]Player{p}, faceUp(entities.King, entities.Nine))
	require.Len(t, results, 1)
	assert.Equal(t, int64(0), results[0].NextStake)
	assert.Equal(t, int64(0), results[0].Chips)
}
