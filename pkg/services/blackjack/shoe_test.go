package blackjack

import (
	"testing"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShoe(t *testing.T) {
	shoe := NewShoe(2, 10, seededRand())
	assert.Equal(t, 104, shoe.Remaining())
	assert.Equal(t, 104, shoe.Size())
	assert.Equal(t, 0, shoe.Discarded())
}

func TestShoeDealFacing(t *testing.T) {
	shoe := NewShoe(1, 0, seededRand())

	up, err := shoe.Deal(true)
	require.NoError(t, err)
	assert.True(t, up.FaceUp)

	down, err := shoe.Deal(false)
	require.NoError(t, err)
	assert.False(t, down.FaceUp)

	assert.Equal(t, 50, shoe.Remaining())
}

func TestShoeDealsInOrder(t *testing.T) {
	stacked := []entities.Card{
		entities.NewCard(entities.Spades, entities.Ace),
		entities.NewCard(entities.Hearts, entities.King),
	}
	shoe := NewStackedShoe(stacked, 1, 0, seededRand())

	first, err := shoe.Deal(true)
	require.NoError(t, err)
	assert.Equal(t, entities.Ace, first.Rank)

	second, err := shoe.Deal(true)
	require.NoError(t, err)
	assert.Equal(t, entities.King, second.Rank)
}

func TestShoeEmpty(t *testing.T) {
	shoe := NewStackedShoe(nil, 1, 0, seededRand())

	_, err := shoe.Deal(true)
	require.Error(t, err)
	assert.True(t, types.IsGameError(err, types.ErrEmptyShoe))
}

func TestShoeReshuffle(t *testing.T) {
	const decks, threshold = 1, 20
	shoe := NewShoe(decks, threshold, seededRand())
	shoe.Discard(5)

	// Deal down to one card above the threshold
	for i := 0; i < 52*decks-threshold-1; i++ {
		_, err := shoe.Deal(true)
		require.NoError(t, err)
	}
	assert.Equal(t, threshold+1, shoe.Remaining())
	assert.Equal(t, 5, shoe.Discarded())
	assert.Equal(t, 0, shoe.Reshuffles())

	// The next deal leaves exactly threshold cards, and the check after a
	// deal is remaining <= threshold, so this deal rebuilds the shoe and a
	// full 52N remain. 52N-1 is only reached on the deal after that.
	_, err := shoe.Deal(true)
	require.NoError(t, err)
	assert.Equal(t, 52*decks, shoe.Remaining())
	assert.Equal(t, 0, shoe.Discarded())
	assert.Equal(t, 1, shoe.Reshuffles())

	_, err = shoe.Deal(true)
	require.NoError(t, err)
	assert.Equal(t, 52*decks-1, shoe.Remaining())
}

func TestShoeCloneReshufflesIdentically(t *testing.T) {
	shoe := NewStackedShoe(faceUp(entities.Ace), 1, 0, seededRand())
	c := shoe.clone()

	_, err := shoe.Deal(true)
	require.NoError(t, err)
	_, err = c.Deal(true)
	require.NoError(t, err)

	assert.Equal(t, 1, shoe.Reshuffles())
	assert.Equal(t, shoe.cards, c.cards)
}

func TestShoeCloneIsIndependent(t *testing.T) {
	shoe := NewShoe(1, 0, seededRand())
	c := shoe.clone()

	_, err := c.Deal(true)
	require.NoError(t, err)
	assert.Equal(t, 52, shoe.Remaining())
	assert.Equal(t, 51, c.Remaining())
}
