package statistics

import (
	"testing"
	"time"

	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/fadedpez/blackjack/pkg/services/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService() *Service {
	return NewService(func() time.Time { return fixedTime })
}

func TestRecordSettlements(t *testing.T) {
	svc := newTestService()

	svc.RecordSettlements([]blackjack.Settlement{
		{PlayerID: 1, Outcome: entities.OutcomeBlackjack, Total: 21, Stake: 20, Net: 30},
		{PlayerID: 2, Outcome: entities.OutcomeLose, Total: 24, Stake: 15, Net: -15},
	})
	svc.RecordSettlements([]blackjack.Settlement{
		{PlayerID: 1, Outcome: entities.OutcomePush, Total: 18, Stake: 20},
		{PlayerID: 2, Outcome: entities.OutcomeWin, Total: 19, Stake: 30, Net: 30},
	})

	one, ok := svc.Get(1)
	require.True(t, ok)
	assert.Equal(t, 2, one.HandsPlayed)
	assert.Equal(t, 1, one.Wins)
	assert.Equal(t, 1, one.Blackjacks)
	assert.Equal(t, 1, one.Pushes)
	assert.Equal(t, int64(40), one.TotalStaked)
	assert.Equal(t, int64(30), one.NetWinnings)
	assert.Equal(t, fixedTime, one.LastUpdated)

	two, ok := svc.Get(2)
	require.True(t, ok)
	assert.Equal(t, 1, two.Busts)
	assert.Equal(t, 1, two.Losses)
	assert.Equal(t, int64(15), two.NetWinnings)

	_, ok = svc.Get(3)
	assert.False(t, ok)
}

func TestRecordDecision(t *testing.T) {
	svc := newTestService()

	svc.RecordDecision(1, blackjack.MoveHit, strategy.Advice{Optimal: blackjack.MoveHit})
	svc.RecordDecision(1, blackjack.MoveDouble, strategy.Advice{Suboptimal: true, Optimal: blackjack.MoveHit})

	st, ok := svc.Get(1)
	require.True(t, ok)
	assert.Equal(t, 2, st.Decisions)
	assert.Equal(t, 1, st.Deviations)
	assert.Equal(t, 1, st.DoubleDowns)
	assert.Equal(t, 50.0, st.Accuracy())
}

func TestStandings(t *testing.T) {
	svc := newTestService()
	svc.RecordDecision(3, blackjack.MoveStand, strategy.Advice{}) // no hands yet

	svc.RecordSettlements([]blackjack.Settlement{
		{PlayerID: 1, Outcome: entities.OutcomeLose, Stake: 15, Net: -15},
		{PlayerID: 2, Outcome: entities.OutcomeWin, Stake: 15, Net: 15},
	})
	svc.RecordSettlements([]blackjack.Settlement{
		{PlayerID: 1, Outcome: entities.OutcomeLose, Stake: 15, Net: -15},
	})

	standings := svc.Standings()
	require.Len(t, standings, 2)

	assert.Equal(t, 2, standings[0].PlayerID)
	assert.Equal(t, 1, standings[0].Rank)
	assert.True(t, standings[0].IsTopWinner)
	assert.False(t, standings[0].IsTopPlayer)
	assert.Equal(t, 1.0, standings[0].ProfitRate)

	assert.Equal(t, 1, standings[1].PlayerID)
	assert.Equal(t, 2, standings[1].Rank)
	assert.True(t, standings[1].IsTopPlayer)
	assert.Equal(t, -1.0, standings[1].ProfitRate)
}

func TestAllOrdersBySeat(t *testing.T) {
	svc := newTestService()
	svc.RecordSettlements([]blackjack.Settlement{
		{PlayerID: 3, Outcome: entities.OutcomeWin},
		{PlayerID: 1, Outcome: entities.OutcomeWin},
	})

	all := svc.All()
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].PlayerID)
	assert.Equal(t, 3, all[1].PlayerID)
}
