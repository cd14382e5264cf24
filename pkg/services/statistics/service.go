package statistics

import (
	"sort"
	"time"

	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/fadedpez/blackjack/pkg/services/strategy"
)

// Service accumulates per-seat statistics for one table session. It is not
// safe for concurrent use; the table serializes calls.
type Service struct {
	stats map[int]*entities.PlayerStatistics
	now   func() time.Time
}

// NewService creates an empty statistics service. now stamps each update.
func NewService(now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		stats: make(map[int]*entities.PlayerStatistics),
		now:   now,
	}
}

// PlayerRank represents a seat's statistics with ranking information
type PlayerRank struct {
	entities.PlayerStatistics
	Rank        int
	ProfitRate  float64
	IsTopWinner bool
	IsTopPlayer bool
}

func (s *Service) seat(playerID int) *entities.PlayerStatistics {
	st, ok := s.stats[playerID]
	if !ok {
		st = &entities.PlayerStatistics{PlayerID: playerID}
		s.stats[playerID] = st
	}
	return st
}

// RecordDecision counts one player decision and whether it matched the chart
func (s *Service) RecordDecision(playerID int, move blackjack.Move, advice strategy.Advice) {
	st := s.seat(playerID)
	st.Decisions++
	if advice.Suboptimal {
		st.Deviations++
	}
	if move == blackjack.MoveDouble {
		st.DoubleDowns++
	}
	st.LastUpdated = s.now()
}

// RecordSettlements folds one round's results into the running totals
func (s *Service) RecordSettlements(results []blackjack.Settlement) {
	now := s.now()
	for _, r := range results {
		st := s.seat(r.PlayerID)
		st.HandsPlayed++
		st.TotalStaked += r.Stake
		st.NetWinnings += r.Net
		st.LastUpdated = now

		switch r.Outcome {
		case entities.OutcomeWin:
			st.Wins++
		case entities.OutcomeBlackjack:
			st.Wins++
			st.Blackjacks++
		case entities.OutcomePush:
			st.Pushes++
		case entities.OutcomeLose:
			st.Losses++
		}
		if r.Total > 21 {
			st.Busts++
		}
	}
}

// Get returns a copy of one seat's statistics
func (s *Service) Get(playerID int) (entities.PlayerStatistics, bool) {
	st, ok := s.stats[playerID]
	if !ok {
		return entities.PlayerStatistics{}, false
	}
	return *st, true
}

// All returns a copy of every seat's statistics ordered by seat id
func (s *Service) All() []entities.PlayerStatistics {
	out := make([]entities.PlayerStatistics, 0, len(s.stats))
	for _, st := range s.stats {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}

// Standings ranks seats that have played by net winnings
func (s *Service) Standings() []PlayerRank {
	ranks := make([]PlayerRank, 0, len(s.stats))
	for _, st := range s.All() {
		// Skip seats with no hands
		if st.HandsPlayed == 0 {
			continue
		}

		var profitRate float64
		if st.TotalStaked > 0 {
			profitRate = float64(st.NetWinnings) / float64(st.TotalStaked)
		}
		ranks = append(ranks, PlayerRank{PlayerStatistics: st, ProfitRate: profitRate})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].NetWinnings > ranks[j].NetWinnings
	})

	if len(ranks) > 0 {
		ranks[0].IsTopWinner = true

		// Top player has played the most hands
		most := 0
		for i := 1; i < len(ranks); i++ {
			if ranks[i].HandsPlayed > ranks[most].HandsPlayed {
				most = i
			}
		}
		ranks[most].IsTopPlayer = true
	}

	for i := range ranks {
		ranks[i].Rank = i + 1
	}
	return ranks
}
