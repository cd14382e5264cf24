package entities

import "time"

// PlayerStatistics represents aggregated statistics for one seat during a
// session. Nothing here outlives the process.
type PlayerStatistics struct {
	PlayerID    int
	HandsPlayed int
	Wins        int
	Losses      int
	Pushes      int
	Blackjacks  int
	Busts       int
	DoubleDowns int
	Deviations  int // decisions that differed from basic strategy
	Decisions   int
	TotalStaked int64
	NetWinnings int64
	LastUpdated time.Time
}

// WinRate calculates the seat's win rate as a percentage
func (s *PlayerStatistics) WinRate() float64 {
	if s.HandsPlayed == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.HandsPlayed) * 100.0
}

// Accuracy is the share of decisions that matched basic strategy, as a percentage
func (s *PlayerStatistics) Accuracy() float64 {
	if s.Decisions == 0 {
		return 100.0
	}
	return float64(s.Decisions-s.Deviations) / float64(s.Decisions) * 100.0
}
