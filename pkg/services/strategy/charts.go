package strategy

import (
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
)

const (
	hit    = blackjack.MoveHit
	stand  = blackjack.MoveStand
	double = blackjack.MoveDouble
	split  = blackjack.MoveSplit
)

// chartRow is the play for one player hand, by dealer up card value.
// Up cards with no entry in vs take the all move.
type chartRow struct {
	all blackjack.Move
	vs  map[int]blackjack.Move
}

func (r chartRow) against(upCard int) blackjack.Move {
	if m, ok := r.vs[upCard]; ok {
		return m
	}
	return r.all
}

// against maps each listed up card to m
func against(m blackjack.Move, upCards ...int) map[int]blackjack.Move {
	vs := make(map[int]blackjack.Move, len(upCards))
	for _, up := range upCards {
		vs[up] = m
	}
	return vs
}

// Hard totals, no Ace counted as 11. Totals under 8 use the 8 row.
var hardChart = map[int]chartRow{
	8:  {all: hit},
	9:  {all: hit, vs: against(double, 3, 4, 5, 6)},
	10: {all: hit, vs: against(double, 2, 3, 4, 5, 6, 7, 8, 9)},
	11: {all: double},
	12: {all: hit, vs: against(stand, 4, 5, 6)},
	13: {all: hit, vs: against(stand, 2, 3, 4, 5, 6)},
	14: {all: hit, vs: against(stand, 2, 3, 4, 5, 6)},
	15: {all: hit, vs: against(stand, 2, 3, 4, 5, 6)},
	16: {all: hit, vs: against(stand, 2, 3, 4, 5, 6)},
	17: {all: stand},
	18: {all: stand},
	19: {all: stand},
	20: {all: stand},
	21: {all: stand},
}

// Soft totals, A,2 (13) through A,10 (21)
var softChart = map[int]chartRow{
	13: {all: hit, vs: against(double, 5, 6)},
	14: {all: hit, vs: against(double, 5, 6)},
	15: {all: hit, vs: against(double, 4, 5, 6)},
	16: {all: hit, vs: against(double, 4, 5, 6)},
	17: {all: hit, vs: against(double, 3, 4, 5, 6)},
	18: {all: hit, vs: map[int]blackjack.Move{
		2: double, 3: double, 4: double, 5: double, 6: double,
		7: stand, 8: stand,
	}},
	19: {all: stand},
	20: {all: stand},
	21: {all: stand},
}

// Pairs, keyed by rank. A pair of fives plays as a hard 10.
var pairChart = map[entities.Rank]chartRow{
	entities.Ace:   {all: split},
	entities.Two:   {all: hit, vs: against(split, 2, 3, 4, 5, 6, 7)},
	entities.Three: {all: hit, vs: against(split, 2, 3, 4, 5, 6, 7)},
	entities.Four:  {all: hit, vs: against(split, 5, 6)},
	entities.Five:  {all: double},
	entities.Six:   {all: hit, vs: against(split, 2, 3, 4, 5, 6)},
	entities.Seven: {all: hit, vs: against(split, 2, 3, 4, 5, 6, 7)},
	entities.Eight: {all: split},
	entities.Nine:  {all: stand, vs: against(split, 2, 3, 4, 5, 6, 8, 9)},
	entities.Ten:   {all: stand},
	entities.Jack:  {all: stand},
	entities.Queen: {all: stand},
	entities.King:  {all: stand},
}
