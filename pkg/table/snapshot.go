package table

import (
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/fadedpez/blackjack/pkg/services/strategy"
)

// Snapshot is the table state handed to observers and renderers
type Snapshot struct {
	blackjack.View
	TableID string

	// Action is the action that produced this snapshot, nil for reads
	Action blackjack.Action

	// Advice holds the verdict on each seat's latest decision this round
	Advice map[int]strategy.Advice
}

func (t *Table) snapshotLocked(action blackjack.Action) Snapshot {
	advice := make(map[int]strategy.Advice, len(t.advice))
	for id, a := range t.advice {
		advice[id] = a
	}
	return Snapshot{
		View:    t.round.View(),
		TableID: t.id,
		Action:  action,
		Advice:  advice,
	}
}
