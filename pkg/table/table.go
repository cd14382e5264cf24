// Package table drives a blackjack round for a renderer: it serializes
// actions, paces multi-step sequences, grades decisions and keeps
// session statistics.
package table

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/fadedpez/blackjack/pkg/services/statistics"
	"github.com/fadedpez/blackjack/pkg/services/strategy"
	"github.com/google/uuid"
)

const DefaultStakeStep = 15

// Options configures a Table
type Options struct {
	Round     blackjack.Options
	StakeStep int64

	// Interval is the pause between paced steps in PlayRound
	Interval time.Duration
	Clock    quartz.Clock

	Logger   *logging.Logger
	Observer Observer
}

// Table owns one round and is safe for concurrent use
type Table struct {
	id        string
	round     *blackjack.Round
	stakeStep int64
	pacer     pacer
	logger    *logging.Logger
	observer  Observer

	advice map[int]strategy.Advice
	stats  *statistics.Service
	mu     sync.Mutex

	// notifyMu is taken before mu is released so observers see updates in
	// the order they were applied
	notifyMu sync.Mutex
}

// New creates a table in the pre-game phase
func New(opts Options) (*Table, error) {
	round, err := blackjack.NewRound(opts.Round)
	if err != nil {
		return nil, err
	}

	if opts.StakeStep <= 0 {
		opts.StakeStep = DefaultStakeStep
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}

	id := uuid.NewString()
	return &Table{
		id:        id,
		round:     round,
		stakeStep: opts.StakeStep,
		pacer:     pacer{clock: opts.Clock, interval: opts.Interval},
		logger:    opts.Logger.WithPrefix("table").With("table", id[:8]),
		observer:  opts.Observer,
		advice:    make(map[int]strategy.Advice),
		stats:     statistics.NewService(func() time.Time { return opts.Clock.Now() }),
	}, nil
}

// ID returns the table's id
func (t *Table) ID() string {
	return t.id
}

// Dispatch applies one action. On error the round is unchanged and no
// observer is notified.
func (t *Table) Dispatch(action blackjack.Action) (Snapshot, error) {
	t.mu.Lock()
	snapshot, err := t.dispatchLocked(action)
	return t.notifyAndUnlock(snapshot, err)
}

// notifyAndUnlock releases mu and, on success, hands the snapshot to the
// observer. Must be called with mu held.
func (t *Table) notifyAndUnlock(snapshot Snapshot, err error) (Snapshot, error) {
	if err != nil {
		t.mu.Unlock()
		return snapshot, err
	}
	t.notifyMu.Lock()
	defer t.notifyMu.Unlock()
	t.mu.Unlock()

	t.observer.OnUpdate(snapshot)
	return snapshot, nil
}

func (t *Table) dispatchLocked(action blackjack.Action) (Snapshot, error) {
	before := t.round

	// Grade the decision against the hand as it was when the move was made
	move, playerID, isMove := blackjack.MoveOf(action)
	var advice strategy.Advice
	if isMove {
		if p, err := before.Player(playerID); err == nil {
			advice = strategy.Evaluate(p.Hand.Cards, before.Dealer.Cards, move)
		}
	}

	next, err := before.Apply(action)
	if err != nil {
		if types.IsGameError(err, types.ErrEmptyShoe) {
			t.logger.LogError(err)
		} else {
			t.logger.Warn("Rejected %T: %v", action, err)
		}
		return t.snapshotLocked(nil), err
	}
	t.round = next
	t.logger.Debug("Applied %T, phase %s", action, blackjack.PhaseName(next.Phase))

	if _, ok := action.(blackjack.AdvanceToInitialDealing); ok {
		t.advice = make(map[int]strategy.Advice)
	}

	if isMove {
		t.advice[playerID] = advice
		t.stats.RecordDecision(playerID, move, advice)
		if advice.Suboptimal {
			t.logger.Info("Seat %d: %s", playerID, advice.Reason)
		}
	}

	if _, ended := before.Phase.(blackjack.EndState); !ended {
		if results := next.Results(); results != nil {
			t.record(results)
		}
	}

	return t.snapshotLocked(action), nil
}

func (t *Table) record(results []blackjack.Settlement) {
	t.stats.RecordSettlements(results)
	for _, r := range results {
		t.logger.Info("Seat %d: %s with %d, net %+d, chips %d", r.PlayerID, r.Outcome, r.Total, r.Net, r.Chips)
	}
}

// Snapshot returns the current state
func (t *Table) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked(nil)
}

// Advice returns the verdict on a seat's most recent decision this round
func (t *Table) Advice(playerID int) (strategy.Advice, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	a, ok := t.advice[playerID]
	return a, ok
}

// NudgeStake raises or lowers a seat's stake by one step, never below zero
func (t *Table) NudgeStake(playerID int, up bool) (Snapshot, error) {
	t.mu.Lock()
	p, err := t.round.Player(playerID)
	if err != nil {
		t.mu.Unlock()
		return Snapshot{}, err
	}
	amount := p.Stake - t.stakeStep
	if up {
		amount = p.Stake + t.stakeStep
	}
	if amount < 0 {
		amount = 0
	}
	snapshot, err := t.dispatchLocked(blackjack.SetStake{PlayerID: playerID, Amount: amount})
	return t.notifyAndUnlock(snapshot, err)
}

// Statistics returns a copy of every seat's session statistics by seat id
func (t *Table) Statistics() []entities.PlayerStatistics {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats.All()
}

// Standings ranks the seats that have played by net winnings
func (t *Table) Standings() []statistics.PlayerRank {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats.Standings()
}

// PlayRound plays one full round from betting to settlement with the
// current stakes, pausing between steps. Seats without a decider play
// basic strategy. A finished round is reset first. Cancelling ctx stops
// the run between steps and leaves the round where it stopped.
func (t *Table) PlayRound(ctx context.Context, deciders map[int]Decider) ([]blackjack.Settlement, error) {
	snap := t.Snapshot()
	switch snap.Phase {
	case entities.PhaseNone:
		if _, err := t.Dispatch(blackjack.OpenBetting{}); err != nil {
			return nil, err
		}
	case entities.PhaseEnd:
		if _, err := t.Dispatch(blackjack.ResetRound{}); err != nil {
			return nil, err
		}
	case entities.PhaseBetting:
	default:
		return nil, types.Errorf(types.ErrInvalidState, "cannot start a round during phase %q", snap.Phase)
	}

	if _, err := t.Dispatch(blackjack.AdvanceToInitialDealing{}); err != nil {
		return nil, err
	}

	for {
		if err := t.pacer.wait(ctx); err != nil {
			return nil, err
		}

		snap = t.Snapshot()
		var action blackjack.Action
		switch snap.Phase {
		case entities.PhaseInitialDealing:
			action = blackjack.DealNext{}
		case entities.PhasePlayerTurn:
			a, err := t.decide(ctx, snap, deciders)
			if err != nil {
				return nil, err
			}
			action = a
		case entities.PhaseDealerTurn:
			action = blackjack.ResolveDealerStep{}
			if len(snap.DealerCards) > 1 && !snap.DealerCards[1].FaceUp {
				action = blackjack.FlipDealerHoleCard{}
			}
		case entities.PhaseEnd:
			return snap.Results, nil
		default:
			return nil, types.Errorf(types.ErrInternalError, "round left play in phase %q", snap.Phase)
		}

		if _, err := t.Dispatch(action); err != nil {
			return nil, fmt.Errorf("playing round %s: %w", snap.RoundID, err)
		}
	}
}

func (t *Table) decide(ctx context.Context, snap Snapshot, deciders map[int]Decider) (blackjack.Action, error) {
	seat, ok := snap.Seat(snap.TurnPlayerID)
	if !ok {
		return nil, types.Errorf(types.ErrPlayerNotFound, "no seat with id %d", snap.TurnPlayerID)
	}

	decider, ok := deciders[seat.ID]
	if !ok || decider == nil {
		decider = StrategyBot{}
	}

	turn := Turn{
		Seat:      seat,
		Dealer:    snap.DealerCards,
		CanDouble: seat.CanDouble,
	}
	move, err := decider.Decide(ctx, turn)
	if err != nil {
		return nil, fmt.Errorf("seat %d: %w", seat.ID, err)
	}
	return blackjack.ActionFor(move, seat.ID)
}
