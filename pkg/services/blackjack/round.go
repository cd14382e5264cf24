package blackjack

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/google/uuid"
)

// Options configures a new Round
type Options struct {
	Seats         int
	Decks         int
	ReshuffleAt   int
	StartingChips int64

	// Rand drives shuffling. A time-seeded source is used when nil.
	Rand *rand.Rand
	// Shoe replaces the generated shoe, e.g. a stacked shoe in tests
	Shoe *Shoe
}

// Round is the whole table: the dealer hand, the seats, the shoe and the
// current phase. Seats are keyed by a stable id so adding or removing one
// never renumbers the others.
type Round struct {
	ID      string // changes every time a new hand is dealt
	Phase   Phase
	Dealer  *Hand
	Players map[int]*Player
	Shoe    *Shoe

	startingChips int64
}

// NewRound creates a pre-game round with every seat empty and unstaked
func NewRound(opts Options) (*Round, error) {
	if opts.Seats < MinPlayers || opts.Seats > MaxPlayers {
		return nil, types.Errorf(types.ErrInvalidState, "seats must be between %d and %d, got %d", MinPlayers, MaxPlayers, opts.Seats)
	}
	if opts.StartingChips == 0 {
		opts.StartingChips = DefaultChips
	}

	shoe := opts.Shoe
	if shoe == nil {
		if opts.Decks < 1 {
			return nil, types.Errorf(types.ErrInvalidState, "need at least one deck, got %d", opts.Decks)
		}
		if opts.ReshuffleAt < 0 || opts.ReshuffleAt >= 52*opts.Decks {
			return nil, types.Errorf(types.ErrInvalidState, "reshuffle threshold %d does not fit a %d-deck shoe", opts.ReshuffleAt, opts.Decks)
		}
		rng := opts.Rand
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		shoe = NewShoe(opts.Decks, opts.ReshuffleAt, rng)
	}

	r := &Round{
		Dealer:        NewHand(),
		Players:       make(map[int]*Player, opts.Seats),
		Shoe:          shoe,
		startingChips: opts.StartingChips,
	}
	for id := 1; id <= opts.Seats; id++ {
		r.Players[id] = NewPlayer(id, opts.StartingChips)
	}
	return r, nil
}

// Apply is the transition function. It returns the round that results
// from applying a to r and never modifies r itself; on error the returned
// round is r.
func (r *Round) Apply(a Action) (*Round, error) {
	next := r.Clone()
	if err := next.apply(a); err != nil {
		return r, err
	}
	return next, nil
}

// Clone returns a deep copy that shares nothing with r
func (r *Round) Clone() *Round {
	c := &Round{
		ID:            r.ID,
		Phase:         r.Phase,
		Dealer:        r.Dealer.clone(),
		Players:       make(map[int]*Player, len(r.Players)),
		Shoe:          r.Shoe.clone(),
		startingChips: r.startingChips,
	}
	for id, p := range r.Players {
		c.Players[id] = p.clone()
	}
	return c
}

func (r *Round) apply(a Action) error {
	switch act := a.(type) {
	case OpenBetting:
		if r.Phase != nil {
			return r.wrongPhase("open betting")
		}
		r.Phase = Betting{}
		return nil
	case SetStake:
		return r.setStake(act.PlayerID, act.Amount)
	case AddPlayer:
		return r.addPlayer()
	case RemovePlayer:
		return r.removePlayer()
	case AdvanceToInitialDealing:
		return r.startDealing()
	case DealNext:
		return r.dealNext()
	case Hit:
		return r.hit(act.PlayerID)
	case Stand:
		return r.stand(act.PlayerID)
	case Double:
		return r.double(act.PlayerID)
	case FlipDealerHoleCard:
		return r.flipHoleCard()
	case ResolveDealerStep:
		return r.dealerStep()
	case PlayDealer:
		return r.playDealer()
	case ResetRound:
		return r.reset()
	default:
		return types.Errorf(types.ErrInvalidAction, "unknown action %T", a)
	}
}

func (r *Round) wrongPhase(what string) error {
	return types.Errorf(types.ErrInvalidAction, "cannot %s during phase %q", what, PhaseName(r.Phase))
}

// acceptingBets is true before the first round and during betting
func (r *Round) acceptingBets() bool {
	if r.Phase == nil {
		return true
	}
	_, ok := r.Phase.(Betting)
	return ok
}

// PlayerIDs returns every seat id in ascending order
func (r *Round) PlayerIDs() []int {
	ids := make([]int, 0, len(r.Players))
	for id := range r.Players {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (r *Round) playingIDs() []int {
	ids := make([]int, 0, len(r.Players))
	for _, id := range r.PlayerIDs() {
		if r.Players[id].Playing {
			ids = append(ids, id)
		}
	}
	return ids
}

// Player returns a copy of a seat
func (r *Round) Player(id int) (Player, error) {
	p, ok := r.Players[id]
	if !ok {
		return Player{}, types.Errorf(types.ErrPlayerNotFound, "no seat with id %d", id)
	}
	return *p.clone(), nil
}

// TurnPlayerID returns the seat allowed to act, if any
func (r *Round) TurnPlayerID() (int, bool) {
	if pt, ok := r.Phase.(PlayerTurn); ok {
		return pt.PlayerID, true
	}
	return 0, false
}

// Results returns the settlements while the round is in EndState
func (r *Round) Results() []Settlement {
	if end, ok := r.Phase.(EndState); ok {
		return end.Results
	}
	return nil
}

func (r *Round) setStake(id int, amount int64) error {
	if !r.acceptingBets() {
		return r.wrongPhase("change stakes")
	}
	p, ok := r.Players[id]
	if !ok {
		return types.Errorf(types.ErrPlayerNotFound, "no seat with id %d", id)
	}
	return p.setStake(amount)
}

func (r *Round) addPlayer() error {
	if !r.acceptingBets() {
		return r.wrongPhase("add a seat")
	}
	if len(r.Players) >= MaxPlayers {
		return types.Errorf(types.ErrTooManyPlayers, "table is full (%d/%d seats)", len(r.Players), MaxPlayers)
	}
	id := 1
	if ids := r.PlayerIDs(); len(ids) > 0 {
		id = ids[len(ids)-1] + 1
	}
	r.Players[id] = NewPlayer(id, r.startingChips)
	return nil
}

// removePlayer drops the highest-numbered seat
func (r *Round) removePlayer() error {
	if !r.acceptingBets() {
		return r.wrongPhase("remove a seat")
	}
	if len(r.Players) <= MinPlayers {
		return types.Errorf(types.ErrNotEnoughPlayers, "at least %d seat must remain", MinPlayers)
	}
	ids := r.PlayerIDs()
	delete(r.Players, ids[len(ids)-1])
	return nil
}

func (r *Round) startDealing() error {
	if !r.acceptingBets() {
		return r.wrongPhase("start dealing")
	}

	staked := false
	for _, p := range r.Players {
		p.Playing = p.Stake > 0
		p.Doubled = false
		staked = staked || p.Playing
	}
	if !staked {
		return types.NewGameError(types.ErrInvalidAction, "no seat has placed a stake")
	}

	r.ID = uuid.NewString()
	r.Phase = InitialDealing{Step: 0}
	return nil
}

// dealTarget is one card of the opening deal; playerID 0 is the dealer
type dealTarget struct {
	playerID int
	faceUp   bool
}

// dealPlan is the fixed opening order: a card to each playing seat, the
// dealer's up card, a second card to each seat, then the dealer's hole card
func (r *Round) dealPlan() []dealTarget {
	ids := r.playingIDs()
	plan := make([]dealTarget, 0, 2*len(ids)+2)
	for _, id := range ids {
		plan = append(plan, dealTarget{playerID: id, faceUp: true})
	}
	plan = append(plan, dealTarget{faceUp: true})
	for _, id := range ids {
		plan = append(plan, dealTarget{playerID: id, faceUp: true})
	}
	return append(plan, dealTarget{faceUp: false})
}

func (r *Round) draw(faceUp bool) (entities.Card, error) {
	card, err := r.Shoe.Deal(faceUp)
	if err != nil {
		return entities.Card{}, fmt.Errorf("round %s: %w", r.ID, err)
	}
	return card, nil
}

func (r *Round) dealNext() error {
	phase, ok := r.Phase.(InitialDealing)
	if !ok {
		return r.wrongPhase("deal opening cards")
	}

	plan := r.dealPlan()
	target := plan[phase.Step]
	card, err := r.draw(target.faceUp)
	if err != nil {
		return err
	}
	if target.playerID == 0 {
		r.Dealer.AddCard(card)
	} else {
		r.Players[target.playerID].Hand.AddCard(card)
	}

	if phase.Step+1 < len(plan) {
		r.Phase = InitialDealing{Step: phase.Step + 1}
		return nil
	}

	if r.dealerPeeksBlackjack() {
		r.Phase = DealerTurn{}
		return nil
	}
	r.Phase = PlayerTurn{PlayerID: r.playingIDs()[0]}
	return nil
}

// dealerPeeksBlackjack checks the hole card without showing it, and only
// when the up card is worth 10 or 11
func (r *Round) dealerPeeksBlackjack() bool {
	up := r.Dealer.Cards[0]
	if v := CardValue(up.Rank); v != 10 && v != 11 {
		return false
	}
	peek := r.Dealer.clone()
	if err := peek.Reveal(holeCardIndex); err != nil {
		return false
	}
	return Total(peek.Cards) == 21
}

// turnPlayer validates that id may act now and returns the seat
func (r *Round) turnPlayer(id int, what string) (*Player, error) {
	turn, ok := r.Phase.(PlayerTurn)
	if !ok {
		return nil, r.wrongPhase(what)
	}
	p, exists := r.Players[id]
	if !exists {
		return nil, types.Errorf(types.ErrPlayerNotFound, "no seat with id %d", id)
	}
	if turn.PlayerID != id {
		return nil, types.Errorf(types.ErrNotPlayerTurn, "it is seat %d's turn, not seat %d's", turn.PlayerID, id)
	}
	return p, nil
}

// advanceTurn moves to the next playing seat after id, or to the dealer
func (r *Round) advanceTurn(id int) {
	for _, next := range r.playingIDs() {
		if next > id {
			r.Phase = PlayerTurn{PlayerID: next}
			return
		}
	}
	r.Phase = DealerTurn{}
}

func (r *Round) hit(id int) error {
	p, err := r.turnPlayer(id, "hit")
	if err != nil {
		return err
	}
	card, err := r.draw(true)
	if err != nil {
		return err
	}
	p.Hand.AddCard(card)
	// A bust ends the turn; the seat still settles as a loss
	if IsBust(p.Hand.Cards) {
		r.advanceTurn(id)
	}
	return nil
}

func (r *Round) stand(id int) error {
	if _, err := r.turnPlayer(id, "stand"); err != nil {
		return err
	}
	r.advanceTurn(id)
	return nil
}

func (r *Round) double(id int) error {
	p, err := r.turnPlayer(id, "double")
	if err != nil {
		return err
	}
	if !p.CanDouble() {
		return types.Errorf(types.ErrInvalidAction, "seat %d cannot double: needs two cards and %d chips, holds %d cards and %d chips",
			id, p.Stake, p.Hand.Len(), p.Chips)
	}

	card, err := r.draw(true)
	if err != nil {
		return err
	}
	p.Chips -= p.Stake
	p.Stake *= 2
	p.Doubled = true
	p.Hand.AddCard(card)
	r.advanceTurn(id)
	return nil
}

func (r *Round) flipHoleCard() error {
	phase, ok := r.Phase.(DealerTurn)
	if !ok || phase.HoleRevealed {
		return r.wrongPhase("flip the hole card")
	}
	if err := r.Dealer.Reveal(holeCardIndex); err != nil {
		return err
	}
	r.Phase = DealerTurn{HoleRevealed: true}
	return nil
}

// dealerStep draws one dealer card, or settles once the dealer stands
func (r *Round) dealerStep() error {
	phase, ok := r.Phase.(DealerTurn)
	if !ok {
		return r.wrongPhase("play the dealer")
	}
	if !phase.HoleRevealed {
		return types.NewGameError(types.ErrInvalidAction, "the hole card must be flipped before the dealer plays")
	}

	if ShouldDealerHit(r.Dealer.Cards) {
		card, err := r.draw(true)
		if err != nil {
			return err
		}
		r.Dealer.AddCard(card)
		return nil
	}

	r.settle()
	return nil
}

func (r *Round) playDealer() error {
	phase, ok := r.Phase.(DealerTurn)
	if !ok {
		return r.wrongPhase("play the dealer")
	}
	if !phase.HoleRevealed {
		if err := r.flipHoleCard(); err != nil {
			return err
		}
	}
	for {
		if _, done := r.Phase.(EndState); done {
			return nil
		}
		if err := r.dealerStep(); err != nil {
			return err
		}
	}
}

func (r *Round) settle() {
	seats := make([]Player, 0, len(r.Players))
	for _, id := range r.PlayerIDs() {
		seats = append(seats, *r.Players[id])
	}

	results := Resolve(seats, r.Dealer.Cards)
	for _, s := range results {
		p := r.Players[s.PlayerID]
		p.Chips = s.Chips
		p.Stake = s.NextStake
		p.BaseStake = s.NextStake
		p.Doubled = false
	}
	r.Phase = EndState{Results: results}
}

func (r *Round) reset() error {
	if _, ok := r.Phase.(EndState); !ok {
		return r.wrongPhase("reset the round")
	}

	used := r.Dealer.Clear()
	for _, p := range r.Players {
		used += p.Hand.Clear()
		p.Playing = p.Stake > 0
	}
	r.Shoe.Discard(used)
	r.Phase = Betting{}
	return nil
}
