package bet

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"betmath/internal/odds"
)

var (
	ErrInvalidBet      = errors.New("invalid bet")
	ErrStillOpen       = errors.New("bet is still open")
	ErrNoStartingPrice = errors.New("starting price not set")
	ErrReductionFactor = errors.New("reduction factor must be >= 0 and < 100")
	ErrSelectionCount  = errors.New("wrong number of selections")
)

var hundred = decimal.NewFromInt(100)

// Condition reports the current state of some outcome, such as whether a
// selection has won or whether an event has finished.
type Condition func() bool

func always() bool { return true }

// Status represents the settlement state of a bet
type Status string

const (
	StatusOpen Status = "OPEN"
	StatusWon  Status = "WON"
	StatusLost Status = "LOST"
	StatusVoid Status = "VOID"
)

func (s Status) String() string {
	return string(s)
}

// Bet is a single wager at fixed odds or at the starting price.
type Bet struct {
	ID    uuid.UUID
	Stake decimal.Decimal

	odds          odds.Odds
	startingPrice bool
	win           Condition
	end           Condition
	bog           bool
	voided        bool
}

// Option configures a Bet.
type Option func(*Bet)

// WithEndCondition sets when the bet can be settled. By default it always can.
func WithEndCondition(end Condition) Option {
	return func(b *Bet) {
		if end != nil {
			b.end = end
		}
	}
}

// WithBestOddsGuaranteed settles a fixed-odds bet at the starting price if that is longer.
func WithBestOddsGuaranteed() Option {
	return func(b *Bet) {
		b.bog = true
	}
}

// WithID overrides the generated bet ID.
func WithID(id uuid.UUID) Option {
	return func(b *Bet) {
		b.ID = id
	}
}

// New creates a fixed-odds bet. The stake must be positive and the odds greater than 1.
func New(stake decimal.Decimal, o odds.Odds, win Condition, opts ...Option) (*Bet, error) {
	return newBet(stake, o, false, win, opts)
}

// NewStartingPrice creates a bet settled at the starting price supplied at settlement.
func NewStartingPrice(stake decimal.Decimal, win Condition, opts ...Option) (*Bet, error) {
	return newBet(stake, odds.Odds{}, true, win, opts)
}

func newBet(stake decimal.Decimal, o odds.Odds, sp bool, win Condition, opts []Option) (*Bet, error) {
	if !stake.IsPositive() {
		return nil, fmt.Errorf("%w: stake must be positive, got %s", ErrInvalidBet, stake)
	}
	if win == nil {
		return nil, fmt.Errorf("%w: win condition is required", ErrInvalidBet)
	}
	if !sp && !o.Decimal().GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: odds must be greater than 1, got %s", ErrInvalidBet, o)
	}

	b := &Bet{
		ID:            uuid.New(),
		Stake:         stake,
		odds:          o,
		startingPrice: sp,
		win:           win,
		end:           always,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Odds returns the fixed odds and false for a starting price bet.
func (b *Bet) Odds() (odds.Odds, bool) {
	return b.odds, !b.startingPrice
}

// IsStartingPrice reports whether the bet takes the starting price.
func (b *Bet) IsStartingPrice() bool {
	return b.startingPrice
}

// IsBestOddsGuaranteed reports whether the bet is best odds guaranteed.
func (b *Bet) IsBestOddsGuaranteed() bool {
	return b.bog
}

// Void voids the bet. A void bet settles for its stake.
func (b *Bet) Void() {
	b.voided = true
}

// Status returns the current state of the bet.
func (b *Bet) Status() Status {
	if b.voided {
		return StatusVoid
	}
	if !b.end() {
		return StatusOpen
	}
	if b.win() {
		return StatusWon
	}
	return StatusLost
}

// Settlement carries what is only known once the event is over.
type Settlement struct {
	// StartingPrice is required for starting price and best odds guaranteed bets.
	StartingPrice *odds.Odds
	// ReductionFactor is a Rule 4 deduction in percent, 0 <= rf < 100.
	ReductionFactor decimal.Decimal
}

// Settle returns the total returns of the bet rounded half-even to 2 places:
// the stake for a void bet, zero for a loser, otherwise
// stake * ((price-1) * (1 - rf/100) + 1).
func (b *Bet) Settle(s Settlement) (decimal.Decimal, error) {
	if b.voided {
		return b.Stake, nil
	}

	rf := s.ReductionFactor
	if rf.IsNegative() || rf.GreaterThanOrEqual(hundred) {
		return decimal.Zero, fmt.Errorf("%w, got %s", ErrReductionFactor, rf)
	}

	if !b.end() {
		return decimal.Zero, ErrStillOpen
	}

	if s.StartingPrice == nil {
		if b.startingPrice {
			return decimal.Zero, ErrNoStartingPrice
		}
		if b.bog {
			return decimal.Zero, fmt.Errorf("%w: cannot calculate best odds", ErrNoStartingPrice)
		}
	}

	if !b.win() {
		return decimal.Zero, nil
	}

	price := b.odds
	switch {
	case b.bog && !b.startingPrice:
		price = odds.Max(*s.StartingPrice, b.odds)
	case s.StartingPrice != nil:
		price = *s.StartingPrice
	}

	reducer := decimal.NewFromInt(1).Sub(odds.Quo(rf, hundred))
	returns := b.Stake.Mul(price.ToOne().Mul(reducer).Add(decimal.NewFromInt(1)))
	return returns.RoundBank(2), nil
}
