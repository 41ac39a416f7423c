package staking

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"betmath/internal/odds"
)

// ErrInvalidFraction reports a Kelly fraction outside (0, 1].
var ErrInvalidFraction = errors.New("kelly fraction must be greater than 0 and at most 1")

var one = decimal.NewFromInt(1)

// Kelly returns the stake the Kelly criterion recommends for a bank when the
// true chance of a selection is trueOdds and it can be backed at marketOdds.
// Kelly formula: f* = (b*p - q) / b
// where: p = true probability, q = 1-p, b = market odds minus 1
//
// Returns zero when the market price offers no edge.
// Example: Kelly(4, 5, 100) → 6.25, Kelly(5, 4, 100) → 0
func Kelly(trueOdds, marketOdds odds.Odds, bank decimal.Decimal) decimal.Decimal {
	b := marketOdds.ToOne()
	if !b.IsPositive() {
		return decimal.Zero
	}

	p := trueOdds.ToProbability()
	q := one.Sub(p)

	fraction := odds.Quo(b.Mul(p).Sub(q), b)
	if !fraction.IsPositive() {
		return decimal.Zero
	}
	return bank.Mul(fraction)
}

// FractionalKelly scales the Kelly stake, e.g. 0.25 for quarter Kelly.
func FractionalKelly(trueOdds, marketOdds odds.Odds, bank, fraction decimal.Decimal) (decimal.Decimal, error) {
	if !fraction.IsPositive() || fraction.GreaterThan(one) {
		return decimal.Zero, fmt.Errorf("%w, got %s", ErrInvalidFraction, fraction)
	}
	return Kelly(trueOdds, marketOdds, bank).Mul(fraction), nil
}

// Edge returns the expected profit per unit staked at marketOdds when the
// true chance is trueOdds: p * marketOdds - 1.
// Example: Edge(4, 5) → 0.25
func Edge(trueOdds, marketOdds odds.Odds) decimal.Decimal {
	return trueOdds.ToProbability().Mul(marketOdds.Decimal()).Sub(one)
}
