package odds

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Fractional converts UK fractional odds to decimal odds.
// Example: 9/4 → 3.25
func Fractional(num, den int64) (Odds, error) {
	if den == 0 {
		return Odds{}, fmt.Errorf("%w: fractional odds %d/%d has zero denominator", ErrDomain, num, den)
	}
	return FractionalRat(big.NewRat(num, den))
}

// FractionalString parses fractional odds written as "9/4", "9-4" or "9:4".
// A bare integer such as "5" means 5/1.
func FractionalString(s string) (Odds, error) {
	r, err := parseFraction(s)
	if err != nil {
		return Odds{}, err
	}
	return FractionalRat(r)
}

// FractionalRat converts an exact fraction to decimal odds.
func FractionalRat(r *big.Rat) (Odds, error) {
	if r == nil {
		return Odds{}, fmt.Errorf("%w: nil fraction", ErrDomain)
	}
	return Odds{value: sum(ratToDecimal(r), one)}, nil
}

// Inverted returns the price on the other side of a two-way book.
// Example: 1.25 (1/4) → 5.00 (4/1)
func Inverted(v decimal.Decimal) (Odds, error) {
	toOne := sum(v, one.Neg())
	if toOne.IsZero() {
		return Odds{}, fmt.Errorf("%w: cannot invert odds of 1", ErrDomain)
	}
	return Odds{value: sum(Quo(one, toOne), one)}, nil
}

// Moneyline converts American odds to decimal odds.
// Example: +138 → 2.38, -200 → 1.50
func Moneyline(v int64) (Odds, error) {
	if v > -100 && v < 100 {
		return Odds{}, fmt.Errorf("%w: moneyline %d must be at least 100 in absolute value", ErrDomain, v)
	}
	d := decimal.NewFromInt(v)
	if v > 0 {
		return Odds{value: sum(Quo(d, hundred), one)}, nil
	}
	return Odds{value: sum(Quo(hundred, d.Neg()), one)}, nil
}

// MoneylineString parses American odds such as "+138" or "-200".
func MoneylineString(s string) (Odds, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return Odds{}, fmt.Errorf("parsing moneyline %q: %w", s, err)
	}
	return Moneyline(v)
}

// Percentage converts an implied percentage chance to decimal odds.
// Example: 40 → 2.50
func Percentage(v decimal.Decimal) (Odds, error) {
	if !v.IsPositive() || v.GreaterThanOrEqual(hundred) {
		return Odds{}, fmt.Errorf("%w: percentage %s must be between 0 and 100 exclusive", ErrDomain, v)
	}
	return Odds{value: Quo(hundred, v)}, nil
}

// Probability converts an implied probability to decimal odds.
// Example: 0.2 → 5.00
func Probability(v decimal.Decimal) (Odds, error) {
	if !v.IsPositive() || v.GreaterThanOrEqual(one) {
		return Odds{}, fmt.Errorf("%w: probability %s must be between 0 and 1 exclusive", ErrDomain, v)
	}
	return Odds{value: Quo(one, v)}, nil
}

// ToMoneyline converts to American odds. Prices longer than evens get a "+",
// evens and shorter get a "-". The figure is truncated, not rounded.
func (o Odds) ToMoneyline() (string, error) {
	toOne := o.ToOne()
	if !toOne.IsPositive() {
		return "", fmt.Errorf("%w: odds %s have no moneyline", ErrDomain, o)
	}
	if o.IsOddsAgainst() {
		return "+" + toOne.Mul(hundred).Truncate(0).String(), nil
	}
	return "-" + Quo(hundred, toOne).Truncate(0).String(), nil
}

func parseFraction(s string) (*big.Rat, error) {
	norm := strings.TrimSpace(s)
	norm = strings.NewReplacer("-", "/", ":", "/", " ", "").Replace(norm)
	if norm == "" {
		return nil, fmt.Errorf("%w: empty fraction", ErrDomain)
	}
	parts := strings.Split(norm, "/")
	if len(parts) > 2 {
		return nil, fmt.Errorf("%w: fraction %q has too many separators", ErrDomain, s)
	}
	if len(parts) == 2 && strings.TrimSpace(parts[1]) == "0" {
		return nil, fmt.Errorf("%w: fraction %q has zero denominator", ErrDomain, s)
	}
	r, ok := new(big.Rat).SetString(norm)
	if !ok {
		return nil, fmt.Errorf("%w: cannot parse fraction %q", ErrDomain, s)
	}
	return r, nil
}

func ratToDecimal(r *big.Rat) decimal.Decimal {
	num := decimal.NewFromBigInt(r.Num(), 0)
	den := decimal.NewFromBigInt(r.Denom(), 0)
	return Quo(num, den)
}
