package odds

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Precision is the number of significant digits kept by arithmetic on odds values.
const Precision = 28

// ErrDomain reports an argument outside the mathematical domain of a conversion.
var ErrDomain = errors.New("odds out of domain")

var (
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// Odds is a decimal odds price: the total return per unit staked, stake included.
// 2.00 is evens. Odds values are immutable; every operation returns a new value.
type Odds struct {
	value decimal.Decimal
}

// New wraps a decimal value as Odds without validation.
func New(d decimal.Decimal) Odds {
	return Odds{value: d}
}

// FromInt returns Odds with the given whole decimal value.
func FromInt(v int64) Odds {
	return Odds{value: decimal.NewFromInt(v)}
}

// FromFloat returns Odds with the given decimal value.
// Example: FromFloat(3.25) → 3.25 (9/4)
func FromFloat(v float64) Odds {
	return Odds{value: decimal.NewFromFloat(v)}
}

// FromString parses a plain decimal value such as "3.25".
func FromString(s string) (Odds, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Odds{}, fmt.Errorf("parsing decimal odds %q: %w", s, err)
	}
	return Odds{value: d}, nil
}

// Evens returns 2.00.
func Evens() Odds {
	return Odds{value: two}
}

// Max returns the longer of two prices.
func Max(a, b Odds) Odds {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

// Quo returns a/b rounded to Precision significant digits. b must not be zero.
// Example: Quo(100, 30) → 3.333333333333333333333333333
func Quo(a, b decimal.Decimal) decimal.Decimal {
	if a.IsZero() {
		return decimal.Zero
	}
	// The quotient's leading digit is at 10^e or 10^(e-1).
	e := leadingExponent(a) - leadingExponent(b)
	places := int32(Precision - e)
	q := a.DivRound(b, places)
	if leadingExponent(q) >= e {
		q = a.DivRound(b, places-1)
	}
	return q
}

// Round rounds d half to even once it has more than Precision significant digits.
func Round(d decimal.Decimal) decimal.Decimal {
	if digits(d) <= Precision {
		return d
	}
	return d.RoundBank(int32(Precision - 1 - leadingExponent(d)))
}

func digits(d decimal.Decimal) int {
	return len(new(big.Int).Abs(d.Coefficient()).String())
}

// leadingExponent returns the power of ten of d's leading digit, e.g. 2 for 123.4.
func leadingExponent(d decimal.Decimal) int {
	return digits(d) + int(d.Exponent()) - 1
}

func sum(a, b decimal.Decimal) decimal.Decimal {
	return Round(a.Add(b))
}

// Decimal returns the underlying decimal value.
func (o Odds) Decimal() decimal.Decimal {
	return o.value
}

// Float64 returns the nearest float64 to the decimal value.
func (o Odds) Float64() float64 {
	return o.value.InexactFloat64()
}

// String renders the odds to two decimal places.
func (o Odds) String() string {
	return o.value.StringFixed(2)
}

// Add combines two prices by summing their implied percentages.
// This is how two selections are dutched into a single price, not decimal addition.
func (o Odds) Add(other Odds) (Odds, error) {
	return Percentage(sum(o.ToPercentage(), other.ToPercentage()))
}

// Mul multiplies the decimal values, as for the combined price of an accumulator.
func (o Odds) Mul(other Odds) Odds {
	return Odds{value: Round(o.value.Mul(other.value))}
}

// MulDecimal multiplies the decimal value by a plain number.
func (o Odds) MulDecimal(d decimal.Decimal) Odds {
	return Odds{value: Round(o.value.Mul(d))}
}

// Div divides the "to one" part of the price: (o-1)/n + 1.
func (o Odds) Div(n decimal.Decimal) (Odds, error) {
	if n.IsZero() {
		return Odds{}, fmt.Errorf("%w: cannot divide odds by zero", ErrDomain)
	}
	return Odds{value: sum(Quo(o.ToOne(), n), one)}, nil
}

// Cmp compares the decimal values, returning -1, 0 or +1.
func (o Odds) Cmp(other Odds) int {
	return o.value.Cmp(other.value)
}

// Equal reports whether both prices have the same decimal value.
func (o Odds) Equal(other Odds) bool {
	return o.value.Equal(other.value)
}

// LessThan reports whether o is the shorter price.
func (o Odds) LessThan(other Odds) bool {
	return o.value.LessThan(other.value)
}

// GreaterThan reports whether o is the longer price.
func (o Odds) GreaterThan(other Odds) bool {
	return o.value.GreaterThan(other.value)
}

// IsOddsAgainst reports whether the price is longer than evens.
func (o Odds) IsOddsAgainst() bool {
	return o.value.GreaterThan(two)
}

// IsOddsOn reports whether the price is shorter than evens.
func (o Odds) IsOddsOn() bool {
	return o.value.LessThan(two)
}

// ToOne returns the profit per unit stake, e.g. 5.00 → 4.
func (o Odds) ToOne() decimal.Decimal {
	return sum(o.value, one.Neg())
}

// ToPercentage returns the implied chance as a percentage, e.g. 2.00 → 50.
// The zero Odds reports zero.
func (o Odds) ToPercentage() decimal.Decimal {
	if o.value.IsZero() {
		return decimal.Zero
	}
	return Quo(hundred, o.value)
}

// ToProbability returns the implied chance as a probability, e.g. 5.00 → 0.2.
// The zero Odds reports zero.
func (o Odds) ToProbability() decimal.Decimal {
	if o.value.IsZero() {
		return decimal.Zero
	}
	return Quo(one, o.value)
}

// Shorten raises the implied chance by the given percentage points.
// Example: 5.00 shortened by 5 → 4.00
func (o Odds) Shorten(points decimal.Decimal) (Odds, error) {
	return Percentage(sum(o.ToPercentage(), points))
}

// Lengthen lowers the implied chance by the given percentage points.
// Example: 4.00 lengthened by 5 → 5.00
func (o Odds) Lengthen(points decimal.Decimal) (Odds, error) {
	return Percentage(sum(o.ToPercentage(), points.Neg()))
}
