package market

import (
	"fmt"

	"github.com/shopspring/decimal"

	"betmath/internal/odds"
)

var hundred = decimal.NewFromInt(100)

// Percentage returns the book percentage: the sum of implied percentages of the priced runners.
// Example: 2, 4, 5, 10 → 105
func (m *Market[R]) Percentage() decimal.Decimal {
	total := decimal.Zero
	for _, r := range m.runners {
		if o, ok := m.prices[r]; ok {
			total = odds.Round(total.Add(o.ToPercentage()))
		}
	}
	return total
}

func (m *Market[R]) fairPercentage() decimal.Decimal {
	return hundred.Mul(decimal.NewFromInt(int64(m.places)))
}

// OverroundPerRunner spreads the excess over a fair book evenly across all runners.
func (m *Market[R]) OverroundPerRunner() (decimal.Decimal, error) {
	if m.Len() == 0 {
		return decimal.Zero, fmt.Errorf("overround per runner: %w", ErrEmptyMarket)
	}
	excess := odds.Round(m.Percentage().Sub(m.fairPercentage()))
	return odds.Quo(excess, decimal.NewFromInt(int64(m.Len()))), nil
}

// Favourites returns every priced runner sharing the shortest price, in market order.
func (m *Market[R]) Favourites() []R {
	var (
		shortest odds.Odds
		found    bool
	)
	for _, r := range m.runners {
		if o, ok := m.prices[r]; ok && (!found || o.LessThan(shortest)) {
			shortest, found = o, true
		}
	}

	var favs []R
	for _, r := range m.runners {
		if o, ok := m.prices[r]; ok && o.Equal(shortest) {
			favs = append(favs, r)
		}
	}
	return favs
}

// IsOverround reports whether the book favours the layer.
func (m *Market[R]) IsOverround() bool {
	return m.Percentage().GreaterThan(m.fairPercentage())
}

// IsFair reports whether the book has no margin either way.
func (m *Market[R]) IsFair() bool {
	return m.Percentage().Equal(m.fairPercentage())
}

// IsOverbroke reports whether the book favours the backer.
func (m *Market[R]) IsOverbroke() bool {
	return m.Percentage().LessThan(m.fairPercentage())
}

// Without returns a new market without the given runners. Remaining prices
// and the number of places are unchanged.
func (m *Market[R]) Without(runners ...R) *Market[R] {
	drop := make(map[R]struct{}, len(runners))
	for _, r := range runners {
		drop[r] = struct{}{}
	}

	out := New[R]()
	out.places = m.places
	for _, r := range m.runners {
		if _, skip := drop[r]; skip {
			continue
		}
		if o, ok := m.prices[r]; ok {
			out.Set(r, o)
		} else {
			out.SetUnpriced(r)
		}
	}
	return out
}

// ShareFor returns r's implied percentage as a share of the whole book.
func (m *Market[R]) ShareFor(r R) (decimal.Decimal, error) {
	if !m.Has(r) {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrUnknownRunner, r)
	}
	o, ok := m.prices[r]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrUnpriced, r)
	}
	return odds.Quo(odds.Round(o.ToPercentage().Mul(hundred)), m.Percentage()), nil
}
