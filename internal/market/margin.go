package market

import (
	"fmt"

	"github.com/shopspring/decimal"

	"betmath/internal/odds"
)

// ApplyMargin rescales every priced runner so the book totals 100+margin,
// keeping the runners' relative chances. The target is absolute, so a 10
// margin on a 105% book gives 110%, not 115%. A negative margin removes margin.
// Unpriced runners are left alone. The receiver is modified and returned.
func (m *Market[R]) ApplyMargin(margin decimal.Decimal) (*Market[R], error) {
	target := odds.Round(hundred.Add(margin))
	if !target.IsPositive() {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidMargin, margin)
	}
	current := m.Percentage()
	if current.IsZero() {
		return nil, fmt.Errorf("applying margin: %w", ErrEmptyMarket)
	}

	adjustment := odds.Quo(target, current)
	for r, o := range m.prices {
		m.prices[r] = odds.New(odds.Quo(o.Decimal(), adjustment))
	}
	return m, nil
}

// Fill prices every unpriced runner equally so that the whole book reaches
// 100+margin. The receiver is modified and returned.
// Example: three runners at 4 and one unpriced → the unpriced runner gets 4
func (m *Market[R]) Fill(margin decimal.Decimal) (*Market[R], error) {
	unpriced := m.Unpriced()
	if len(unpriced) == 0 {
		return nil, ErrFullyPriced
	}

	missing := odds.Round(odds.Round(hundred.Add(margin)).Sub(m.Percentage()))
	if !missing.IsPositive() {
		return nil, fmt.Errorf("%w: priced runners total %s%%", ErrMarginExceeded, m.Percentage())
	}

	share := odds.Quo(missing, decimal.NewFromInt(int64(len(unpriced))))
	price, err := odds.Percentage(share)
	if err != nil {
		return nil, fmt.Errorf("filling %d runners: %w", len(unpriced), err)
	}
	for _, r := range unpriced {
		m.Set(r, price)
	}
	return m, nil
}

// Wipe marks every runner unpriced and returns the receiver.
func (m *Market[R]) Wipe() *Market[R] {
	m.prices = nil
	return m
}

// Clear is an alias for Wipe.
func (m *Market[R]) Clear() *Market[R] {
	return m.Wipe()
}

// Equalise gives every runner the same price with no margin.
// Example: four runners at 2.5 → four runners at 4
func (m *Market[R]) Equalise() (*Market[R], error) {
	return m.Wipe().Fill(decimal.Zero)
}
