package market

import (
	"fmt"

	"github.com/shopspring/decimal"

	"betmath/internal/odds"
)

// Meld combines two markets with equal weighting. See MeldWeighted.
func (m *Market[R]) Meld(other *Market[R]) (*Market[R], error) {
	return m.MeldWeighted(other, decimal.NewFromInt(50))
}

// MeldWeighted returns a new win market whose runner percentages are the
// weighted average of both markets' fair percentages, with weight (0-100)
// given to other. Both markets are fared in place with ApplyMargin(0) first;
// pass a Copy to keep an input untouched.
func (m *Market[R]) MeldWeighted(other *Market[R], weight decimal.Decimal) (*Market[R], error) {
	if !m.sameRunners(other) {
		return nil, ErrRunnerMismatch
	}
	if weight.IsNegative() || weight.GreaterThan(hundred) {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidWeight, weight)
	}
	if err := m.requirePriced(); err != nil {
		return nil, err
	}
	if err := other.requirePriced(); err != nil {
		return nil, err
	}

	if _, err := m.ApplyMargin(decimal.Zero); err != nil {
		return nil, fmt.Errorf("faring market: %w", err)
	}
	if _, err := other.ApplyMargin(decimal.Zero); err != nil {
		return nil, fmt.Errorf("faring other market: %w", err)
	}

	selfWeight := hundred.Sub(weight)
	melded := New(m.runners...)
	for _, r := range m.runners {
		ours := odds.Quo(odds.Round(m.prices[r].ToPercentage().Mul(selfWeight)), hundred)
		theirs := odds.Quo(odds.Round(other.prices[r].ToPercentage().Mul(weight)), hundred)
		pct := odds.Round(ours.Add(theirs))
		price, err := odds.Percentage(pct)
		if err != nil {
			return nil, fmt.Errorf("melding %v: %w", r, err)
		}
		melded.Set(r, price)
	}
	return melded, nil
}

func (m *Market[R]) sameRunners(other *Market[R]) bool {
	if other == nil || m.Len() != other.Len() {
		return false
	}
	for _, r := range m.runners {
		if !other.Has(r) {
			return false
		}
	}
	return true
}
