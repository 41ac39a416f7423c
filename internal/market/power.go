package market

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"betmath/internal/odds"
)

// RemoveMarginPower fares the market with the power method. It finds k such
// that the implied probabilities raised to k sum to the number of places, then
// prices each runner at p^k. Unlike ApplyMargin(0) this takes more margin off
// long shots than favourites, which accounts for the favourite-longshot bias.
// The receiver is modified and returned.
func (m *Market[R]) RemoveMarginPower() (*Market[R], error) {
	if m.Len() == 0 {
		return nil, fmt.Errorf("power method: %w", ErrEmptyMarket)
	}
	if err := m.requirePriced(); err != nil {
		return nil, err
	}

	probs := make([]float64, m.Len())
	for i, r := range m.runners {
		probs[i] = m.prices[r].ToProbability().InexactFloat64()
	}

	k, err := findPowerExponent(probs, float64(m.places))
	if err != nil {
		return nil, err
	}

	fair := make([]odds.Odds, len(probs))
	for i, p := range probs {
		o, err := odds.Probability(decimal.NewFromFloat(math.Pow(p, k)))
		if err != nil {
			return nil, fmt.Errorf("power method on %v: %w", m.runners[i], err)
		}
		fair[i] = o
	}
	for i, r := range m.runners {
		m.prices[r] = fair[i]
	}
	return m, nil
}

// findPowerExponent finds k such that the sum of p^k equals target by bisection.
// For 0 < p < 1 a higher k shrinks the sum, so an overround book needs k > 1
// and an overbroke book needs k < 1. k is searched in [0.01, 10].
func findPowerExponent(probs []float64, target float64) (float64, error) {
	const (
		tolerance = 1e-9
		maxIters  = 100
	)

	powerSum := func(k float64) float64 {
		sum := 0.0
		for _, p := range probs {
			sum += math.Pow(p, k)
		}
		return sum
	}

	low, high := 0.01, 10.0

	for i := 0; i < maxIters; i++ {
		mid := (low + high) / 2
		sum := powerSum(mid)

		if math.Abs(sum-target) < tolerance {
			return mid, nil
		}
		if sum > target {
			low = mid
		} else {
			high = mid
		}
	}

	k := (low + high) / 2
	if sum := powerSum(k); math.Abs(sum-target) >= tolerance {
		return 0, fmt.Errorf("%w: sum of p^k is %.6f at k=%.4f, want %v", ErrNoConvergence, sum, k, target)
	}
	return k, nil
}
