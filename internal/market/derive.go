package market

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"betmath/internal/odds"
)

// Derive builds a place market paying on the given number of places from a
// win market, using the Harville formula. The chance of runners finishing in
// a given order is the product, over each position, of the runner's win
// probability divided by the total win probability of the runners not yet
// placed. A runner's place probability is the sum over every ordering of
// `places` runners it appears in.
//
// Discounts, if given, are exponents applied to every win probability at the
// matching position, damping the formula for lower places. At least `places`
// discounts are needed; fewer returns an *IndexError.
//
// The receiver is fared in place with ApplyMargin(0). The work grows with
// n!/(n-places)! so Derive is meant for ordinary race fields.
// Example: three runners at 3, Derive(2) → three runners at 1.5
func (m *Market[R]) Derive(places int, discounts ...float64) (*Market[R], error) {
	if m.places != 1 {
		return nil, ErrNotWinMarket
	}
	if places <= 1 || places >= m.Len() {
		return nil, fmt.Errorf("%w: %d places for %d runners", ErrInvalidPlaces, places, m.Len())
	}
	if len(discounts) > 0 && len(discounts) < places {
		return nil, &IndexError{Index: len(discounts), Len: len(discounts)}
	}
	if err := m.requirePriced(); err != nil {
		return nil, err
	}
	if _, err := m.ApplyMargin(decimal.Zero); err != nil {
		return nil, fmt.Errorf("faring win market: %w", err)
	}

	n := m.Len()
	// weights[pos][i] is runner i's win probability with the discount for pos applied.
	weights := make([][]float64, places)
	for pos := range weights {
		weights[pos] = make([]float64, n)
		for i, r := range m.runners {
			p := m.prices[r].ToProbability().InexactFloat64()
			if len(discounts) > 0 {
				p = math.Pow(p, discounts[pos])
			}
			weights[pos][i] = p
		}
	}

	w := &harville{
		weights: weights,
		used:    make([]bool, n),
		order:   make([]int, 0, places),
		placed:  make([]float64, n),
	}
	w.walk(1)

	derived := New(m.runners...)
	derived.places = places
	for i, r := range m.runners {
		price, err := odds.Probability(decimal.NewFromFloat(w.placed[i]))
		if err != nil {
			return nil, fmt.Errorf("pricing %v to place: %w", r, err)
		}
		derived.Set(r, price)
	}
	return derived, nil
}

// harville accumulates place probabilities over every ordering of runners.
type harville struct {
	weights [][]float64
	used    []bool
	order   []int
	placed  []float64
}

func (h *harville) walk(prob float64) {
	pos := len(h.order)
	if pos == len(h.weights) {
		for _, i := range h.order {
			h.placed[i] += prob
		}
		return
	}

	remaining := 0.0
	for i, w := range h.weights[pos] {
		if !h.used[i] {
			remaining += w
		}
	}
	if remaining == 0 {
		return
	}

	for i, w := range h.weights[pos] {
		if h.used[i] {
			continue
		}
		h.used[i] = true
		h.order = append(h.order, i)
		h.walk(prob * w / remaining)
		h.order = h.order[:pos]
		h.used[i] = false
	}
}
