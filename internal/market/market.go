package market

import (
	"fmt"
	"strings"

	"betmath/internal/odds"
)

// Market is an ordered set of runners, each priced or unpriced, together with
// the number of places the prices pay out on. Insertion order is preserved.
type Market[R comparable] struct {
	runners []R
	prices  map[R]odds.Odds
	places  int
}

// New returns a win market of unpriced runners. Duplicate runners are ignored.
func New[R comparable](runners ...R) *Market[R] {
	m := &Market[R]{places: 1}
	for _, r := range runners {
		m.add(r)
	}
	return m
}

// FromPrices returns a win market pairing runners[i] with prices[i].
func FromPrices[R comparable](runners []R, prices []odds.Odds) (*Market[R], error) {
	if len(runners) != len(prices) {
		return nil, fmt.Errorf("%w: %d runners for %d prices", ErrRunnerMismatch, len(runners), len(prices))
	}
	m := New[R]()
	for i, r := range runners {
		m.Set(r, prices[i])
	}
	return m, nil
}

func (m *Market[R]) add(r R) {
	if m.Has(r) {
		return
	}
	m.runners = append(m.runners, r)
}

// Len returns the number of runners, priced or not.
func (m *Market[R]) Len() int {
	return len(m.runners)
}

// Places returns the number of places the prices represent. 1 is a win market.
func (m *Market[R]) Places() int {
	return m.places
}

// SetPlaces sets the number of paying places.
func (m *Market[R]) SetPlaces(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPlaces, n)
	}
	m.places = n
	return nil
}

// Runners returns the runners in market order.
func (m *Market[R]) Runners() []R {
	return append([]R(nil), m.runners...)
}

// Has reports whether r is a runner in the market.
func (m *Market[R]) Has(r R) bool {
	for _, existing := range m.runners {
		if existing == r {
			return true
		}
	}
	return false
}

// Get returns the price for r and whether r is priced.
func (m *Market[R]) Get(r R) (odds.Odds, bool) {
	o, ok := m.prices[r]
	return o, ok
}

// IsPriced reports whether r has a price.
func (m *Market[R]) IsPriced(r R) bool {
	_, ok := m.prices[r]
	return ok
}

// Set prices r, adding it to the end of the market if it is new.
func (m *Market[R]) Set(r R, o odds.Odds) {
	m.add(r)
	if m.prices == nil {
		m.prices = make(map[R]odds.Odds)
	}
	m.prices[r] = o
}

// SetUnpriced removes any price for r, adding it to the end of the market if it is new.
func (m *Market[R]) SetUnpriced(r R) {
	m.add(r)
	delete(m.prices, r)
}

// Unpriced returns the runners without a price, in market order.
func (m *Market[R]) Unpriced() []R {
	var out []R
	for _, r := range m.runners {
		if !m.IsPriced(r) {
			out = append(out, r)
		}
	}
	return out
}

// Copy returns an independent market with the same runners, prices and places.
func (m *Market[R]) Copy() *Market[R] {
	c := &Market[R]{
		runners: append([]R(nil), m.runners...),
		prices:  make(map[R]odds.Odds, len(m.prices)),
		places:  m.places,
	}
	for r, o := range m.prices {
		c.prices[r] = o
	}
	return c
}

// String renders the market as "{a: 2.00, b: -} places=1".
func (m *Market[R]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, r := range m.runners {
		if i > 0 {
			b.WriteString(", ")
		}
		price := "-"
		if o, ok := m.prices[r]; ok {
			price = o.String()
		}
		fmt.Fprintf(&b, "%v: %s", r, price)
	}
	fmt.Fprintf(&b, "} places=%d", m.places)
	return b.String()
}

func (m *Market[R]) requirePriced() error {
	if unpriced := m.Unpriced(); len(unpriced) > 0 {
		return fmt.Errorf("%w: %v", ErrUnpriced, unpriced)
	}
	return nil
}
