package market

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betmath/internal/odds"
)

var derby = []string{"Frankel", "Sea The Stars", "Nijinsky"}

func TestApplyMargin(t *testing.T) {
	m := priced(t, derby, 3, 3, 3)

	got, err := m.ApplyMargin(dec("20"))
	require.NoError(t, err)
	assert.Same(t, m, got)

	for _, r := range derby {
		o, _ := m.Get(r)
		assert.Equal(t, "2.50", o.String(), r)
	}
	assert.InDelta(t, 120, m.Percentage().InexactFloat64(), 1e-9)
}

func TestApplyMarginExactBook(t *testing.T) {
	tests := []struct {
		name     string
		prices   []float64
		margin   string
		expected string
	}{
		{"Fair from repeating percentages", []float64{1.5, 3, 9}, "0", "100"},
		{"Fair from overround", []float64{2, 4, 5, 10}, "0", "100"},
		{"Ten percent margin", []float64{2, 3, 7}, "10", "110"},
		{"Ten percent from four runners", []float64{2.5, 4, 6, 9}, "10", "110"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runners := greek[:len(tt.prices)]
			m := priced(t, runners, tt.prices...)

			_, err := m.ApplyMargin(dec(tt.margin))
			require.NoError(t, err)
			assert.True(t, m.Percentage().Equal(dec(tt.expected)), "book = %s, want %s", m.Percentage(), tt.expected)
			if tt.margin == "0" {
				assert.True(t, m.IsFair())
			}
		})
	}
}

func TestApplyMarginIsNotCumulative(t *testing.T) {
	m := priced(t, greek, 2, 4, 5, 10)

	_, err := m.ApplyMargin(dec("10"))
	require.NoError(t, err)
	assert.InDelta(t, 110, m.Percentage().InexactFloat64(), 1e-9)

	_, err = m.ApplyMargin(dec("10"))
	require.NoError(t, err)
	assert.InDelta(t, 110, m.Percentage().InexactFloat64(), 1e-9)
}

func TestApplyMarginKeepsProportions(t *testing.T) {
	m := priced(t, greek, 2, 4, 5, 10)
	before, err := m.ShareFor("beta")
	require.NoError(t, err)

	_, err = m.ApplyMargin(dec("-5"))
	require.NoError(t, err)
	after, err := m.ShareFor("beta")
	require.NoError(t, err)

	assert.InDelta(t, before.InexactFloat64(), after.InexactFloat64(), 1e-9)
	assert.InDelta(t, 95, m.Percentage().InexactFloat64(), 1e-9)
}

func TestApplyMarginErrors(t *testing.T) {
	_, err := New("a", "b").ApplyMargin(decimal.Zero)
	assert.ErrorIs(t, err, ErrEmptyMarket)

	_, err = priced(t, derby, 3, 3, 3).ApplyMargin(dec("-100"))
	assert.ErrorIs(t, err, ErrInvalidMargin)
}

func TestFill(t *testing.T) {
	m := priced(t, greek[:3], 4, 4, 4)
	m.SetUnpriced("delta")

	got, err := m.Fill(decimal.Zero)
	require.NoError(t, err)
	assert.Same(t, m, got)

	o, ok := m.Get("delta")
	require.True(t, ok)
	assert.True(t, o.Equal(odds.FromInt(4)), "got %s", o)
	assert.True(t, m.IsFair())
}

func TestFillSharesShortfall(t *testing.T) {
	m := New(greek...)
	m.Set("alpha", odds.FromInt(2))

	_, err := m.Fill(dec("10"))
	require.NoError(t, err)

	for _, r := range greek[1:] {
		o, _ := m.Get(r)
		assert.True(t, o.Equal(odds.FromInt(5)), "%s got %s", r, o)
	}
	assert.True(t, m.Percentage().Equal(dec("110")))
}

func TestFillSingleUnpriced(t *testing.T) {
	m := New("a", "b")
	m.Set("a", odds.FromFloat(1.6667))

	_, err := m.Fill(decimal.Zero)
	require.NoError(t, err)

	expected, err := odds.Percentage(dec("100").Sub(odds.FromFloat(1.6667).ToPercentage()))
	require.NoError(t, err)
	o, _ := m.Get("b")
	assert.True(t, o.Equal(expected))
}

func TestFillErrors(t *testing.T) {
	tests := []struct {
		name   string
		build  func() *Market[string]
		margin decimal.Decimal
		err    error
	}{
		{
			name: "Priced runners exceed target",
			build: func() *Market[string] {
				m := New("a", "b", "c")
				m.Set("a", odds.FromFloat(1.5))
				m.Set("b", odds.FromInt(3))
				return m
			},
			margin: decimal.Zero,
			err:    ErrMarginExceeded,
		},
		{
			name: "Priced runners equal target",
			build: func() *Market[string] {
				m := New("a", "b", "c")
				m.Set("a", odds.FromInt(2))
				m.Set("b", odds.FromInt(2))
				return m
			},
			margin: decimal.Zero,
			err:    ErrMarginExceeded,
		},
		{
			name: "Nothing to fill",
			build: func() *Market[string] {
				return priced(t, derby, 3, 3, 3)
			},
			margin: decimal.Zero,
			err:    ErrFullyPriced,
		},
		{
			name: "Share too large for a price",
			build: func() *Market[string] {
				return New("a")
			},
			margin: dec("10"),
			err:    odds.ErrDomain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build().Fill(tt.margin)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestWipe(t *testing.T) {
	m := priced(t, greek, 4, 4, 4, 4)

	assert.Same(t, m, m.Wipe())
	assert.Equal(t, greek, m.Unpriced())
	assert.Equal(t, 4, m.Len())

	m.Set("alpha", odds.FromInt(2))
	m.Clear()
	assert.False(t, m.IsPriced("alpha"))
}

func TestEqualise(t *testing.T) {
	m := priced(t, greek, 2.5, 2.5, 2.5, 2.5)

	_, err := m.Equalise()
	require.NoError(t, err)

	for _, r := range greek {
		o, _ := m.Get(r)
		assert.True(t, o.Equal(odds.FromInt(4)), "%s got %s", r, o)
	}
}
