package odds

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFractional(t *testing.T) {
	tests := []struct {
		name     string
		num, den int64
		expected string
	}{
		{"Nine to four", 9, 4, "3.25"},
		{"Evens", 1, 1, "2"},
		{"Odds on", 2, 5, "1.4"},
		{"Long shot", 100, 1, "101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := Fractional(tt.num, tt.den)
			require.NoError(t, err)
			assert.True(t, o.Decimal().Equal(dec(tt.expected)), "Fractional(%d, %d) = %s, want %s", tt.num, tt.den, o.Decimal(), tt.expected)
		})
	}

	thirds, err := Fractional(10, 3)
	require.NoError(t, err)
	assert.InDelta(t, 4.333333, thirds.Float64(), 0.000001)

	_, err = Fractional(1, 0)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestFractionalString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"Slash", "9/4", "3.25", false},
		{"Dash", "9-4", "3.25", false},
		{"Colon", "9:4", "3.25", false},
		{"Bare integer", "5", "6", false},
		{"Spaces", " 9 / 4 ", "3.25", false},
		{"Zero denominator", "9/0", "", true},
		{"Too many parts", "1/2/3", "", true},
		{"Garbage", "nine/four", "", true},
		{"Empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := FractionalString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDomain)
				return
			}
			require.NoError(t, err)
			assert.True(t, o.Decimal().Equal(dec(tt.expected)), "FractionalString(%q) = %s", tt.input, o)
		})
	}
}

func TestFractionalRat(t *testing.T) {
	o, err := FractionalRat(big.NewRat(9, 4))
	require.NoError(t, err)
	assert.True(t, o.Equal(FromFloat(3.25)))

	_, err = FractionalRat(nil)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestInverted(t *testing.T) {
	o, err := Inverted(dec("1.25"))
	require.NoError(t, err)
	assert.True(t, o.Equal(FromInt(5)), "got %s", o)

	o, err = Inverted(dec("5"))
	require.NoError(t, err)
	assert.True(t, o.Equal(FromFloat(1.25)), "got %s", o)

	_, err = Inverted(dec("1"))
	assert.ErrorIs(t, err, ErrDomain)
}

func TestMoneyline(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
		wantErr  bool
	}{
		{"Underdog +138", 138, "2.38", false},
		{"Even money +100", 100, "2", false},
		{"Even money -100", -100, "2", false},
		{"Favourite -200", -200, "1.5", false},
		{"Heavy favourite -400", -400, "1.25", false},
		{"Too small positive", 99, "", true},
		{"Too small negative", -99, "", true},
		{"Zero", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := Moneyline(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDomain)
				return
			}
			require.NoError(t, err)
			assert.True(t, o.Decimal().Equal(dec(tt.expected)), "Moneyline(%d) = %s, want %s", tt.input, o, tt.expected)
		})
	}
}

func TestMoneylineString(t *testing.T) {
	o, err := MoneylineString("+138")
	require.NoError(t, err)
	assert.Equal(t, "2.38", o.String())

	o, err = MoneylineString("-200")
	require.NoError(t, err)
	assert.Equal(t, "1.50", o.String())

	_, err = MoneylineString("plus138")
	assert.Error(t, err)
}

func TestToMoneyline(t *testing.T) {
	tests := []struct {
		name     string
		odds     Odds
		expected string
	}{
		{"Odds against", FromFloat(2.38), "+138"},
		{"Evens", Evens(), "-100"},
		{"Odds on", FromFloat(1.5), "-200"},
		{"Truncated", New(dec("4.3333")), "+333"},
		{"Truncated odds on", FromFloat(1.3), "-333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.odds.ToMoneyline()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := FromInt(1).ToMoneyline()
	assert.ErrorIs(t, err, ErrDomain)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"Forty percent", "40", "2.5", false},
		{"Fifty percent", "50", "2", false},
		{"Twenty percent", "20", "5", false},
		{"Thirty percent", "30", "3.333333333333333333333333333", false},
		{"Forty-five percent", "45", "2.222222222222222222222222222", false},
		{"Thirty-three percent", "33", "3.030303030303030303030303030", false},
		{"Zero", "0", "", true},
		{"Negative", "-10", "", true},
		{"Hundred", "100", "", true},
		{"Over hundred", "120", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := Percentage(dec(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDomain)
				return
			}
			require.NoError(t, err)
			assert.True(t, o.Decimal().Equal(dec(tt.expected)), "Percentage(%s) = %s", tt.input, o)
			assert.True(t, o.ToPercentage().Equal(dec(tt.input)))
		})
	}
}

func TestProbability(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0.2", "5"},
		{"0.3", "3.333333333333333333333333333"},
		{"0.45", "2.222222222222222222222222222"},
		{"0.15", "6.666666666666666666666666667"},
	}

	for _, tt := range tests {
		o, err := Probability(dec(tt.input))
		require.NoError(t, err)
		assert.True(t, o.Decimal().Equal(dec(tt.expected)), "Probability(%s) = %s", tt.input, o.Decimal())
		assert.True(t, o.ToProbability().Equal(dec(tt.input)), "Probability(%s) round trip = %s", tt.input, o.ToProbability())
	}

	for _, bad := range []string{"0", "1", "-0.5", "1.5"} {
		_, err := Probability(dec(bad))
		assert.ErrorIs(t, err, ErrDomain, "Probability(%s)", bad)
	}
}

func TestToOne(t *testing.T) {
	assert.True(t, FromInt(5).ToOne().Equal(dec("4")))
	assert.True(t, FromFloat(1.25).ToOne().Equal(dec("0.25")))
}
