package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFractional(t *testing.T) {
	tests := []struct {
		name     string
		odds     Odds
		set      []string
		delim    string
		expected string
	}{
		{"Closest entry", FromFloat(4.27), []string{"3/1", "10/3", "7/2", "4/1"}, "/", "10/3"},
		{"Finer set", FromFloat(4.27), []string{"3/1", "13/4", "10/3", "7/2", "4/1"}, "/", "13/4"},
		{"Custom delimiter", FromFloat(4.27), []string{"3/1", "13/4", "10/3", "7/2", "4/1"}, ":", "13:4"},
		{"Dash delimiter", FromFloat(4.27), []string{"3/1", "13/4", "10/3"}, "-", "13-4"},
		{"Reduced", FromFloat(2.5), []string{"6/4", "3/1"}, "/", "3/2"},
		{"First tie wins", FromInt(3), []string{"3/2", "5/2"}, "/", "3/2"},
		{"Mixed separators in set", FromFloat(3.25), []string{"2-1", "9:4"}, "/", "9/4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.odds.ToFractional(tt.set, tt.delim)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToFractionalErrors(t *testing.T) {
	_, err := Evens().ToFractional(nil, "/")
	assert.ErrorIs(t, err, ErrDomain)

	_, err = Evens().ToFractional([]string{"1/1", "x/y"}, "/")
	assert.ErrorIs(t, err, ErrDomain)
}

func TestToStandardFractional(t *testing.T) {
	tests := []struct {
		name     string
		odds     Odds
		expected string
	}{
		{"Evens", Evens(), "1/1"},
		{"Nine to four", FromFloat(3.25), "9/4"},
		{"Odds on", FromFloat(1.4), "2/5"},
		{"Between rungs", FromFloat(4.27), "10/3"},
		{"Longest rung", FromInt(5000), "1000/1"},
		{"Shortest rung", FromFloat(1.0001), "1/1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.odds.ToStandardFractional())
		})
	}
}

func TestStandardFractionals(t *testing.T) {
	ladder := StandardFractionals()

	assert.Equal(t, "1/1", ladder[0])
	assert.Contains(t, ladder, "11/10")
	assert.Contains(t, ladder, "10/11")
	assert.Contains(t, ladder, "1/1000")

	count := 0
	for _, f := range ladder {
		if f == "1/1" {
			count++
		}
	}
	assert.Equal(t, 1, count, "1/1 should appear once")

	ladder[0] = "changed"
	assert.Equal(t, "1/1", StandardFractionals()[0], "callers get a copy")
}

func TestStandardFractionalsParse(t *testing.T) {
	for _, entry := range standardFractionals {
		r, err := parseFraction(entry)
		if assert.NoError(t, err, "ladder entry %q", entry) {
			assert.Positive(t, r.Sign(), "ladder entry %q", entry)
		}
	}

	_, err := Evens().ToFractional(standardFractionals, "/")
	require.NoError(t, err, "ToStandardFractional relies on the ladder being valid")
}
