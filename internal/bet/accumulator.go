package bet

import (
	"fmt"

	"github.com/shopspring/decimal"

	"betmath/internal/odds"
)

// Fold is the number of selections an accumulator must have.
type Fold int

const (
	AnyFold Fold = 0
	Double  Fold = 2
	Treble  Fold = 3
	MaxFold Fold = 20
)

var foldNames = []string{
	4: "Four", 5: "Five", 6: "Six", 7: "Seven", 8: "Eight", 9: "Nine", 10: "Ten",
	11: "Eleven", 12: "Twelve", 13: "Thirteen", 14: "Fourteen", 15: "Fifteen",
	16: "Sixteen", 17: "Seventeen", 18: "Eighteen", 19: "Nineteen", 20: "Twenty",
}

// String returns the bookmaker name for the fold, e.g. "Treble" or "SevenFold".
func (f Fold) String() string {
	switch {
	case f == AnyFold:
		return "Accumulator"
	case f == Double:
		return "Double"
	case f == Treble:
		return "Treble"
	case f > Treble && f <= MaxFold:
		return foldNames[f] + "Fold"
	default:
		return fmt.Sprintf("Fold(%d)", int(f))
	}
}

func (f Fold) valid() bool {
	return f == AnyFold || (f >= Double && f <= MaxFold)
}

// Selection is one leg of an accumulator. A nil End means the leg has finished.
type Selection struct {
	Odds odds.Odds
	Win  Condition
	End  Condition
}

// NewAccumulator combines selections into one bet at the product of their odds.
// It wins only if every leg wins and can be settled once every leg has ended.
// A fold other than AnyFold requires exactly that many selections.
func NewAccumulator(stake decimal.Decimal, fold Fold, selections []Selection, opts ...Option) (*Bet, error) {
	if !fold.valid() {
		return nil, fmt.Errorf("%w: unsupported fold %d", ErrInvalidBet, int(fold))
	}
	if fold != AnyFold && len(selections) != int(fold) {
		return nil, fmt.Errorf("%w: %s must have %d selections, got %d", ErrSelectionCount, fold, int(fold), len(selections))
	}
	if len(selections) == 0 {
		return nil, fmt.Errorf("%w: accumulator needs at least one selection", ErrSelectionCount)
	}

	legs := append([]Selection(nil), selections...)
	combined := odds.FromInt(1)
	for i, s := range legs {
		if s.Win == nil {
			return nil, fmt.Errorf("%w: selection %d has no win condition", ErrInvalidBet, i+1)
		}
		combined = combined.Mul(s.Odds)
	}

	win := func() bool {
		for _, s := range legs {
			if !s.Win() {
				return false
			}
		}
		return true
	}
	end := func() bool {
		for _, s := range legs {
			if s.End != nil && !s.End() {
				return false
			}
		}
		return true
	}

	opts = append([]Option{WithEndCondition(end)}, opts...)
	return New(stake, combined, win, opts...)
}

// NewDouble is NewAccumulator with exactly two selections.
func NewDouble(stake decimal.Decimal, selections []Selection, opts ...Option) (*Bet, error) {
	return NewAccumulator(stake, Double, selections, opts...)
}

// NewTreble is NewAccumulator with exactly three selections.
func NewTreble(stake decimal.Decimal, selections []Selection, opts ...Option) (*Bet, error) {
	return NewAccumulator(stake, Treble, selections, opts...)
}
