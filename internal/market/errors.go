package market

import (
	"errors"
	"fmt"
)

// ErrPrecondition is the parent of every structural misuse error in this package.
var ErrPrecondition = errors.New("market precondition failed")

var (
	ErrNotWinMarket   = fmt.Errorf("%w: derivation only possible from win market", ErrPrecondition)
	ErrInvalidPlaces  = fmt.Errorf("%w: invalid number of places", ErrPrecondition)
	ErrRunnerMismatch = fmt.Errorf("%w: markets must have the same runners", ErrPrecondition)
	ErrInvalidWeight  = fmt.Errorf("%w: percentage must be between 0 and 100", ErrPrecondition)
	ErrMarginExceeded = fmt.Errorf("%w: market already equals or exceeds specified margin", ErrPrecondition)
	ErrFullyPriced    = fmt.Errorf("%w: market has no unpriced runners", ErrPrecondition)
	ErrUnpriced       = fmt.Errorf("%w: market has unpriced runners", ErrPrecondition)
	ErrUnknownRunner  = fmt.Errorf("%w: runner not in market", ErrPrecondition)
	ErrEmptyMarket    = fmt.Errorf("%w: market has no priced runners", ErrPrecondition)
	ErrInvalidMargin  = fmt.Errorf("%w: margin must be greater than -100", ErrPrecondition)
)

// ErrNoConvergence reports a power-method search that found no exponent in range.
var ErrNoConvergence = errors.New("power method did not converge")

// IndexError reports a discount lookup past the end of the discounts supplied to Derive.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("discount index %d out of range [0:%d]", e.Index, e.Len)
}
