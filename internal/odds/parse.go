package odds

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse reads odds written in any common notation:
//
//	evens, evs      2.00
//	9/4, 9-4, 9:4   fractional
//	+138, -200      moneyline
//	40%             implied percentage
//	3.25            decimal
//
// Decimal odds must be greater than 1.
func Parse(s string) (Odds, error) {
	in := strings.TrimSpace(s)
	switch lower := strings.ToLower(in); {
	case in == "":
		return Odds{}, fmt.Errorf("%w: empty odds", ErrDomain)
	case lower == "evens" || lower == "evs" || lower == "evn":
		return Evens(), nil
	case strings.HasSuffix(in, "%"):
		v, err := decimal.NewFromString(strings.TrimSpace(strings.TrimSuffix(in, "%")))
		if err != nil {
			return Odds{}, fmt.Errorf("parsing percentage %q: %w", s, err)
		}
		return Percentage(v)
	case in[0] == '+' || in[0] == '-':
		return MoneylineString(in)
	case strings.ContainsAny(in, "/:-"):
		return FractionalString(in)
	}

	return parseDecimal(in)
}

// parseDecimal reads plain decimal odds, which must be greater than 1.
func parseDecimal(s string) (Odds, error) {
	o, err := FromString(s)
	if err != nil {
		return Odds{}, err
	}
	if !o.value.GreaterThan(one) {
		return Odds{}, fmt.Errorf("%w: decimal odds %s must be greater than 1", ErrDomain, s)
	}
	return o, nil
}
