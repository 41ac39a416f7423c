package odds

import (
	"fmt"
	"strings"
)

var standardFractionals = buildStandardLadder()

// buildStandardLadder returns the UK bookmaker ladder: the odds-against
// prices followed by their odds-on reciprocals. 1/1 appears once.
func buildStandardLadder() []string {
	var against []string
	for x := 1; x <= 10; x++ {
		against = append(against, fmt.Sprintf("%d/1", x))
	}
	for x := 12; x <= 22; x += 2 {
		against = append(against, fmt.Sprintf("%d/1", x))
	}
	for _, x := range []int{25, 33, 40, 50, 66, 80, 100, 150, 200, 250, 500, 1000} {
		against = append(against, fmt.Sprintf("%d/1", x))
	}
	for x := 5; x <= 15; x += 2 {
		against = append(against, fmt.Sprintf("%d/2", x))
	}
	against = append(against, "5/4", "9/4", "11/8", "13/8", "15/8", "10/3", "6/4", "11/10")

	ladder := append([]string(nil), against...)
	for _, f := range against[1:] {
		num, den, _ := strings.Cut(f, "/")
		ladder = append(ladder, den+"/"+num)
	}
	return ladder
}

// StandardFractionals returns a copy of the standard UK fractional ladder.
func StandardFractionals() []string {
	return append([]string(nil), standardFractionals...)
}

// ToFractional returns the entry of set closest to o, written in lowest terms
// with delim between numerator and denominator. The first of equally close
// entries wins.
// Example: 4.27 against [3/1 10/3 7/2] → "10/3"
func (o Odds) ToFractional(set []string, delim string) (string, error) {
	if len(set) == 0 {
		return "", fmt.Errorf("%w: fractional odds set contains no odds", ErrDomain)
	}

	var (
		bestNum, bestDen string
		bestDiff         Odds
		found            bool
	)
	for _, entry := range set {
		r, err := parseFraction(entry)
		if err != nil {
			return "", fmt.Errorf("fractional set entry %q: %w", entry, err)
		}
		candidate := Odds{value: sum(ratToDecimal(r), one)}
		diff := Odds{value: o.value.Sub(candidate.value).Abs()}
		if !found || diff.LessThan(bestDiff) {
			bestNum, bestDen = r.Num().String(), r.Denom().String()
			bestDiff = diff
			found = true
		}
	}
	return bestNum + delim + bestDen, nil
}

// ToStandardFractional returns the closest price on the standard ladder, e.g. "9/4".
func (o Odds) ToStandardFractional() string {
	// Every ladder entry parses, so the error is always nil.
	s, _ := o.ToFractional(standardFractionals, "/")
	return s
}
