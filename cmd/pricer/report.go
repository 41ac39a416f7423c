package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"betmath/internal/config"
	"betmath/internal/market"
	"betmath/internal/odds"
	"betmath/internal/staking"
)

// reporter prints market tables. The first write error is kept in err and
// later writes are skipped.
type reporter struct {
	cfg config.Config
	w   io.Writer
	err error
}

func (r *reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// market prints one row per runner followed by the book summary. When
// offered is a market with the same places, each row also shows the Kelly
// stake for backing the offered price if m's price is the true one.
func (r *reporter) market(title string, m *market.Market[string], offered *market.Market[string]) {
	withKelly := offered != nil && offered.Places() == m.Places()

	r.printf("%s, %d runners, %d %s\n", title, m.Len(), m.Places(), plural(m.Places(), "place", "places"))
	if r.err != nil {
		return
	}

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	header := "RUNNER\tDECIMAL\tFRACTIONAL\tMONEYLINE\tPCT"
	if withKelly {
		header += "\tKELLY"
	}
	fmt.Fprintln(tw, header)

	for _, name := range m.Runners() {
		o, ok := m.Get(name)
		if !ok {
			row := name + "\t-\t-\t-\t-"
			if withKelly {
				row += "\t-"
			}
			fmt.Fprintln(tw, row)
			continue
		}

		row := fmt.Sprintf("%s\t%s\t%s\t%s\t%s", name, o, r.fractional(o), moneyline(o), o.ToPercentage().StringFixed(2))
		if withKelly {
			row += "\t" + r.kelly(o, offered, name)
		}
		fmt.Fprintln(tw, row)
	}
	if err := tw.Flush(); err != nil {
		r.err = err
		return
	}

	r.printf("Book: %s%%\n", m.Percentage().StringFixed(2))
	if orpr, err := m.OverroundPerRunner(); err == nil {
		r.printf("Overround per runner: %s\n", orpr.StringFixed(3))
	}
	if favs := m.Favourites(); len(favs) > 0 {
		r.printf("%s: %s\n", plural(len(favs), "Favourite", "Favourites"), strings.Join(favs, ", "))
	}
	if withKelly {
		r.printf("Bank: %.2f, Kelly fraction: %v, max stake: %s\n", r.cfg.Bank, r.cfg.KellyFraction, config.FormatMaxStake(r.cfg.MaxStake))
	}
}

func (r *reporter) fractional(o odds.Odds) string {
	s, err := o.ToFractional(odds.StandardFractionals(), r.cfg.FractionDelim)
	if err != nil {
		return "-"
	}
	return s
}

func (r *reporter) kelly(trueOdds odds.Odds, offered *market.Market[string], name string) string {
	price, ok := offered.Get(name)
	if !ok {
		return "-"
	}
	stake, err := staking.FractionalKelly(trueOdds, price,
		decimal.NewFromFloat(r.cfg.Bank), decimal.NewFromFloat(r.cfg.KellyFraction))
	if err != nil {
		return "-"
	}
	if r.cfg.MaxStake > 0 {
		stake = decimal.Min(stake, decimal.NewFromFloat(r.cfg.MaxStake))
	}
	return stake.StringFixed(2)
}

func moneyline(o odds.Odds) string {
	s, err := o.ToMoneyline()
	if err != nil {
		return "-"
	}
	return s
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
