package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"betmath/internal/config"
	"betmath/internal/market"
	"betmath/internal/marketfile"
)

const usage = `usage: pricer [flags] market.yaml

Prints a market's prices in every notation with its book percentage, then
reprices it. The first matching operation runs:

  -equalise        equal prices for every runner, no margin
  -fill            price unpriced runners to reach -margin
  -meld FILE       blend with a second market, -weight percent to FILE
  -places N        derive an N-place market (Harville, optional -discounts)
  -power           remove margin with the power method
  (default)        rescale the book to 100 + -margin

Flags default to the PRICER_* environment variables.
`

type options struct {
	path     string
	meldPath string
	fill     bool
	equalise bool
	power    bool
	asYAML   bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("pricer: ")

	cfg := config.Load()

	var (
		opts      options
		discounts string
	)
	flag.Float64Var(&cfg.Margin, "margin", cfg.Margin, "target margin over a fair book, in percentage points")
	flag.IntVar(&cfg.Places, "places", cfg.Places, "number of places to derive")
	flag.StringVar(&discounts, "discounts", config.FormatDiscounts(cfg.Discounts), "comma-separated Harville discount exponents, one per place")
	flag.Float64Var(&cfg.MeldWeight, "weight", cfg.MeldWeight, "percentage weight given to the -meld market")
	flag.StringVar(&cfg.FractionDelim, "delim", cfg.FractionDelim, "fractional odds separator")
	flag.Float64Var(&cfg.Bank, "bank", cfg.Bank, "bank used for Kelly stakes")
	flag.Float64Var(&cfg.KellyFraction, "kelly", cfg.KellyFraction, "fraction of Kelly to stake")
	flag.Float64Var(&cfg.MaxStake, "max-stake", cfg.MaxStake, "cap on any Kelly stake, 0 for no cap")
	flag.StringVar(&opts.meldPath, "meld", "", "market file to meld with")
	flag.BoolVar(&opts.fill, "fill", false, "fill unpriced runners")
	flag.BoolVar(&opts.equalise, "equalise", false, "equalise the market")
	flag.BoolVar(&opts.power, "power", false, "remove margin with the power method")
	flag.BoolVar(&opts.asYAML, "yaml", false, "write the repriced market as YAML instead of a table")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.path = flag.Arg(0)

	if discounts != "none" {
		d, err := config.ParseDiscounts(discounts)
		if err != nil {
			log.Fatalf("Invalid -discounts: %v", err)
		}
		cfg.Discounts = d
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := run(cfg, opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config.Config, opts options, w io.Writer) error {
	file, err := marketfile.Load(opts.path)
	if err != nil {
		return err
	}
	m, err := file.Market()
	if err != nil {
		return fmt.Errorf("%s: %w", opts.path, err)
	}

	offered := m.Copy()
	result, label, err := reprice(cfg, opts, m)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	if opts.asYAML {
		return marketfile.FromMarket(file.Event, result).Encode(w)
	}

	r := reporter{cfg: cfg, w: w}
	r.market(file.Event+" (as offered)", offered, nil)
	fmt.Fprintln(w)
	r.market(file.Event+" ("+label+")", result, offered)
	return r.err
}

// reprice applies the operation selected by opts, returning the new market
// and a short description of what was done.
func reprice(cfg config.Config, opts options, m *market.Market[string]) (*market.Market[string], string, error) {
	margin := decimal.NewFromFloat(cfg.Margin)

	switch {
	case opts.equalise:
		out, err := m.Equalise()
		return out, "equalised", err

	case opts.fill:
		out, err := m.Fill(margin)
		return out, fmt.Sprintf("filled to %s%%", hundredPlus(margin)), err

	case opts.meldPath != "":
		label := fmt.Sprintf("melded %v%% with %s", cfg.MeldWeight, opts.meldPath)
		otherFile, err := marketfile.Load(opts.meldPath)
		if err != nil {
			return nil, label, err
		}
		other, err := otherFile.Market()
		if err != nil {
			return nil, label, err
		}
		log.Printf("Melding %d runners from %s", other.Len(), opts.meldPath)
		out, err := m.MeldWeighted(other, decimal.NewFromFloat(cfg.MeldWeight))
		if err != nil {
			return nil, label, err
		}
		if !margin.IsZero() {
			if _, err := out.ApplyMargin(margin); err != nil {
				return nil, label, err
			}
		}
		return out, label, nil

	case cfg.Places > 1:
		label := fmt.Sprintf("%d places, discounts %s", cfg.Places, config.FormatDiscounts(cfg.Discounts))
		log.Printf("Deriving %d-place market from %d runners", cfg.Places, m.Len())
		out, err := m.Derive(cfg.Places, cfg.Discounts...)
		return out, label, err

	case opts.power:
		out, err := m.RemoveMarginPower()
		return out, "power method", err

	default:
		out, err := m.ApplyMargin(margin)
		return out, fmt.Sprintf("book at %s%%", hundredPlus(margin)), err
	}
}

func hundredPlus(margin decimal.Decimal) string {
	return decimal.NewFromInt(100).Add(margin).String()
}
