package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults for configuration values.
const (
	DefaultMargin        = 0.0
	DefaultPlaces        = 1
	DefaultMeldWeight    = 50.0
	DefaultFractionDelim = "/"
	DefaultBank          = 100.0
	DefaultKellyFraction = 0.25
)

// Config holds all pricer configuration.
type Config struct {
	Margin    float64   // Target margin in percentage points over a fair book
	Places    int       // Places to derive when greater than 1
	Discounts []float64 // Harville discount exponents, one per place

	MeldWeight    float64 // Weight (0-100) given to the second market when melding
	FractionDelim string  // Separator printed between numerator and denominator

	// Staking settings
	Bank          float64
	KellyFraction float64 // Fraction of Kelly to use (e.g., 0.25 = quarter Kelly)
	MaxStake      float64 // 0 = no cap
}

// Load reads configuration from environment variables (and .env file if present).
func Load() Config {
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	cfg := Config{
		Margin:        DefaultMargin,
		Places:        DefaultPlaces,
		MeldWeight:    DefaultMeldWeight,
		FractionDelim: DefaultFractionDelim,
		Bank:          DefaultBank,
		KellyFraction: DefaultKellyFraction,
		MaxStake:      0, // 0 = no cap
	}

	if v := os.Getenv("PRICER_MARGIN"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Margin = f
		}
	}

	if v := os.Getenv("PRICER_PLACES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Places = n
		}
	}

	if v := os.Getenv("PRICER_DISCOUNTS"); v != "" {
		if d, err := ParseDiscounts(v); err == nil {
			cfg.Discounts = d
		}
	}

	if v := os.Getenv("PRICER_MELD_WEIGHT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MeldWeight = f
		}
	}

	if v, ok := os.LookupEnv("PRICER_FRACTION_DELIM"); ok {
		cfg.FractionDelim = v
	}

	// Staking settings
	if v := os.Getenv("PRICER_BANK"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Bank = f
		}
	}

	if v := os.Getenv("PRICER_KELLY_FRACTION"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.KellyFraction = f
		}
	}

	if v := os.Getenv("PRICER_MAX_STAKE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MaxStake = f
		}
	}

	return cfg
}

// Validate checks that configuration values are within acceptable ranges.
func Validate(cfg Config) error {
	if cfg.Margin <= -100 {
		return fmt.Errorf("PRICER_MARGIN must be greater than -100, got %f", cfg.Margin)
	}
	if cfg.Places < 1 {
		return fmt.Errorf("PRICER_PLACES must be at least 1, got %d", cfg.Places)
	}
	if len(cfg.Discounts) > 0 && len(cfg.Discounts) < cfg.Places {
		return fmt.Errorf("PRICER_DISCOUNTS needs one exponent per place, got %d for %d places", len(cfg.Discounts), cfg.Places)
	}
	if cfg.MeldWeight < 0 || cfg.MeldWeight > 100 {
		return fmt.Errorf("PRICER_MELD_WEIGHT must be between 0 and 100, got %f", cfg.MeldWeight)
	}
	if cfg.FractionDelim == "" {
		return fmt.Errorf("PRICER_FRACTION_DELIM must not be empty")
	}
	if cfg.Bank <= 0 {
		return fmt.Errorf("PRICER_BANK must be positive, got %f", cfg.Bank)
	}
	if cfg.KellyFraction <= 0 || cfg.KellyFraction > 1 {
		return fmt.Errorf("PRICER_KELLY_FRACTION must be between 0 and 1, got %f", cfg.KellyFraction)
	}
	if cfg.MaxStake < 0 {
		return fmt.Errorf("PRICER_MAX_STAKE must be non-negative, got %f", cfg.MaxStake)
	}
	return nil
}

// ParseDiscounts parses a comma-separated list of discount exponents, e.g. "1,0.9,0.8".
func ParseDiscounts(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid discount %q: %w", p, err)
		}
		if f <= 0 {
			return nil, fmt.Errorf("discount must be positive, got %v", f)
		}
		out = append(out, f)
	}
	return out, nil
}

// FormatDiscounts returns a human-readable string for the discount setting.
func FormatDiscounts(d []float64) string {
	if len(d) == 0 {
		return "none"
	}
	parts := make([]string, len(d))
	for i, f := range d {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// FormatMaxStake returns a human-readable string for the max stake setting.
func FormatMaxStake(maxStake float64) string {
	if maxStake <= 0 {
		return "no cap"
	}
	return fmt.Sprintf("%.2f", maxStake)
}
