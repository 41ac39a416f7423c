package marketfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"betmath/internal/market"
	"betmath/internal/odds"
)

// ErrInvalidFile reports a market file that decodes but does not describe a market.
var ErrInvalidFile = errors.New("invalid market file")

// File is the YAML form of a market.
//
//	event: Derby
//	places: 1
//	runners:
//	  - name: Frankel
//	    odds: 2/1
//	  - name: Mill Reef
//	    odds: "+400"     # moneyline, quoted
//	  - name: Nijinsky   # unpriced
type File struct {
	Event   string   `yaml:"event"`
	Places  int      `yaml:"places,omitempty"`
	Runners []Runner `yaml:"runners"`
}

// Runner is one runner in a market file. A number is decimal odds and a string
// is any notation odds.Parse accepts; a missing value leaves the runner unpriced.
type Runner struct {
	Name string     `yaml:"name"`
	Odds *odds.Odds `yaml:"odds,omitempty"`
}

// Load reads and decodes a market file from disk.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read market file: %w", err)
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Decode decodes a single market file document. Unknown fields are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidFile)
		}
		return nil, fmt.Errorf("failed to parse market file: %w", err)
	}
	return &file, nil
}

// Market builds the market described by the file, in file order.
func (f *File) Market() (*market.Market[string], error) {
	if len(f.Runners) == 0 {
		return nil, fmt.Errorf("%w: no runners", ErrInvalidFile)
	}

	m := market.New[string]()
	seen := make(map[string]bool, len(f.Runners))
	for i, r := range f.Runners {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: runner %d has no name", ErrInvalidFile, i+1)
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("%w: duplicate runner %q", ErrInvalidFile, r.Name)
		}
		seen[r.Name] = true

		if r.Odds == nil {
			m.SetUnpriced(r.Name)
		} else {
			m.Set(r.Name, *r.Odds)
		}
	}

	places := f.Places
	if places == 0 {
		places = 1
	}
	if err := m.SetPlaces(places); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	return m, nil
}

// FromMarket describes m as a market file.
func FromMarket(event string, m *market.Market[string]) *File {
	file := &File{Event: event, Places: m.Places()}
	for _, name := range m.Runners() {
		r := Runner{Name: name}
		if o, ok := m.Get(name); ok {
			r.Odds = &o
		}
		file.Runners = append(file.Runners, r)
	}
	return file
}

// Encode writes the file as YAML.
func (f *File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("failed to encode market file: %w", err)
	}
	return enc.Close()
}
