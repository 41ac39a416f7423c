package odds

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler with the full decimal value.
func (o Odds) MarshalText() ([]byte, error) {
	return []byte(o.value.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting any notation Parse accepts.
func (o *Odds) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// MarshalJSON writes the odds as a JSON number.
func (o Odds) MarshalJSON() ([]byte, error) {
	return []byte(o.value.String()), nil
}

// UnmarshalJSON accepts a JSON number as decimal odds, or a string in any
// notation Parse accepts.
func (o *Odds) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding odds: %w", err)
	}
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return o.UnmarshalText([]byte(v))
	case float64:
		parsed, err := parseDecimal(strings.TrimSpace(string(data)))
		if err != nil {
			return err
		}
		*o = parsed
		return nil
	default:
		return fmt.Errorf("decoding odds: unexpected JSON value %s", data)
	}
}

// MarshalYAML writes the odds as a plain scalar with the full decimal value.
func (o Odds) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Value: o.value.String(),
	}, nil
}

// UnmarshalYAML decodes a scalar node. Numbers are decimal odds, strings go
// through Parse, so a moneyline must be quoted: "+138".
func (o *Odds) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: odds must be a scalar", value.Line)
	}

	var (
		parsed Odds
		err    error
	)
	switch tag := value.ShortTag(); tag {
	case "!!int", "!!float":
		parsed, err = parseDecimal(value.Value)
	case "!!str":
		parsed, err = Parse(value.Value)
	default:
		return fmt.Errorf("line %d: odds must be a number or a string, got %s", value.Line, tag)
	}
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*o = parsed
	return nil
}
