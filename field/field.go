package field

import (
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/stack-rs/human-bandwidth/bandwidth"
	"github.com/stack-rs/human-bandwidth/codec"
)

// Bandwidth wraps a bandwidth.Bandwidth so it serializes as its
// human-readable SI string in JSON, YAML, and TOML documents.
type Bandwidth struct {
	bandwidth.Bandwidth
}

// New wraps a bandwidth value for serialization.
func New(b bandwidth.Bandwidth) Bandwidth { return Bandwidth{Bandwidth: b} }

// String returns the canonical codec text.
func (b Bandwidth) String() string { return codec.Format(b.Bandwidth) }

// MarshalText implements encoding.TextMarshaler.
func (b Bandwidth) MarshalText() ([]byte, error) {
	return []byte(codec.Format(b.Bandwidth)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. A failure is the
// codec's *ParseError, unchanged.
func (b *Bandwidth) UnmarshalText(text []byte) error {
	bw, err := codec.Parse(string(text))
	if err != nil {
		return err
	}
	b.Bandwidth = bw
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (b Bandwidth) MarshalYAML() (any, error) {
	return codec.Format(b.Bandwidth), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Bandwidth) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return b.UnmarshalText([]byte(s))
}

// JSONSchema describes the field as a bandwidth string for generated
// schemas.
func (Bandwidth) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Title:       "Bandwidth",
		Description: `Human-readable bandwidth, e.g. "9Tbps 420Gbps" or "32Mbps"`,
		Pattern:     `^\s*[0-9][0-9_\s]*[A-Za-z/]+(\s*[0-9][0-9_\s]*[A-Za-z/]+)*\s*$`,
		Examples:    []any{"32Mbps", "9Tbps 420Gbps"},
	}
}

// Binary wraps a bandwidth.Bandwidth so it serializes in binary prefix
// units ("4MiB/s"). Encoding rounds to the nearest whole byte-per-second,
// per codec.FormatBinary.
type Binary struct {
	bandwidth.Bandwidth
}

// NewBinary wraps a bandwidth value for binary prefix serialization.
func NewBinary(b bandwidth.Bandwidth) Binary { return Binary{Bandwidth: b} }

// String returns the binary prefix codec text.
func (b Binary) String() string { return codec.FormatBinary(b.Bandwidth) }

// MarshalText implements encoding.TextMarshaler.
func (b Binary) MarshalText() ([]byte, error) {
	return []byte(codec.FormatBinary(b.Bandwidth)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Binary) UnmarshalText(text []byte) error {
	bw, err := codec.ParseBinary(string(text))
	if err != nil {
		return err
	}
	b.Bandwidth = bw
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (b Binary) MarshalYAML() (any, error) {
	return codec.FormatBinary(b.Bandwidth), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Binary) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return b.UnmarshalText([]byte(s))
}

// JSONSchema describes the field as a binary prefix bandwidth string.
func (Binary) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Title:       "Bandwidth (binary prefix)",
		Description: `Human-readable bandwidth in binary prefix units, e.g. "4MiB/s"`,
		Pattern:     `^\s*[0-9][0-9_\s]*[A-Za-z/]+(\s*[0-9][0-9_\s]*[A-Za-z/]+)*\s*$`,
		Examples:    []any{"4MiB/s", "9TiB/s 420GiB/s"},
	}
}
