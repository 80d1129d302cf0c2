// Package field embeds bandwidth values in structured documents.
//
// Core types:
//   - Bandwidth: A bandwidth.Bandwidth that serializes as its SI codec
//     string ("9Tbps 420Gbps")
//   - Binary: The same in binary prefix units ("4MiB/s")
//
// Both types implement encoding.TextMarshaler and encoding.TextUnmarshaler
// (picked up by encoding/json and BurntSushi/toml), the gopkg.in/yaml.v3
// marshaling interfaces, and invopop/jsonschema self-description. The
// adapters change no parsing or formatting semantics; decode errors are the
// codec's own, so errors.Is against codec.ErrInvalidFormat, ErrUnknownUnit,
// and ErrOverflow keeps working across the serialization boundary.
//
// Example usage:
//
//	type Link struct {
//	    Limit field.Bandwidth  `json:"limit" yaml:"limit" toml:"limit"`
//	    Burst *field.Bandwidth `json:"burst,omitempty" yaml:"burst,omitempty" toml:"burst,omitempty"`
//	}
//
// Optional values are pointers: a nil *Bandwidth encodes as null or is
// omitted, replacing the original library's Option wrapper.
package field
