// Package humanbandwidth provides parsing and formatting of human-friendly
// bandwidth strings.
//
// humanbandwidth is a standalone codec designed to be imported à la carte.
// Each subpackage can be used independently:
//
//   - bandwidth: The two-component Bandwidth value type
//   - codec: Parse and format bandwidth in SI units ("9Tbps 420Gbps") and
//     binary prefix units ("4MiB/s")
//   - field: Embed Bandwidth values in JSON, YAML, and TOML documents
//
// # Quick Start
//
// Parsing:
//
//	import "github.com/stack-rs/human-bandwidth/codec"
//	bw, _ := codec.Parse("9Tbps 420Gbps")
//
// Formatting:
//
//	text := codec.Format(bandwidth.New(0, 32_000_000)) // "32Mbps"
//
// Struct fields:
//
//	import "github.com/stack-rs/human-bandwidth/field"
//	type Link struct {
//	    Limit field.Bandwidth `json:"limit" yaml:"limit" toml:"limit"`
//	}
//
// # Design Philosophy
//
// humanbandwidth follows these principles:
//
//   - Each package usable independently
//   - Pure functions, no shared mutable state, safe for concurrent use
//   - Checked arithmetic everywhere a value can overflow
//   - One shared unit table so parsing and formatting never drift apart
package humanbandwidth
