// Package codec converts between bandwidth values and human-readable text.
//
// Core operations:
//   - Parse: "9Tbps 420Gbps" into a bandwidth.Bandwidth
//   - Format: a bandwidth.Bandwidth into its canonical text
//   - ParseBinary / FormatBinary: the same codec in binary prefix units
//     ("4MiB/s" instead of "32Mbps")
//
// A bandwidth string is a sequence of rate spans, each an unsigned integer
// magnitude followed by a unit. Units may appear in any order and repeat;
// spans are summed. Supported SI units:
//
//   - bps, bit/s, b/s — bit per second
//   - kbps, kbit/s, kb/s — kilobit per second
//   - Mbps, Mbit/s, Mb/s — megabit per second
//   - Gbps, Gbit/s, Gb/s — gigabit per second
//   - Tbps, Tbit/s, Tb/s — terabit per second
//
// Example usage:
//
//	bw, err := codec.Parse("32Mbps")
//	if err != nil { ... }
//	codec.Format(bw) // "32Mbps"
//
// Failures are reported as *ParseError values that unwrap to the
// ErrInvalidFormat, ErrUnknownUnit, and ErrOverflow sentinels.
package codec
