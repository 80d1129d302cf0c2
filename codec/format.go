package codec

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/stack-rs/human-bandwidth/bandwidth"
)

// Format renders b as its canonical human-readable text: the minimal
// sequence of "<magnitude><unit>" spans in descending unit order, joined
// by single spaces. Zero formats as "0bps".
//
// Format is a left inverse of Parse: parsing its output always yields b,
// and reformatting the parsed value yields the identical string.
//
//	codec.Format(bandwidth.New(9420, 0))       // "9Tbps 420Gbps"
//	codec.Format(bandwidth.New(0, 32_000_000)) // "32Mbps"
func Format(b bandwidth.Bandwidth) string {
	return siTable.format(b)
}

// FormatBinary renders b in the binary prefix system, largest unit first.
// The total is rounded to the nearest whole byte-per-second, so
// FormatBinary is not an exact inverse of Parse for rates that are not a
// multiple of eight bits. Zero formats as "0B/s".
//
//	codec.FormatBinary(bandwidth.New(0, 32*1024*1024)) // "4MiB/s"
func FormatBinary(b bandwidth.Bandwidth) string {
	return binaryTable.format(b)
}

// format greedily decomposes the total over the unit table: each unit
// takes the largest magnitude it can, and the base unit has divisor 1, so
// the remainder is always exhausted exactly.
func (t *table) format(b bandwidth.Bandwidth) string {
	hi, lo := totalBits(b)
	if t.bitsPerBase > 1 {
		// round the bit total to the nearest whole base unit
		var carry uint64
		lo, carry = bits.Add64(lo, t.bitsPerBase/2, 0)
		hi, lo, _ = div128(hi+carry, lo, t.bitsPerBase)
	}
	if hi == 0 && lo == 0 {
		return "0" + t.units[len(t.units)-1].symbol
	}

	var sb strings.Builder
	for i := range t.units {
		u := &t.units[i]
		d := u.mult / t.bitsPerBase
		if hi == 0 && lo < d {
			continue
		}
		// The quotient fits one word: hi is below every divisor it
		// meets, and after the first span the high word is zero.
		_, mag, rem := div128(hi, lo, d)
		hi, lo = 0, rem
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(mag, 10))
		sb.WriteString(u.symbol)
	}
	return sb.String()
}
