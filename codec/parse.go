package codec

import (
	"math/bits"

	"github.com/stack-rs/human-bandwidth/bandwidth"
)

// Parse converts a human-readable bandwidth string into a Bandwidth.
//
// The input is a sequence of rate spans such as "9Tbps 420Gbps" or
// "32Mbps". Spans may appear in any order and repeat; their sum is the
// result. See the package documentation for the accepted units.
//
//	bw, _ := codec.Parse("9Tbps 420Gbps") // bandwidth.New(9420, 0)
//	bw, _ = codec.Parse("32Mbps")         // bandwidth.New(0, 32_000_000)
func Parse(s string) (bandwidth.Bandwidth, error) {
	return siTable.parse(s)
}

// ParseBinary is Parse for the binary prefix system, where units count
// bytes-per-second in powers of 1024.
//
//	bw, _ := codec.ParseBinary("4MiB/s") // bandwidth.New(0, 4*8*1024*1024)
func ParseBinary(s string) (bandwidth.Bandwidth, error) {
	return binaryTable.parse(s)
}

func (t *table) parse(s string) (bandwidth.Bandwidth, error) {
	toks, err := t.tokenize(s)
	if err != nil {
		return bandwidth.Bandwidth{}, err
	}
	return accumulate(toks)
}

// accumulate sums the bit counts of toks into a Bandwidth. All products
// and sums are 128-bit, and the running total is checked against the
// representable range after every addition, so overflow is reported
// rather than wrapped. An empty token slice sums to zero.
func accumulate(toks []token) (bandwidth.Bandwidth, error) {
	var hi, lo uint64
	for _, tok := range toks {
		phi, plo := bits.Mul64(tok.mag, tok.unit.mult)
		var carry uint64
		lo, carry = bits.Add64(lo, plo, 0)
		hi, carry = bits.Add64(hi, phi, carry)
		if carry != 0 || hi > maxTotalHi || (hi == maxTotalHi && lo > maxTotalLo) {
			return bandwidth.Bandwidth{}, overflowErr()
		}
	}
	_, gbps, rem := div128(hi, lo, bandwidth.BpsPerGbps)
	return bandwidth.New(gbps, uint32(rem)), nil
}
