package codec

import (
	"math"
	"math/bits"

	"github.com/stack-rs/human-bandwidth/bandwidth"
)

// The accumulator and formatter work on 128-bit bit totals held as (hi, lo)
// word pairs, so no product or sum ever wraps silently.

// maxTotalHi, maxTotalLo hold the largest representable total:
// MaxUint64 whole gigabits plus a maximal sub-gigabit remainder.
var maxTotalHi, maxTotalLo = func() (uint64, uint64) {
	hi, lo := bits.Mul64(math.MaxUint64, bandwidth.BpsPerGbps)
	lo, carry := bits.Add64(lo, bandwidth.BpsPerGbps-1, 0)
	return hi + carry, lo
}()

// totalBits reconstructs the 128-bit total bit count of b.
func totalBits(b bandwidth.Bandwidth) (hi, lo uint64) {
	hi, lo = bits.Mul64(b.Gbps(), bandwidth.BpsPerGbps)
	lo, carry := bits.Add64(lo, uint64(b.SubGbpsBps()), 0)
	return hi + carry, lo
}

// div128 divides (hi, lo) by d, returning the 128-bit quotient and the
// remainder.
func div128(hi, lo, d uint64) (qhi, qlo, rem uint64) {
	qhi = hi / d
	qlo, rem = bits.Div64(hi%d, lo, d)
	return qhi, qlo, rem
}
