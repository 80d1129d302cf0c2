package bandwidth

import "math"

// BpsPerGbps is the number of bits-per-second in one gigabit-per-second.
const BpsPerGbps = 1_000_000_000

// Bandwidth represents a bit rate as whole gigabits-per-second plus a
// sub-gigabit remainder in bits-per-second.
//
// The zero value is a zero bit rate. Bandwidth values are comparable
// with ==.
type Bandwidth struct {
	// gbps is the whole gigabits-per-second component.
	gbps uint64

	// bps is the remainder in bits-per-second, always below BpsPerGbps.
	bps uint32
}

// Max is the largest representable Bandwidth.
var Max = Bandwidth{gbps: math.MaxUint64, bps: BpsPerGbps - 1}

// New creates a Bandwidth from whole gigabits-per-second and an additional
// bits-per-second remainder.
//
// A remainder of one gigabit or more is carried into the gigabit component.
// New panics if the carry overflows; use Add for checked accumulation.
func New(gbps uint64, bps uint32) Bandwidth {
	carry := uint64(bps) / BpsPerGbps
	if gbps > math.MaxUint64-carry {
		panic("bandwidth: overflow in New")
	}
	return Bandwidth{gbps: gbps + carry, bps: bps % BpsPerGbps}
}

// FromBps creates a Bandwidth from a total number of bits-per-second.
func FromBps(bps uint64) Bandwidth {
	return Bandwidth{gbps: bps / BpsPerGbps, bps: uint32(bps % BpsPerGbps)}
}

// FromKbps creates a Bandwidth from kilobits-per-second.
func FromKbps(kbps uint64) Bandwidth { return fromUnit(kbps, 1_000) }

// FromMbps creates a Bandwidth from megabits-per-second.
func FromMbps(mbps uint64) Bandwidth { return fromUnit(mbps, 1_000_000) }

// FromGbps creates a Bandwidth from gigabits-per-second.
func FromGbps(gbps uint64) Bandwidth { return Bandwidth{gbps: gbps} }

// FromTbps creates a Bandwidth from terabits-per-second.
// The boolean is false if the rate is not representable.
func FromTbps(tbps uint64) (Bandwidth, bool) {
	if tbps > math.MaxUint64/1_000 {
		return Bandwidth{}, false
	}
	return Bandwidth{gbps: tbps * 1_000}, true
}

// fromUnit builds a Bandwidth from n units of mult bits-per-second each,
// where mult divides BpsPerGbps.
func fromUnit(n, mult uint64) Bandwidth {
	perGiga := uint64(BpsPerGbps) / mult
	return Bandwidth{
		gbps: n / perGiga,
		bps:  uint32((n % perGiga) * mult),
	}
}

// Gbps returns the whole gigabits-per-second component.
func (b Bandwidth) Gbps() uint64 { return b.gbps }

// SubGbpsBps returns the sub-gigabit remainder in bits-per-second.
// The result is always below BpsPerGbps.
func (b Bandwidth) SubGbpsBps() uint32 { return b.bps }

// IsZero reports whether the bandwidth is a zero bit rate.
func (b Bandwidth) IsZero() bool { return b.gbps == 0 && b.bps == 0 }

// Add returns b+other. The boolean is false if the sum overflows, in which
// case the returned Bandwidth is the zero value.
func (b Bandwidth) Add(other Bandwidth) (Bandwidth, bool) {
	bps := uint64(b.bps) + uint64(other.bps)
	carry := bps / BpsPerGbps

	gbps := b.gbps + other.gbps
	if gbps < b.gbps {
		return Bandwidth{}, false
	}
	if gbps > math.MaxUint64-carry {
		return Bandwidth{}, false
	}
	return Bandwidth{gbps: gbps + carry, bps: uint32(bps % BpsPerGbps)}, true
}

// Cmp compares two bandwidths, returning -1 if b is lower than other,
// 0 if they are equal, and +1 if b is higher.
func (b Bandwidth) Cmp(other Bandwidth) int {
	switch {
	case b.gbps < other.gbps:
		return -1
	case b.gbps > other.gbps:
		return 1
	case b.bps < other.bps:
		return -1
	case b.bps > other.bps:
		return 1
	default:
		return 0
	}
}
