// Package bandwidth provides the two-component bandwidth value type.
//
// Core types:
//   - Bandwidth: A bit rate held as whole gigabits-per-second plus a
//     sub-gigabit bits-per-second remainder
//
// A Bandwidth is comparable with == and ordered with Cmp. Construction is
// checked: the remainder is always normalized below one gigabit, and the
// unit constructors report overflow instead of wrapping.
//
// Example usage:
//
//	bw := bandwidth.New(9420, 0)          // 9.42 Tbps
//	bw.Gbps()                             // 9420
//	bw.SubGbpsBps()                       // 0
//
//	sum, ok := bw.Add(bandwidth.FromBps(500))
package bandwidth
