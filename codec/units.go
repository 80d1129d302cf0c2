package codec

// unit is one entry of a unit table: the canonical symbol emitted by the
// formatter, the multiplier in bits-per-second, and the alternative
// spellings the tokenizer accepts.
type unit struct {
	symbol  string
	mult    uint64
	aliases []string
}

// table binds an ordered unit list to its lookup index and error wording.
// The unit list is the single source of truth for both directions: the
// tokenizer recognizes exactly these units and the formatter emits them in
// this order.
type table struct {
	// units in strictly decreasing multiplier order; the last entry is
	// the base emission unit.
	units []unit

	// lookup maps every accepted spelling to its units entry.
	lookup map[string]*unit

	// bitsPerBase is the number of bits in the base emission unit: 1 for
	// the SI table, 8 for the binary table (which emits bytes).
	bitsPerBase uint64

	// needUnitFormat and unknownUnitFormat are the error message
	// templates for a missing and an unrecognized unit.
	needUnitFormat    string
	unknownUnitFormat string
}

func newTable(bitsPerBase uint64, needUnit, unknownUnit string, units []unit) *table {
	t := &table{
		units:             units,
		lookup:            make(map[string]*unit),
		bitsPerBase:       bitsPerBase,
		needUnitFormat:    needUnit,
		unknownUnitFormat: unknownUnit,
	}
	for i := range units {
		u := &units[i]
		t.lookup[u.symbol] = u
		for _, a := range u.aliases {
			t.lookup[a] = u
		}
	}
	return t
}

// siTable is the decimal system: powers of 1000 of one bit-per-second.
var siTable = newTable(1,
	"bandwidth unit needed, for example %[1]dMbps or %[1]dbps",
	"unknown bandwidth unit %q, supported units: bps, kbps, Mbps, Gbps, Tbps",
	[]unit{
		{symbol: "Tbps", mult: 1_000_000_000_000, aliases: []string{"tbps", "Tbit/s", "tbit/s", "Tb/s", "tb/s"}},
		{symbol: "Gbps", mult: 1_000_000_000, aliases: []string{"gbps", "Gbit/s", "gbit/s", "Gb/s", "gb/s"}},
		{symbol: "Mbps", mult: 1_000_000, aliases: []string{"mbps", "Mbit/s", "mbit/s", "Mb/s", "mb/s"}},
		{symbol: "kbps", mult: 1_000, aliases: []string{"Kbps", "kbit/s", "Kbit/s", "kb/s", "Kb/s"}},
		{symbol: "bps", mult: 1, aliases: []string{"bit/s", "b/s"}},
	})

// binaryTable is the binary prefix system: powers of 1024 of one
// byte-per-second, held as bit multipliers.
var binaryTable = newTable(8,
	"binary bandwidth unit needed, for example %[1]dMiB/s or %[1]dB/s",
	"unknown binary bandwidth unit %q, supported units: B/s, kiB/s, MiB/s, GiB/s, TiB/s",
	[]unit{
		{symbol: "TiB/s", mult: 8 << 40, aliases: []string{
			"TiBps", "tiBps", "TiByte/s", "tiByte/s", "tiB/s", "Tiops", "tiops", "Tio/s", "tio/s"}},
		{symbol: "GiB/s", mult: 8 << 30, aliases: []string{
			"GiBps", "giBps", "GiByte/s", "giByte/s", "giB/s", "Giops", "giops", "Gio/s", "gio/s"}},
		{symbol: "MiB/s", mult: 8 << 20, aliases: []string{
			"MiBps", "miBps", "MiByte/s", "miByte/s", "miB/s", "Miops", "miops", "Mio/s", "mio/s"}},
		{symbol: "kiB/s", mult: 8 << 10, aliases: []string{
			"kiBps", "KiBps", "kiByte/s", "KiByte/s", "KiB/s", "kiops", "Kiops", "kio/s", "Kio/s"}},
		{symbol: "B/s", mult: 8, aliases: []string{"Bps", "Byte/s", "ops", "o/s"}},
	})
