package codec

import "math"

// token is one (magnitude, unit) pair recognized in the input.
type token struct {
	mag  uint64
	unit *unit
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isUnitChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '/'
}

// tokenize splits s into (magnitude, unit) tokens against t's unit table.
//
// Each token is an unsigned decimal magnitude followed by a unit spelling.
// Whitespace is insignificant anywhere outside a unit word, and '_' may
// break up magnitude digits. Unit words are the maximal run of letters and
// '/', which makes recognition longest-match: "Tbps" can never be read as
// a stray "T" followed by "bps".
func (t *table) tokenize(s string) ([]token, error) {
	var toks []token
	i, n := 0, len(s)
	for {
		for i < n && isSpace(s[i]) {
			i++
		}
		if i >= n {
			if len(toks) == 0 {
				return nil, emptyErr()
			}
			return toks, nil
		}
		if !isDigit(s[i]) {
			return nil, numberExpectedErr(i)
		}

		var mag uint64
	digits:
		for i < n {
			switch c := s[i]; {
			case isDigit(c):
				d := uint64(c - '0')
				if mag > (math.MaxUint64-d)/10 {
					return nil, overflowErr()
				}
				mag = mag*10 + d
				i++
			case c == '_' || isSpace(c):
				i++
			case isUnitChar(c):
				break digits
			default:
				return nil, invalidCharErr(i)
			}
		}

		start := i
		for i < n && isUnitChar(s[i]) {
			i++
		}
		u, ok := t.lookup[s[start:i]]
		if !ok {
			return nil, unknownUnitErr(t, start, i, s[start:i], mag)
		}
		toks = append(toks, token{mag: mag, unit: u})
	}
}
