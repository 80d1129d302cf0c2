package codec

import (
	"errors"
	"fmt"
)

// Sentinel errors for parse failures.
var (
	// ErrInvalidFormat indicates malformed input: empty text, a missing
	// magnitude, or a character outside the bandwidth grammar.
	ErrInvalidFormat = errors.New("invalid bandwidth format")

	// ErrUnknownUnit indicates a magnitude followed by text that is not a
	// recognized unit. It is a refinement of ErrInvalidFormat, so
	// errors.Is matches it against both sentinels.
	ErrUnknownUnit = fmt.Errorf("%w: unknown unit", ErrInvalidFormat)

	// ErrOverflow indicates a magnitude or accumulated total beyond the
	// representable bandwidth range.
	ErrOverflow = errors.New("bandwidth overflow")
)

// ParseError describes a failure to parse a bandwidth string.
type ParseError struct {
	// Err is the error kind: ErrInvalidFormat, ErrUnknownUnit, or
	// ErrOverflow.
	Err error

	// Start and End delimit the offending byte range of the input.
	// They are equal when the failure is a single position.
	Start int
	End   int

	// Unit is the verbatim unit text of an unknown-unit error.
	Unit string

	// Value is the magnitude attached to an unknown unit.
	Value uint64

	msg string
}

// Error implements the error interface.
func (e *ParseError) Error() string { return e.msg }

// Unwrap returns the error kind, enabling errors.Is checks against the
// package sentinels.
func (e *ParseError) Unwrap() error { return e.Err }

func invalidCharErr(off int) *ParseError {
	return &ParseError{
		Err:   ErrInvalidFormat,
		Start: off,
		End:   off,
		msg:   fmt.Sprintf("invalid character at %d", off),
	}
}

func numberExpectedErr(off int) *ParseError {
	return &ParseError{
		Err:   ErrInvalidFormat,
		Start: off,
		End:   off,
		msg:   fmt.Sprintf("expected number at %d", off),
	}
}

func emptyErr() *ParseError {
	return &ParseError{Err: ErrInvalidFormat, msg: "value was empty"}
}

func overflowErr() *ParseError {
	return &ParseError{Err: ErrOverflow, msg: "number is too large"}
}

func unknownUnitErr(t *table, start, end int, word string, value uint64) *ParseError {
	e := &ParseError{
		Err:   ErrUnknownUnit,
		Start: start,
		End:   end,
		Unit:  word,
		Value: value,
	}
	if word == "" {
		e.msg = fmt.Sprintf(t.needUnitFormat, value)
	} else {
		e.msg = fmt.Sprintf(t.unknownUnitFormat, word)
	}
	return e
}
