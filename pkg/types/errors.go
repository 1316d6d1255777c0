package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat    ErrKind = iota // bad "8BPS" signature: not this format at all
	ErrKindRange                    // a field violates its (variant-dependent) range
	ErrKindTruncated                // buffer too short for the requested read/write
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindRange:
		return "range"
	case ErrKindTruncated:
		return "truncated"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidSignature indicates the buffer does not start with "8BPS".
	ErrInvalidSignature = &Error{Kind: ErrKindFormat, Msg: "not a photoshop document (bad 8BPS signature)"}
	// ErrFieldOutOfRange indicates a decoded or assigned value violates its range.
	ErrFieldOutOfRange = &Error{Kind: ErrKindRange, Msg: "field out of range"}
	// ErrBufferUnderrun indicates the buffer is shorter than a field access requires.
	ErrBufferUnderrun = &Error{Kind: ErrKindTruncated, Msg: "buffer underrun"}
)

// RangeError builds an ErrFieldOutOfRange for field with the given value and
// inclusive bounds. errors.Is(err, ErrFieldOutOfRange) holds for the result.
func RangeError(field string, value, lo, hi int64) error {
	return &Error{
		Kind: ErrKindRange,
		Msg:  fmt.Sprintf("%s %d: supported range is %d to %d", field, value, lo, hi),
		Err:  ErrFieldOutOfRange,
	}
}

// UnderrunError builds an ErrBufferUnderrun describing an access of n bytes at
// off in a buffer of size length.
func UnderrunError(off, n, length int) error {
	return &Error{
		Kind: ErrKindTruncated,
		Msg:  fmt.Sprintf("access of %d bytes at offset %d exceeds buffer of %d bytes", n, off, length),
		Err:  ErrBufferUnderrun,
	}
}

// KindOf returns the category of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}
