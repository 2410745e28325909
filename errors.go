package boc

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

var (
	// ErrOverflow is returned when a write does not fit the remaining
	// builder capacity.
	ErrOverflow = errors.New("bit builder overflow")

	// ErrBitLength is returned when a requested field width is negative.
	ErrBitLength = errors.New("invalid bit length")

	// ErrZeroWidthValue is returned when a non-zero value is written into
	// a zero-width field.
	ErrZeroWidthValue = errors.New("non-zero value in zero-width field")

	// ErrNotByteAligned is returned by Bytes when the written length is
	// not a whole number of bytes.
	ErrNotByteAligned = errors.New("bit length is not byte aligned")

	// ErrUnknownAddress is returned for address shapes the wire grammar
	// has no tag for.
	ErrUnknownAddress = errors.New("unknown address shape")
)

// RangeError reports a value that does not fit the requested field width.
type RangeError struct {
	Value  string
	Bits   int
	Signed bool
}

func (e RangeError) Error() string {
	kind := "unsigned"
	if e.Signed {
		kind = "signed"
	}
	return fmt.Sprintf("value %v does not fit a %d-bit %s field", e.Value, e.Bits, kind)
}

func uintRangeError(value uint64, bits int) error {
	return RangeError{Value: strconv.FormatUint(value, 10), Bits: bits}
}

func intRangeError(value int64, bits int) error {
	return RangeError{Value: strconv.FormatInt(value, 10), Bits: bits, Signed: true}
}

func bigRangeError(value *big.Int, bits int, signed bool) error {
	return RangeError{Value: value.String(), Bits: bits, Signed: signed}
}
