// Package boc implements the bit-precise builder for the cell wire format:
// an append-only writer that packs booleans, fixed-width signed/unsigned
// integers of arbitrary precision, self-describing variable-length integers,
// raw byte buffers and tagged addresses into a single contiguous bit
// sequence, following the MSB pattern, where most-significant bits are
// written first within each byte.
package boc

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)
