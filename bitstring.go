package boc

import (
	"encoding/hex"
	"strings"
)

// BitString is an immutable ordered view over a span of bits. The zero
// value is an empty bit string.
type BitString struct {
	data   []byte
	length int
}

// NewBitString returns a view over the first length bits of data, MSB
// first within each byte. The view aliases data.
func NewBitString(data []byte, length int) BitString {
	if length < 0 || length > len(data)*8 {
		panic("boc: bit string length out of range")
	}
	return BitString{data: data, length: length}
}

// Len returns the number of bits in the view.
func (s BitString) Len() int {
	return s.length
}

// At returns bit i, counted from the start of the view.
func (s BitString) At(i int) Bit {
	if i < 0 || i >= s.length {
		panic("boc: bit index out of range")
	}
	return s.data[i>>3]&(1<<(7-uint(i)&7)) != 0
}

// String renders the canonical hex form of the bit string. A length that
// is not a whole number of nibbles is padded with a single marker bit and
// zeros, and the padding is flagged with a trailing underscore.
func (s BitString) String() string {
	if s.length%4 == 0 {
		str := strings.ToUpper(hex.EncodeToString(s.data[:(s.length+7)/8]))
		return str[:s.length/4]
	}

	padded := make([]byte, (s.length+7)/8)
	copy(padded, s.data[:(s.length+7)/8])
	// Clear any bits beyond the view before setting the marker; the
	// backing buffer is not required to be zero there.
	last := len(padded) - 1
	used := s.length - 8*last
	padded[last] &= 0xFF << (8 - uint(used))
	padded[last] |= 1 << (7 - uint(used))

	nibbles := s.length/4 + 1
	str := strings.ToUpper(hex.EncodeToString(padded))
	return str[:nibbles] + "_"
}
