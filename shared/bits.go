// Package shared holds small width helpers used across the encoder and
// its tools.
package shared

import (
	"math/big"
	"math/bits"
)

// NumBits returns the number of bits needed to represent x; zero needs
// none.
func NumBits(x uint64) int {
	return bits.Len64(x)
}

// NumBytes returns the number of whole bytes needed to represent x.
func NumBytes(x uint64) int {
	return (bits.Len64(x) + 7) / 8
}

// BigNumBytes returns the number of whole bytes needed to represent the
// absolute value of x.
func BigNumBytes(x *big.Int) int {
	return (x.BitLen() + 7) / 8
}
