package boc

import (
	"math/big"

	"github.com/tonwire/boc/shared"
)

// CoinsSizeBits is the width of the byte-count header in the canonical
// monetary-amount encoding, allowing magnitudes of up to 15 bytes.
const CoinsSizeBits = 4

// WriteVarUint appends value in the self-describing variable-length
// unsigned encoding: a sizeBits-wide byte count followed by the minimal
// whole-byte big-endian magnitude. A zero value is just a zero byte count
// with no payload.
func (b *Builder) WriteVarUint(value *big.Int, sizeBits int) error {
	if sizeBits < 0 {
		return ErrBitLength
	}
	if value.Sign() < 0 {
		return bigRangeError(value, sizeBits, false)
	}
	if value.Sign() == 0 {
		return b.WriteUint(0, sizeBits)
	}

	size := shared.BigNumBytes(value)
	if sizeBits < 64 && uint64(size)>>uint(sizeBits) != 0 {
		return uintRangeError(uint64(size), sizeBits)
	}
	if err := b.reserve(sizeBits + 8*size); err != nil {
		return err
	}
	b.putUint64(uint64(size), sizeBits)
	b.putBigUint(value, 8*size)
	return nil
}

// WriteVarInt appends value in the variable-length signed encoding. The
// byte count reserves one byte beyond the minimal magnitude size for the
// sign, and the payload is a two's-complement signed field.
func (b *Builder) WriteVarInt(value *big.Int, sizeBits int) error {
	if sizeBits < 0 {
		return ErrBitLength
	}
	if value.Sign() == 0 {
		return b.WriteUint(0, sizeBits)
	}

	size := shared.BigNumBytes(value) + 1
	if sizeBits < 64 && uint64(size)>>uint(sizeBits) != 0 {
		return uintRangeError(uint64(size), sizeBits)
	}
	neg, mag, ok := twosComplement(value, 8*size)
	if !ok {
		return bigRangeError(value, 8*size, true)
	}
	if err := b.reserve(sizeBits + 8*size); err != nil {
		return err
	}
	b.putUint64(uint64(size), sizeBits)
	b.putBit(Bit(neg))
	b.putBigUint(mag, 8*size-1)
	return nil
}

// WriteCoins appends amount in the canonical monetary-amount encoding, a
// variable-length unsigned field with a 4-bit byte-count header.
func (b *Builder) WriteCoins(amount *big.Int) error {
	return b.WriteVarUint(amount, CoinsSizeBits)
}
