package boc

import (
	"github.com/tonwire/boc/address"
)

// Address discriminator tags, 2 bits on the wire. A new address shape
// needs a new tag to stay decodable by deployed readers.
const (
	addrTagNone = 0
	addrTagExt  = 1
	addrTagStd  = 2
)

// extBitLenBits is the width of the value-length field of an external
// address, bounding its value at 511 bits.
const extBitLenBits = 9

// WriteAddress appends addr with its 2-bit discriminator tag. A nil addr
// encodes as the "no address" tag with no payload. A standard address is
// tag, absent-anycast bit, 8-bit signed workchain and the account hash; an
// external address is tag, 9-bit value width and the value at exactly that
// width. Validation completes before any bit is appended.
func (b *Builder) WriteAddress(addr address.Address) error {
	switch a := addr.(type) {
	case nil:
		return b.WriteUint(addrTagNone, 2)

	case *address.Std:
		if a == nil {
			return ErrUnknownAddress
		}
		if err := b.reserve(2 + 1 + 8 + 8*address.HashBytes); err != nil {
			return err
		}
		b.putUint64(addrTagStd, 2)
		b.putBit(Zero) // anycast, always absent
		b.putUint64(uint64(uint8(a.Workchain)), 8)
		for _, v := range a.Hash {
			b.putUint64(uint64(v), 8)
		}
		return nil

	case *address.Ext:
		if a == nil || a.Value == nil {
			return ErrUnknownAddress
		}
		if a.BitLen < 0 {
			return ErrBitLength
		}
		if a.BitLen >= 1<<extBitLenBits {
			return uintRangeError(uint64(a.BitLen), extBitLenBits)
		}
		if a.Value.Sign() < 0 || a.Value.BitLen() > a.BitLen {
			return bigRangeError(a.Value, a.BitLen, false)
		}
		if err := b.reserve(2 + extBitLenBits + a.BitLen); err != nil {
			return err
		}
		b.putUint64(addrTagExt, 2)
		b.putUint64(uint64(a.BitLen), extBitLenBits)
		b.putBigUint(a.Value, a.BitLen)
		return nil

	default:
		return ErrUnknownAddress
	}
}
