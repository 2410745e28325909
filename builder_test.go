package boc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tonwire/boc"
)

const (
	Zero = boc.Zero
	One  = boc.One
)

func writeBits(t *testing.T, b *boc.Builder, bits ...boc.Bit) {
	t.Helper()
	for _, bit := range bits {
		require.NoError(t, b.WriteBit(bit))
	}
}

func TestWriteBit(t *testing.T) {
	req := require.New(t)

	b := boc.New()
	writeBits(t, b, One, Zero, One, One, Zero, Zero, One, One)

	req.Equal(8, b.Len())
	data, err := b.Bytes()
	req.NoError(err)
	req.Equal([]byte{0xB3}, data)
}

func TestWriteBit_MSBFirst(t *testing.T) {
	req := require.New(t)

	b := boc.New()
	writeBits(t, b, One, Zero, Zero, Zero, Zero, Zero, Zero, Zero)

	data, err := b.Bytes()
	req.NoError(err)
	req.Equal([]byte{0x80}, data)
}

func TestWriteBit_CapacityBoundary(t *testing.T) {
	req := require.New(t)

	// The wire grammar admits one write that starts exactly at the
	// capacity boundary.
	b := boc.NewWithCapacity(7)
	for i := 0; i < 8; i++ {
		req.NoError(b.WriteBit(One))
	}
	req.Equal(8, b.Len())
	req.ErrorIs(b.WriteBit(One), boc.ErrOverflow)
	req.Equal(8, b.Len())
}

func TestWriteBit_ByteAlignedCapacity(t *testing.T) {
	req := require.New(t)

	b := boc.NewWithCapacity(8)
	for i := 0; i < 8; i++ {
		req.NoError(b.WriteBit(Zero))
	}
	req.ErrorIs(b.WriteBit(Zero), boc.ErrOverflow)
	req.Equal(8, b.Len())
}

func TestWriteBits(t *testing.T) {
	req := require.New(t)

	src := boc.New()
	writeBits(t, src, One, Zero, One, One, Zero, One)

	dst := boc.New()
	req.NoError(dst.WriteBit(Zero))
	req.NoError(dst.WriteBits(src.Bits()))

	req.Equal(7, dst.Len())
	view := dst.Bits()
	expected := []boc.Bit{Zero, One, Zero, One, One, Zero, One}
	for i, bit := range expected {
		req.Equal(bit, view.At(i), "bit %d", i)
	}
}

func TestWriteBits_Overflow(t *testing.T) {
	req := require.New(t)

	src := boc.New()
	writeBits(t, src, One, One, One, One, One, One, One, One)

	dst := boc.NewWithCapacity(4)
	req.ErrorIs(dst.WriteBits(src.Bits()), boc.ErrOverflow)
	// The batch copy runs through the bit primitive, so the bits that fit
	// are kept.
	req.Equal(5, dst.Len())
}

func TestWriteBytes_Aligned(t *testing.T) {
	req := require.New(t)

	b := boc.New()
	req.NoError(b.WriteBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF}))

	req.Equal(32, b.Len())
	data, err := b.Bytes()
	req.NoError(err)
	req.Equal([]byte{0xDE, 0xAD, 0xBE, 0xEF}, data)
}

func TestWriteBytes_Unaligned(t *testing.T) {
	req := require.New(t)

	unaligned := boc.New()
	req.NoError(unaligned.WriteBit(One))
	req.NoError(unaligned.WriteBytes([]byte{0xAA, 0x55}))

	reference := boc.New()
	req.NoError(reference.WriteBit(One))
	req.NoError(reference.WriteUint(0xAA, 8))
	req.NoError(reference.WriteUint(0x55, 8))

	req.Equal(reference.Bits().String(), unaligned.Bits().String())
	req.Equal(17, unaligned.Len())
}

func TestWriteBytes_Overflow(t *testing.T) {
	req := require.New(t)

	b := boc.NewWithCapacity(16)
	req.ErrorIs(b.WriteBytes([]byte{1, 2, 3}), boc.ErrOverflow)
	req.Equal(0, b.Len())
}

func TestBytes_NotAligned(t *testing.T) {
	req := require.New(t)

	b := boc.New()
	writeBits(t, b, One, Zero, One, One)

	_, err := b.Bytes()
	req.ErrorIs(err, boc.ErrNotByteAligned)

	writeBits(t, b, Zero, Zero, Zero, Zero)
	data, err := b.Bytes()
	req.NoError(err)
	req.Equal([]byte{0xB0}, data)
}

func TestBits_MidStream(t *testing.T) {
	req := require.New(t)

	b := boc.NewWithCapacity(4096)
	writeBits(t, b, One, Zero, One, One, One)

	view := b.Bits()
	req.Equal(5, view.Len())
	req.Equal(One, view.At(0))
	req.Equal(Zero, view.At(1))
	req.Equal(One, view.At(4))
}

func TestNewWithCapacity_Negative(t *testing.T) {
	require.Panics(t, func() { boc.NewWithCapacity(-1) })
}
