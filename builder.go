package boc

// DefaultCapacity is the capacity, in bits, of builders returned by New.
const DefaultCapacity = 1023

// Builder is an append-only bit writer over a fixed-capacity buffer. Bits
// are packed most-significant-bit first within each byte, with no padding
// between fields; unused trailing bits of the final partial byte stay zero.
//
// A Builder is single use for one growing stream: writes only ever append,
// there is no reset, and a failed write leaves the stream untouched. A
// Builder must not be shared between goroutines without external
// serialization.
type Builder struct {
	buf []byte
	len int
	cap int
}

// New returns a Builder with the default capacity.
func New() *Builder {
	return NewWithCapacity(DefaultCapacity)
}

// NewWithCapacity returns a Builder holding up to capacityBits bits.
func NewWithCapacity(capacityBits int) *Builder {
	if capacityBits < 0 {
		panic("boc: negative builder capacity")
	}
	return &Builder{
		buf: make([]byte, (capacityBits+7)/8),
		cap: capacityBits,
	}
}

// Len returns the number of bits written so far.
func (b *Builder) Len() int {
	return b.len
}

// Cap returns the capacity in bits, fixed at construction.
func (b *Builder) Cap() int {
	return b.cap
}

// reserve fails with ErrOverflow unless bits more bits fit the stream. The
// wire grammar allows a write whose first bit starts exactly at the
// capacity boundary, so the check is against capacity+1; the allocated
// storage still bounds the stream when the capacity is byte aligned.
func (b *Builder) reserve(bits int) error {
	if bits == 0 {
		return nil
	}
	if b.len+bits-1 > b.cap || b.len+bits > len(b.buf)*8 {
		return ErrOverflow
	}
	return nil
}

// putBit appends one bit. The caller must have reserved room for it.
func (b *Builder) putBit(bit Bit) {
	if bit {
		b.buf[b.len>>3] |= 1 << (7 - uint(b.len)&7)
	}
	b.len++
}

// WriteBit appends a single bit to the stream, MSB first.
func (b *Builder) WriteBit(bit Bit) error {
	if err := b.reserve(1); err != nil {
		return err
	}
	b.putBit(bit)
	return nil
}

// WriteBits appends every bit of src, in order. A copy that overflows
// mid-way keeps the bits already appended, like the underlying primitive.
func (b *Builder) WriteBits(src BitString) error {
	for i := 0; i < src.Len(); i++ {
		if err := b.WriteBit(src.At(i)); err != nil {
			return err
		}
	}
	return nil
}

// WriteBytes appends p as 8*len(p) bits. When the stream is byte aligned
// the bytes are copied in bulk; otherwise each byte goes through the
// fixed-width encoder, which is functionally identical.
func (b *Builder) WriteBytes(p []byte) error {
	if b.len%8 == 0 {
		if b.len+8*len(p) > b.cap {
			return ErrOverflow
		}
		copy(b.buf[b.len/8:], p)
		b.len += 8 * len(p)
		return nil
	}
	for _, v := range p {
		if err := b.WriteUint(uint64(v), 8); err != nil {
			return err
		}
	}
	return nil
}

// Bits returns a view over the bits written so far. It may be called at
// any point and does not alter the builder. The view aliases the builder's
// storage: mutating the builder after treating a view as final is
// undefined behavior.
func (b *Builder) Bits() BitString {
	return BitString{data: b.buf, length: b.len}
}

// Bytes returns the bytes written so far. The stream must be byte aligned.
// The returned slice aliases the builder's storage.
func (b *Builder) Bytes() ([]byte, error) {
	if b.len%8 != 0 {
		return nil, ErrNotByteAligned
	}
	return b.buf[:b.len/8], nil
}
