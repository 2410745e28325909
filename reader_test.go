package boc_test

import (
	"math/big"
	"testing"

	"github.com/tonwire/boc"
)

// bitReader decodes a BitString MSB first. It exists only to round-trip
// the builder's output in tests; the production read side lives in the
// surrounding tooling.
type bitReader struct {
	t   *testing.T
	s   boc.BitString
	pos int
}

func newBitReader(t *testing.T, s boc.BitString) *bitReader {
	t.Helper()
	return &bitReader{t: t, s: s}
}

func (r *bitReader) bit() bool {
	r.t.Helper()
	if r.pos >= r.s.Len() {
		r.t.Fatalf("read past end of bit string: pos %d, len %d", r.pos, r.s.Len())
	}
	bit := r.s.At(r.pos)
	r.pos++
	return bool(bit)
}

func (r *bitReader) uint(bits int) uint64 {
	r.t.Helper()
	var val uint64
	for i := 0; i < bits; i++ {
		val <<= 1
		if r.bit() {
			val |= 1
		}
	}
	return val
}

func (r *bitReader) big(bits int) *big.Int {
	r.t.Helper()
	val := new(big.Int)
	for i := 0; i < bits; i++ {
		val.Lsh(val, 1)
		if r.bit() {
			val.Or(val, big.NewInt(1))
		}
	}
	return val
}

// int64 decodes a two's-complement signed field: a sign bit followed by a
// (bits-1)-wide magnitude.
func (r *bitReader) int64(bits int) int64 {
	r.t.Helper()
	neg := r.bit()
	mag := r.uint(bits - 1)
	if neg {
		return int64(mag) - (int64(1) << uint(bits-1))
	}
	return int64(mag)
}

func (r *bitReader) bigInt(bits int) *big.Int {
	r.t.Helper()
	neg := r.bit()
	mag := r.big(bits - 1)
	if neg {
		offset := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		return mag.Sub(mag, offset)
	}
	return mag
}

func (r *bitReader) varUint(sizeBits int) *big.Int {
	r.t.Helper()
	size := int(r.uint(sizeBits))
	if size == 0 {
		return new(big.Int)
	}
	return r.big(8 * size)
}

func (r *bitReader) varInt(sizeBits int) *big.Int {
	r.t.Helper()
	size := int(r.uint(sizeBits))
	if size == 0 {
		return new(big.Int)
	}
	return r.bigInt(8 * size)
}

func (r *bitReader) remaining() int {
	return r.s.Len() - r.pos
}
