// Package address defines the ledger address values consumed by the bit
// string encoder. The encoder treats them as opaque inputs.
package address

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// HashBytes is the size of a standard address account hash.
const HashBytes = 32

// ErrBadAddress is returned when parsing a malformed raw address string.
var ErrBadAddress = errors.New("malformed address string")

// Address is the set of address shapes understood by the encoder. A nil
// Address stands for "no address". The interface is sealed; adding a
// shape requires a matching encoder branch.
type Address interface {
	sealed()
}

// Std is a standard internal address: a workchain and an account hash.
type Std struct {
	Workchain int8
	Hash      [HashBytes]byte
}

func (*Std) sealed() {}

// String renders the raw form "workchain:hash".
func (a *Std) String() string {
	return fmt.Sprintf("%d:%x", a.Workchain, a.Hash)
}

// ParseStd parses the raw form "workchain:hash", with the hash in hex.
func ParseStd(s string) (*Std, error) {
	wcPart, hashPart, ok := strings.Cut(s, ":")
	if !ok {
		return nil, ErrBadAddress
	}
	wc, err := strconv.ParseInt(wcPart, 10, 8)
	if err != nil {
		return nil, fmt.Errorf("%w: bad workchain %q", ErrBadAddress, wcPart)
	}
	raw, err := hex.DecodeString(hashPart)
	if err != nil {
		return nil, fmt.Errorf("%w: bad hash: %v", ErrBadAddress, err)
	}
	if len(raw) != HashBytes {
		return nil, fmt.Errorf("%w: hash must be %d bytes (got %d)", ErrBadAddress, HashBytes, len(raw))
	}
	a := &Std{Workchain: int8(wc)}
	copy(a.Hash[:], raw)
	return a, nil
}

// Ext is an external address: an arbitrary numeric value of a declared
// bit width.
type Ext struct {
	BitLen int
	Value  *big.Int
}

func (*Ext) sealed() {}

func (a *Ext) String() string {
	return fmt.Sprintf("ext:%d:%v", a.BitLen, a.Value)
}
