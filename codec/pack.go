package codec

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/calebcase/bitnum"
)

// pack returns the minimal big-endian bytes holding n's significant bits.
//
// Note: zero has no significant bits, but we desire zero to be an actual zero
// byte.
func pack(n bitnum.Number) []byte {
	size := (n.BitLen() + 7) / 8
	if size == 0 {
		return []byte{0}
	}

	data := make([]byte, size)

	bs := n.BitSet()
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		data[size-1-int(i/8)] |= 1 << (i % 8)
	}

	return data
}

// unpack is the inverse of pack. The result is 8*len(data) bits wide.
func unpack(data []byte) bitnum.Number {
	bs := bitset.New(uint(len(data)) * 8)

	for j, b := range data {
		base := uint(len(data)-1-j) * 8

		for k := uint(0); k < 8; k++ {
			if b&(1<<k) != 0 {
				bs.Set(base + k)
			}
		}
	}

	return bitnum.FromBitSet(bs)
}

func padLeft(data []byte, size int) []byte {
	if len(data) >= size {
		return data
	}

	return append(make([]byte, size-len(data)), data...)
}
