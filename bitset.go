package bitnum

import "github.com/bits-and-blooms/bitset"

// BitSet packs n into a bitset of n.BitWidth() bits. Index i holds the bit of
// weight 2^i.
func (n Number) BitSet() *bitset.BitSet {
	w := len(n.bits)
	bs := bitset.New(uint(w))

	for i, bit := range n.bits {
		if bit == 1 {
			bs.Set(uint(w - 1 - i))
		}
	}

	return bs
}

// FromBitSet unpacks bs into a Number of bs.Len() bits. Index i of bs becomes
// the bit of weight 2^i.
func FromBitSet(bs *bitset.BitSet) Number {
	w := int(bs.Len())
	bits := make([]byte, w)

	for i, ok := bs.NextSet(0); ok && int(i) < w; i, ok = bs.NextSet(i + 1) {
		bits[w-1-int(i)] = 1
	}

	return Number{bits: bits}
}
