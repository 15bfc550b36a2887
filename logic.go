package bitnum

import (
	"fmt"
	"math"
)

// Lsh returns n shifted left by s bits. The width grows by s so no bits are
// lost. Lsh panics if the resulting width does not fit in an int.
func (n Number) Lsh(s uint) Number {
	if s > uint(math.MaxInt-len(n.bits)) {
		panic(fmt.Sprintf("bitnum: shift %d overflows width %d", s, len(n.bits)))
	}

	bits := make([]byte, len(n.bits)+int(s))
	copy(bits, n.bits)

	return Number{bits: bits}
}

// Rsh returns n logically shifted right by s bits. The width is unchanged:
// the low s bits are dropped and zeros enter at the top.
func (n Number) Rsh(s uint) Number {
	w := len(n.bits)
	bits := make([]byte, w)

	if s < uint(w) {
		copy(bits[s:], n.bits[:w-int(s)])
	}

	return Number{bits: bits}
}

// And returns the bitwise AND of n and other at the wider of their widths.
func (n Number) And(other Number) Number {
	a, b := equalize(n, other)

	for i := range a.bits {
		a.bits[i] &= b.bits[i]
	}

	return a
}

// Or returns the bitwise OR of n and other at the wider of their widths.
func (n Number) Or(other Number) Number {
	a, b := equalize(n, other)

	for i := range a.bits {
		a.bits[i] |= b.bits[i]
	}

	return a
}

// Not returns the complement of every bit of n. The width is unchanged.
func (n Number) Not() Number {
	c := n.Clone()

	for i := range c.bits {
		c.bits[i] ^= 1
	}

	return c
}
