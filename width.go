package bitnum

// Extend returns n zero-extended to width bits. Asking for fewer bits than n
// already has fails with InvalidWidth.
func (n Number) Extend(width int) (_ Number, err error) {
	defer Error.WrapP(&err)

	if width < len(n.bits) {
		return Number{}, InvalidWidth.New("cannot extend %d bits to %d", len(n.bits), width)
	}

	return n.extend(width), nil
}

// extend is Extend without the error: widths at or below the current width
// return a copy.
func (n Number) extend(width int) Number {
	if width <= len(n.bits) {
		return n.Clone()
	}

	bits := make([]byte, width)
	copy(bits[width-len(n.bits):], n.bits)

	return Number{bits: bits}
}

// equalize zero-extends the narrower operand to the width of the wider one.
func equalize(a, b Number) (Number, Number) {
	w := maxInt(len(a.bits), len(b.bits))

	return a.extend(w), b.extend(w)
}

// TwosComplement returns the two's complement of n read as an unsigned
// magnitude. A set MSB gets an extra leading zero first so the result is not
// mistaken for the encoding of a negative value.
func (n Number) TwosComplement() Number {
	c := n.Clone()
	if len(c.bits) > 0 && c.bits[0] == 1 {
		c = c.extend(len(c.bits) + 1)
	}

	return c.Not().Add(one)
}

// negate returns -n modulo 2^width.
func (n Number) negate(width int) Number {
	return n.extend(width).Not().Add(one).truncate(width)
}

// Cmp compares n and other and returns:
//
//  -1 if n <  other
//   0 if n == other
//  +1 if n >  other
//
// Leading zeros do not affect the result.
func (n Number) Cmp(other Number) int {
	w := maxInt(len(n.bits), len(other.bits))

	for i := 0; i < w; i++ {
		x, y := n.at(i, w), other.at(i, w)
		if x == y {
			continue
		}

		if x < y {
			return -1
		}

		return 1
	}

	return 0
}

// at returns bit i (MSB first) of n as if zero-extended to width bits.
func (n Number) at(i, width int) byte {
	off := width - len(n.bits)
	if i < off {
		return 0
	}

	return n.bits[i-off]
}

// Equal reports whether n and other have the same value.
func (n Number) Equal(other Number) bool {
	return n.Cmp(other) == 0
}

// Less reports whether n < other.
func (n Number) Less(other Number) bool {
	return n.Cmp(other) < 0
}

// Greater reports whether n > other.
func (n Number) Greater(other Number) bool {
	return n.Cmp(other) > 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
