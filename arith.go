package bitnum

// Add returns n + other. The result is as wide as the wider operand, plus one
// bit when the sum carries out of the top.
func (n Number) Add(other Number) Number {
	a, b := equalize(n, other)

	// Column sums are 0, 1 or 2 before carrying.
	sum := make([]byte, len(a.bits))
	for i := range sum {
		sum[i] = a.bits[i] + b.bits[i]
	}

	for i := len(sum) - 1; i > 0; i-- {
		sum[i-1] += sum[i] / 2
		sum[i] %= 2
	}

	if len(sum) > 0 && sum[0] > 1 {
		carry := sum[0] / 2
		sum[0] %= 2
		sum = append([]byte{carry}, sum...)
	}

	return Number{bits: sum}
}

// Sub returns n - other at n's width.
//
// Both operands are taken to max(width)+1 bits, the subtrahend is negated
// modulo 2^(max+1) and added, and the sum is cut back to n's width. When
// other > n the result wraps around: (n - other) mod 2^n.BitWidth().
func (n Number) Sub(other Number) Number {
	w := maxInt(len(n.bits), len(other.bits)) + 1

	return n.extend(w).Add(other.negate(w)).truncate(len(n.bits))
}

// Mul returns n * other using shift-and-add.
func (n Number) Mul(other Number) Number {
	a, b := equalize(n, other)
	w := len(a.bits)

	var product Number

	for k := 0; k < w; k++ {
		bit := b.bits[w-1-k]

		partial := make([]byte, w)
		for i := range a.bits {
			partial[i] = a.bits[i] & bit
		}

		product = product.Add(Number{bits: partial}.Lsh(uint(k)))
	}

	return product
}

// DivMod returns the quotient and remainder of n / other using restoring long
// division. The quotient has n's width unless n < other, in which case it is
// the zero-width Number and the remainder is n.
func (n Number) DivMod(other Number) (q, r Number, err error) {
	defer Error.WrapP(&err)

	if other.IsZero() {
		return Number{}, Number{}, DivisionByZero.New("%s / 0", n.Text())
	}

	if n.Less(other) {
		return Number{}, n.Clone(), nil
	}

	quotient := &Builder{}
	quotient.Grow(len(n.bits))

	remainder := &Builder{}

	for _, bit := range n.bits {
		remainder.AppendBit(bit)

		rem := remainder.Number()
		if rem.Less(other) {
			quotient.AppendBit(0)

			continue
		}

		quotient.AppendBit(1)

		remainder = NewBuilder(rem.Sub(other))
	}

	return quotient.Number(), remainder.Number(), nil
}

// Div returns n / other rounded toward zero.
func (n Number) Div(other Number) (Number, error) {
	q, _, err := n.DivMod(other)

	return q, err
}

// Mod returns the remainder of n / other.
func (n Number) Mod(other Number) (Number, error) {
	_, r, err := n.DivMod(other)

	return r, err
}
