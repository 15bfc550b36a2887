package bitnum

// Set replaces n's bits with a copy of other's.
func (n *Number) Set(other Number) {
	n.bits = other.Bits()
}

// AddAssign sets n to n + other.
func (n *Number) AddAssign(other Number) {
	*n = n.Add(other)
}

// SubAssign sets n to n - other.
func (n *Number) SubAssign(other Number) {
	*n = n.Sub(other)
}

// MulAssign sets n to n * other.
func (n *Number) MulAssign(other Number) {
	*n = n.Mul(other)
}

// DivAssign sets n to n / other. On error n is left unchanged.
func (n *Number) DivAssign(other Number) (err error) {
	q, err := n.Div(other)
	if err != nil {
		return err
	}

	*n = q

	return nil
}

// ModAssign sets n to n % other. On error n is left unchanged.
func (n *Number) ModAssign(other Number) (err error) {
	r, err := n.Mod(other)
	if err != nil {
		return err
	}

	*n = r

	return nil
}

// LshAssign shifts n left by s bits.
func (n *Number) LshAssign(s uint) {
	*n = n.Lsh(s)
}

// RshAssign shifts n right by s bits.
func (n *Number) RshAssign(s uint) {
	*n = n.Rsh(s)
}
