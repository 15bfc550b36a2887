package bitnum

import (
	"strings"
)

// Number is an unsigned binary number of arbitrary bit width. Bits are held
// most significant first, one bit per element.
//
// The zero value is a zero-width Number and represents 0. Operators never
// modify their operands; they always return a new Number.
type Number struct {
	bits []byte
}

var (
	one = Number{bits: []byte{1}}
	ten = Number{bits: []byte{1, 0, 1, 0}}
)

// FromUint64 returns v as a Number of minimal width. Zero yields a zero-width
// Number.
func FromUint64(v uint64) Number {
	b := &Builder{}

	for v != 0 {
		b.PrependBit(byte(v % 2))
		v /= 2
	}

	return b.Number()
}

// Parse reads a bit string, most significant bit first. Every character must
// be '0' or '1'. The empty string is the zero-width Number.
func Parse(s string) (n Number, err error) {
	defer Error.WrapP(&err)

	b := &Builder{}
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			b.AppendBit(0)
		case '1':
			b.AppendBit(1)
		default:
			return Number{}, MalformedInput.New("invalid binary digit %q at offset %d", s[i], i)
		}
	}

	return b.Number(), nil
}

// MustParse is like Parse but panics if s is not a bit string.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return n
}

// ParseDecimal reads a base 10 string of any length. The result has minimal
// width.
func ParseDecimal(s string) (n Number, err error) {
	defer Error.WrapP(&err)

	if len(s) == 0 {
		return Number{}, MalformedInput.New("empty decimal string")
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Number{}, MalformedInput.New("invalid decimal digit %q at offset %d", c, i)
		}

		n = n.Mul(ten).Add(FromUint64(uint64(c - '0'))).Trim()
	}

	return n, nil
}

// Clone returns a deep copy of n.
func (n Number) Clone() Number {
	return Number{bits: n.Bits()}
}

// Bits returns a copy of n's bits, most significant first.
func (n Number) Bits() []byte {
	bits := make([]byte, len(n.bits))
	copy(bits, n.bits)

	return bits
}

// Bit returns the bit of weight 2^i. Positions outside the width are 0.
func (n Number) Bit(i int) byte {
	if i < 0 || i >= len(n.bits) {
		return 0
	}

	return n.bits[len(n.bits)-1-i]
}

// BitWidth returns the number of bits in n, leading zeros included.
func (n Number) BitWidth() int {
	return len(n.bits)
}

// DisplayWidth returns the bit width rounded up to the nearest nibble.
func (n Number) DisplayWidth() int {
	w := len(n.bits)

	return w + (4-w%4)%4
}

// BitLen returns the number of significant bits (the width without leading
// zeros).
func (n Number) BitLen() int {
	for i, bit := range n.bits {
		if bit == 1 {
			return len(n.bits) - i
		}
	}

	return 0
}

// IsZero reports whether every bit of n is 0. A zero-width Number is zero.
func (n Number) IsZero() bool {
	return n.BitLen() == 0
}

// Trim returns n without its leading zeros. Zero trims to the zero-width
// Number.
func (n Number) Trim() Number {
	return n.truncate(n.BitLen())
}

// truncate keeps the low width bits of n.
func (n Number) truncate(width int) Number {
	if width >= len(n.bits) {
		return n.Clone()
	}

	bits := make([]byte, width)
	copy(bits, n.bits[len(n.bits)-width:])

	return Number{bits: bits}
}

// Uint64 returns the value of n. Only the low 64 bits are kept for wider
// values.
func (n Number) Uint64() (v uint64) {
	for _, bit := range n.bits {
		v = v<<1 | uint64(bit)
	}

	return v
}

// Text returns the base 10 representation of n.
func (n Number) Text() string {
	cur := n.Trim()
	if cur.IsZero() {
		return "0"
	}

	var digits []byte

	for !cur.IsZero() {
		q, r, _ := cur.DivMod(ten)

		digits = append(digits, '0'+byte(r.Uint64()))
		cur = q.Trim()
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return string(digits)
}

// String renders n zero-padded to a multiple of 4 bits, in nibbles separated
// by single spaces:
//
//  Parse("101")      -> "0101"
//  FromUint64(200)   -> "1100 1000"
//  FromUint64(0)     -> "0000"
func (n Number) String() string {
	if len(n.bits) == 0 {
		return "0000"
	}

	width := n.DisplayWidth()
	pad := width - len(n.bits)

	sb := &strings.Builder{}
	sb.Grow(width + width/4)

	for i := 0; i < width; i++ {
		if i > 0 && i%4 == 0 {
			sb.WriteByte(' ')
		}

		if i < pad {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('0' + n.bits[i-pad])
		}
	}

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler. The output is the raw bit
// string, so the width survives a round trip.
func (n Number) MarshalText() (text []byte, err error) {
	text = make([]byte, len(n.bits))
	for i, bit := range n.bits {
		text[i] = '0' + bit
	}

	return text, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Number) UnmarshalText(text []byte) (err error) {
	p, err := Parse(string(text))
	if err != nil {
		return err
	}

	*n = p

	return nil
}
