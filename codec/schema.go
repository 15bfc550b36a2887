package codec

import "github.com/calebcase/bitnum"

// Schema for a number field.
type Schema struct {
	// Bits is the width of the field. Encoding a number with more
	// significant bits fails with TooLarge, and decoded numbers are
	// zero-extended to Bits. Zero leaves the width open: numbers decode at
	// their minimal width.
	Bits int
}

func (s Schema) check(n bitnum.Number) (err error) {
	if s.Bits > 0 && n.BitLen() > s.Bits {
		return TooLarge.New("bits=%d schema=%d", n.BitLen(), s.Bits)
	}

	return nil
}

func (s Schema) fit(n bitnum.Number) (_ bitnum.Number, err error) {
	err = s.check(n)
	if err != nil {
		return bitnum.Number{}, err
	}

	n = n.Trim()
	if s.Bits <= 0 {
		return n, nil
	}

	return n.Extend(s.Bits)
}
