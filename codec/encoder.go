package codec

import (
	"io"

	"github.com/calebcase/oops"

	"github.com/calebcase/bitnum"
)

// Encoder writes numbers as BSV data control blocks.
type Encoder struct {
	schema Schema
	w      io.Writer
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, w io.Writer) *Encoder {
	return &Encoder{
		schema: schema,
		w:      w,
	}
}

// Encode writes n using the smallest control block that holds its
// significant bits. Zero-width numbers are written as an Empty block.
func (e *Encoder) Encode(n bitnum.Number) (err error) {
	defer Error.WrapP(&err)

	err = e.schema.check(n)
	if err != nil {
		return err
	}

	if n.BitWidth() == 0 {
		return e.write([]byte{Empty.Prefix})
	}

	bits := n.BitLen()
	data := pack(n)

	switch {
	case bits <= 7:
		return e.write([]byte{
			Data.Prefix | data[0],
		})
	case bits <= 13: // 5+8
		data = padLeft(data, 2)

		return e.write([]byte{
			Data1.Prefix | data[0],
			data[1],
		})
	case bits <= 20: // 4+8+8
		data = padLeft(data, 3)

		return e.write([]byte{
			Data2.Prefix | data[0],
			data[1],
			data[2],
		})
	case len(data) <= 64: // 2^6
		return e.write(append(
			[]byte{DataSize.Prefix | byte(len(data)-1)},
			data...,
		))
	}

	// Sizes are stored minus one to extend their range.
	size := pack(bitnum.FromUint64(uint64(len(data) - 1)))

	err = e.write([]byte{DataSizeSize.Prefix | byte(len(size)-1)})
	if err != nil {
		return err
	}

	err = e.write(size)
	if err != nil {
		return err
	}

	return e.write(data)
}

func (e *Encoder) write(b []byte) (err error) {
	_, err = e.w.Write(b)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}
