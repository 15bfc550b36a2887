package codec

import (
	"bytes"
	"errors"
	"io"

	"github.com/calebcase/oops"

	"github.com/calebcase/bitnum"
)

// MaxSize is the largest data size, in bytes, the decoder accepts for a
// single block (4 GiB). Block data is buffered as it arrives, so a truncated
// stream never costs more memory than the bytes it actually holds.
const MaxSize = 1 << 32

// Decoder reads numbers written by Encoder.
type Decoder struct {
	schema Schema
	r      io.Reader

	value    [1]byte
	consumed uint64
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, r io.Reader) *Decoder {
	return &Decoder{
		schema: schema,
		r:      r,
	}
}

// Consumed returns the number of bytes read so far.
func (d *Decoder) Consumed() uint64 {
	return d.consumed
}

// Decode reads the next number. It returns io.EOF, unwrapped, when the input
// ends cleanly between blocks.
func (d *Decoder) Decode() (n bitnum.Number, err error) {
	_, err = io.ReadFull(d.r, d.value[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return bitnum.Number{}, io.EOF
		}

		return bitnum.Number{}, Error.Wrap(oops.Trace(err))
	}

	d.consumed += 1

	defer Error.WrapP(&err)

	b := d.value[0]

	t, ok := Types.Match(b)
	if !ok {
		return bitnum.Number{}, Error.New("unexpected byte: %08b", b)
	}

	var data []byte

	switch t {
	case Empty:
		return d.schema.fit(bitnum.Number{})
	case Data:
		data = []byte{b & t.Mask}
	case Data1:
		data = []byte{b & t.Mask, 0}
		err = d.read(data[1:])
	case Data2:
		data = []byte{b & t.Mask, 0, 0}
		err = d.read(data[1:])
	case DataSize:
		data = make([]byte, int(b&t.Mask)+1)
		err = d.read(data)
	case DataSizeSize:
		sizeBytes := make([]byte, int(b&t.Mask)+1)

		err = d.read(sizeBytes)
		if err != nil {
			return bitnum.Number{}, err
		}

		// Sizes are stored minus one.
		size := unpack(sizeBytes).Uint64()
		if size >= MaxSize {
			return bitnum.Number{}, TooLarge.New("block size=%d max=%d", size, uint64(MaxSize))
		}

		data, err = d.readN(int64(size) + 1)
	}
	if err != nil {
		return bitnum.Number{}, err
	}

	return d.schema.fit(unpack(data))
}

// readN reads exactly n bytes, growing the buffer only as data arrives.
func (d *Decoder) readN(n int64) (_ []byte, err error) {
	buf := &bytes.Buffer{}

	copied, err := io.CopyN(buf, d.r, n)
	d.consumed += uint64(copied)

	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return nil, oops.Trace(err)
	}

	return buf.Bytes(), nil
}

// read fills buf. Running out of input part way through a block is an
// io.ErrUnexpectedEOF.
func (d *Decoder) read(buf []byte) (err error) {
	n, err := io.ReadFull(d.r, buf)
	d.consumed += uint64(n)

	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return oops.Trace(err)
	}

	return nil
}
