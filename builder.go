package bitnum

// Builder assembles a Number one bit at a time. The zero value is an empty
// builder ready to use.
type Builder struct {
	bits []byte
}

// NewBuilder returns a builder seeded with a copy of n's bits.
func NewBuilder(n Number) *Builder {
	return &Builder{bits: n.Bits()}
}

// Grow reserves room for another size bits.
func (b *Builder) Grow(size int) {
	if size <= 0 || cap(b.bits)-len(b.bits) >= size {
		return
	}

	bits := make([]byte, len(b.bits), len(b.bits)+size)
	copy(bits, b.bits)
	b.bits = bits
}

// AppendBit adds bit as the new least significant bit. Any non-zero value is
// stored as 1.
func (b *Builder) AppendBit(bit byte) {
	b.bits = append(b.bits, normalize(bit))
}

// PrependBit adds bit as the new most significant bit. Any non-zero value is
// stored as 1.
func (b *Builder) PrependBit(bit byte) {
	b.bits = append(b.bits, 0)
	copy(b.bits[1:], b.bits)
	b.bits[0] = normalize(bit)
}

// Len returns the number of bits appended so far.
func (b *Builder) Len() int {
	return len(b.bits)
}

// Reset empties the builder.
func (b *Builder) Reset() {
	b.bits = b.bits[:0]
}

// Number returns the bits built so far. Later changes to the builder do not
// affect the returned Number.
func (b *Builder) Number() Number {
	bits := make([]byte, len(b.bits))
	copy(bits, b.bits)

	return Number{bits: bits}
}

func normalize(bit byte) byte {
	if bit != 0 {
		return 1
	}

	return 0
}
