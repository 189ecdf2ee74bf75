package capability

// VectorLen is the byte length of the native capability bit vector.
const VectorLen = 16

// ToBits serializes the set into the native 128-bit capability vector.
// Flag i occupies bit i, little-endian: byte i/8, bit i%8. This layout is a
// wire contract with the runtime; see the package documentation.
func (s Set) ToBits() [VectorLen]byte {
	var out [VectorLen]byte
	for i, v := range s.flags {
		if v {
			out[i/8] |= 1 << (uint(i) % 8)
		}
	}
	return out
}

// FromBits deserializes a native capability vector. Bits beyond the defined
// flags are ignored; they belong to capabilities this layer does not model.
func FromBits(bits [VectorLen]byte) Set {
	var s Set
	for i := 0; i < NumFlags; i++ {
		if bits[i/8]&(1<<(uint(i)%8)) != 0 {
			s.flags[i] = true
		}
	}
	return s
}
