package huffpack

import (
	"fmt"
	"strings"
)

// BitString is a packed sequence of bits.  Within each octet, bits are
// addressed most significant first.
//
// Invariants:
//   - 0 <= BitLength <= len(Packed)*8
//   - if BitLength%8 != 0, the low (8 - BitLength%8) bits of
//     Packed[BitLength/8] are zero
type BitString struct {
	Packed    []byte
	BitLength int
}

// packBits packs a sequence of 0/1 values into a fresh BitString.
func packBits(bits []byte) BitString {
	bs := BitString{
		Packed:    make([]byte, (len(bits)+7)/8),
		BitLength: len(bits),
	}
	for i, b := range bits {
		if b != 0 {
			bs.Packed[i/8] |= 1 << uint(7-i%8)
		}
	}
	return bs
}

// Bit returns the bit at position i, as 0 or 1.
func (bs BitString) Bit(i int) byte {
	return (bs.Packed[i/8] >> uint(7-i%8)) & 1
}

// String returns the string representation of this BitString.
func (bs BitString) String() string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < bs.BitLength; i++ {
		sb.WriteByte('0' + bs.Bit(i))
	}
	sb.WriteByte('"')
	return sb.String()
}

var _ fmt.Stringer = BitString{}
