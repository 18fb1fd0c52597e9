package huffpack

import (
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// BitWriter packs individual bits MSB-first into an output byte stream:
// the first bit written to each octet occupies its most significant bit
// position.  Flush terminates the writer.
type BitWriter struct {
	w      *bitio.Writer
	closed bool
}

// NewBitWriter returns a BitWriter emitting to w.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{w: bitio.NewWriter(w)}
}

// WriteBit writes a single bit.  Any nonzero bit is written as 1.
func (bw *BitWriter) WriteBit(bit byte) error {
	assert.Assertf(!bw.closed, "WriteBit after Flush")
	return bw.w.WriteBool(bit != 0)
}

// WriteCode writes every bit of bs in order.
func (bw *BitWriter) WriteCode(bs BitString) error {
	assert.Assertf(!bw.closed, "WriteCode after Flush")
	full := bs.BitLength / 8
	for i := 0; i < full; i++ {
		if err := bw.w.WriteByte(bs.Packed[i]); err != nil {
			return err
		}
	}
	if rem := bs.BitLength % 8; rem != 0 {
		tail := uint64(bs.Packed[full] >> uint(8-rem))
		if err := bw.w.WriteBits(tail, uint8(rem)); err != nil {
			return err
		}
	}
	return nil
}

// Flush emits any buffered partial byte, zero-filling the unused low bit
// positions, and irreversibly terminates the writer.  The padding bits
// carry no meaning; readers stop on the expected symbol count, never on
// stream length.
func (bw *BitWriter) Flush() error {
	assert.Assertf(!bw.closed, "Flush after Flush")
	bw.closed = true
	_, err := bw.w.Align()
	return err
}

// BitReader yields bits MSB-first from an input byte stream, fetching
// one octet at a time into an internal buffer.
type BitReader struct {
	r *bitio.Reader
}

// NewBitReader returns a BitReader consuming r.
func NewBitReader(r io.Reader) *BitReader {
	return &BitReader{r: bitio.NewReader(r)}
}

// ReadBit returns the next bit as 0 or 1.  It reports io.EOF only when a
// fresh octet cannot be fetched and no buffered bits remain -- never
// mid-octet.
func (br *BitReader) ReadBit() (byte, error) {
	b, err := br.r.ReadBool()
	if err != nil {
		return 0, err
	}
	if b {
		return 1, nil
	}
	return 0, nil
}
