package huffpack

import (
	"bytes"
	"fmt"
)

// Compress encodes input into a self-contained compressed blob: the
// fixed-size header followed by the packed bitstream.  The input is
// walked twice, once to count frequencies and once to encode; the
// header must precede the bitstream, so the order is forced.
//
// Compressing an empty input fails with ErrEmptyInput.  A failed
// Compress never returns a usable blob.
func Compress(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	ft, total := CountBytes(input)
	root := BuildTree(ft)
	if root == nil {
		// Unreachable for a nonempty input; kept so a failure here
		// surfaces as an error instead of a nil dereference.
		return nil, ErrTreeConstruction
	}
	book := NewCodeBook(root)

	var buf bytes.Buffer
	buf.Grow(HeaderSize + len(input))
	if err := writeHeader(&buf, total, ft); err != nil {
		return nil, err
	}

	bw := NewBitWriter(&buf)
	for _, b := range input {
		code, ok := book.Code(b)
		if !ok {
			return nil, fmt.Errorf("%w: no code for byte %#02x", ErrTreeConstruction, b)
		}
		if err := bw.WriteCode(code); err != nil {
			return nil, fmt.Errorf("huffpack: writing bitstream: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return nil, fmt.Errorf("huffpack: flushing bitstream: %w", err)
	}
	return buf.Bytes(), nil
}
