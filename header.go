package huffpack

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Compressed blob layout:
//
//	offset 0     8 bytes     total symbol count, unsigned 64-bit
//	offset 8     2048 bytes  frequencies[256], each unsigned 64-bit,
//	                         index = byte value
//	offset 2056  remainder   packed bitstream, MSB-first per octet,
//	                         final octet zero-padded in the low bits
//
// All integers are in host byte order: the format originates from a
// program that wrote raw in-memory words, so a blob is only portable
// between machines of matching endianness.
const (
	countSize = 8
	tableSize = AlphabetSize * 8

	// HeaderSize is the fixed size of the header preceding the
	// bitstream in every compressed blob.
	HeaderSize = countSize + tableSize
)

// writeHeader emits the fixed-size header: the total symbol count
// followed by all 256 frequency counters, zero entries included.  The
// zero entries are not waste; the decoder needs the complete table to
// rerun tree construction byte-for-byte.
func writeHeader(w io.Writer, total uint64, ft *FrequencyTable) error {
	var hdr [HeaderSize]byte
	binary.NativeEndian.PutUint64(hdr[0:countSize], total)
	for i, f := range ft {
		binary.NativeEndian.PutUint64(hdr[countSize+i*8:], f)
	}
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("huffpack: writing header: %w", err)
	}
	return nil
}

// readHeader reads the fixed-size header back.  A stream shorter than
// HeaderSize fails with ErrTruncatedHeader.
func readHeader(r io.Reader) (uint64, *FrequencyTable, error) {
	var hdr [HeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, nil, ErrTruncatedHeader
		}
		return 0, nil, fmt.Errorf("huffpack: reading header: %w", err)
	}
	total := binary.NativeEndian.Uint64(hdr[0:countSize])
	ft := new(FrequencyTable)
	for i := range ft {
		ft[i] = binary.NativeEndian.Uint64(hdr[countSize+i*8:])
	}
	return total, ft, nil
}
