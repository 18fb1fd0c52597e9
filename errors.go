package huffpack

import (
	"errors"
)

var (
	// ErrEmptyInput is returned by Compress when there are no input
	// bytes: an all-zero frequency table describes nothing.
	ErrEmptyInput = errors.New("huffpack: empty input, nothing to compress")

	// ErrTruncatedHeader is returned by Decompress when the blob ends
	// before the fixed-size header does.
	ErrTruncatedHeader = errors.New("huffpack: truncated header")

	// ErrHeaderCorrupt is returned by Decompress when a header field is
	// impossible, such as a symbol count too large to materialize.
	ErrHeaderCorrupt = errors.New("huffpack: corrupt header")

	// ErrUnexpectedEOS is returned by Decompress when the bitstream is
	// exhausted before the expected number of symbols has been decoded.
	ErrUnexpectedEOS = errors.New("huffpack: bitstream ended before the expected symbol count")

	// ErrTreeConstruction is returned when a coding tree cannot be
	// built or does not cover a byte that needs a code.
	ErrTreeConstruction = errors.New("huffpack: cannot construct coding tree")
)
