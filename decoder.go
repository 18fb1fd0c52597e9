package huffpack

import (
	"bytes"
	"fmt"
	"math"
)

// maxDecodePrealloc caps how much output capacity Decompress reserves up
// front on the header's say-so; anything beyond grows through append as
// the bitstream actually delivers symbols.
const maxDecodePrealloc = 1 << 20

// Decompress recovers the original bytes from a blob produced by
// Compress.
//
// The coding tree is rebuilt from the header's frequency table by the
// same deterministic procedure the encoder ran; no tree is ever read
// from the wire.  Decoding walks the tree one bit at a time, emitting a
// byte and resetting to the root at each leaf, until the header's symbol
// count has been produced.  Padding bits beyond that point are ignored.
func Decompress(blob []byte) ([]byte, error) {
	r := bytes.NewReader(blob)
	total, ft, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return []byte{}, nil
	}
	if total > math.MaxInt {
		return nil, fmt.Errorf("%w: symbol count %d cannot be materialized", ErrHeaderCorrupt, total)
	}

	// Single-symbol inputs bypass bit decoding entirely: the "tree" is
	// one leaf with no edges to traverse, so the bitstream carries no
	// information.
	if n, only := ft.distinct(); n == 1 {
		return bytes.Repeat([]byte{only}, int(total)), nil
	}

	root := BuildTree(ft)
	if root == nil {
		return nil, fmt.Errorf("%w: header claims %d symbols but the frequency table is empty", ErrTreeConstruction, total)
	}

	// The count is only a claim until the bitstream delivers, so cap the
	// preallocation rather than trust the header with it.
	capHint := total
	if capHint > maxDecodePrealloc {
		capHint = maxDecodePrealloc
	}
	out := make([]byte, 0, capHint)
	br := NewBitReader(r)
	node := root
	for uint64(len(out)) < total {
		bit, err := br.ReadBit()
		if err != nil {
			return nil, fmt.Errorf("%w: decoded %d of %d symbols", ErrUnexpectedEOS, len(out), total)
		}
		if bit == 0 {
			node = node.Left
		} else {
			node = node.Right
		}
		if node.IsLeaf() {
			out = append(out, node.Value)
			node = root
		}
	}
	return out, nil
}
