package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// maxCodeBits bounds the length of any prefix code: a 256-symbol
// alphabet needs at most 255 merges, so no leaf sits deeper than 255.
// The bound also caps the traversal recursion depth.
const maxCodeBits = AlphabetSize - 1

// CodeBook maps each byte value to its prefix code.  Byte values absent
// from the input keep a zero-length BitString.
type CodeBook [AlphabetSize]BitString

// NewCodeBook derives the prefix codes from a coding tree by depth-first
// traversal: descending left appends a 0 bit, descending right a 1 bit.
//
// A root that is itself a leaf (single-symbol input) is assigned the
// one-bit code "0" by convention, with no traversal.
func NewCodeBook(root *Node) *CodeBook {
	book := new(CodeBook)
	if root.IsLeaf() {
		book[root.Value] = packBits([]byte{0})
		return book
	}
	var path [maxCodeBits]byte
	book.walk(root, path[:], 0)
	return book
}

func (book *CodeBook) walk(n *Node, path []byte, depth int) {
	if n.IsLeaf() {
		book[n.Value] = packBits(path[:depth])
		return
	}
	assert.Assertf(depth < maxCodeBits, "code length %d exceeds maximum %d", depth+1, maxCodeBits)
	path[depth] = 0
	book.walk(n.Left, path, depth+1)
	path[depth] = 1
	book.walk(n.Right, path, depth+1)
}

// Code returns the prefix code for value, and false if value has none.
func (book *CodeBook) Code(value byte) (BitString, bool) {
	bs := book[value]
	return bs, bs.BitLength != 0
}

// Dump writes a programmer-readable debugging dump of the CodeBook to
// the given writer.
func (book *CodeBook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeBook{\n")
	for i := 0; i < AlphabetSize; i++ {
		bs := book[i]
		if bs.BitLength == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tCode(%d) = %s\n", i, bs)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
