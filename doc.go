// Package huffpack implements a static, byte-oriented Huffman compressor
// and decompressor with a self-describing header.
//
// A compressed blob carries the total symbol count and the complete
// 256-entry frequency table in front of the packed bitstream.  The decoder
// reruns the encoder's deterministic tree construction on that table to
// recover the coding tree; the tree itself is never serialized.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffpack
