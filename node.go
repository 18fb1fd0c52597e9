package huffpack

import (
	"container/heap"
)

// Node is one node of the Huffman coding tree.  Leaves carry a byte
// value; internal nodes carry exactly two children.
type Node struct {
	Value  byte
	Weight uint64
	Left   *Node
	Right  *Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree deterministically constructs a Huffman coding tree from ft
// by repeated min-extraction: the two lightest nodes are merged under a
// fresh internal node until one root remains.
//
// Leaves are inserted in ascending byte-value order, and ties between
// equal weights are resolved only by the heap's structural invariant.
// Both halves of that behavior are part of the wire protocol: the
// decoder reruns this exact procedure on the frequency table from the
// header, and any divergence would desynchronize the two trees.
//
// Returns nil when no byte value has a nonzero count.  When exactly one
// value is present, its leaf is returned as the root directly, with no
// internal node above it.
func BuildTree(ft *FrequencyTable) *Node {
	h := newNodeHeap()
	for i := 0; i < AlphabetSize; i++ {
		if ft[i] != 0 {
			heap.Push(h, &Node{Value: byte(i), Weight: ft[i]})
		}
	}

	if h.Len() == 0 {
		return nil
	}

	for h.Len() > 1 {
		a := heap.Pop(h).(*Node)
		b := heap.Pop(h).(*Node)
		heap.Push(h, &Node{
			Weight: a.Weight + b.Weight,
			Left:   a,
			Right:  b,
		})
	}
	return heap.Pop(h).(*Node)
}

// type nodeHeap {{{

// nodeHeap is a binary min-heap over *Node ordered by Weight alone.
// There is deliberately no secondary key: reproducibility between
// encoder and decoder comes from both sides running the identical
// procedure on the identical table, not from a canonical ordering.
type nodeHeap struct {
	list []*Node
}

func newNodeHeap() *nodeHeap {
	return &nodeHeap{list: make([]*Node, 0, AlphabetSize)}
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Less(i, j int) bool {
	return h.list[i].Weight < h.list[j].Weight
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
