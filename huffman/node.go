package huffman

// Node is one node of a Huffman code tree. A Node is a leaf iff both children
// are nil; internal nodes always have exactly two. Parent is a back-reference
// used only to walk leaf-to-root when reconstructing a code; ownership of the
// node set stays strictly root-to-children.
type Node struct {
	Weight int64
	Symbol byte // meaningful at leaves; internal nodes carry the first-merged child's symbol
	C0, C1 *Node
	Parent *Node
}

// Leaf reports whether n has no children.
func (n *Node) Leaf() bool { return n.C0 == nil && n.C1 == nil }

// less orders nodes during tree construction: lower weight first, equal
// weights broken by lower symbol. Both sides of the format must build with
// this exact predicate or their trees diverge.
func less(a, b *Node) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.Symbol < b.Symbol
}

// nodeHeap is a min-heap over the construction predicate.
type nodeHeap []*Node

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return less(h[i], h[j]) }
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(*Node))
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil // avoid memory leak
	*h = old[:n-1]
	return x
}
