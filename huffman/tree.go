// Package huffman builds prefix code trees from byte frequency tables and
// encodes or decodes symbols against them one bit at a time.
//
// A tree built from a given frequency table is deterministic: equal-weight
// merge candidates are ordered by symbol, so the compress and decompress
// sides derive bit-for-bit identical code assignments from the same table.
package huffman

import (
	"container/heap"
	"errors"
)

var (
	// ErrEmptyTree is returned by Decode when the tree was built from an
	// all-zero frequency table. Such a stream holds zero symbols, so any
	// decode attempt is a caller error.
	ErrEmptyTree = errors.New("huffman: decode on empty tree")

	// ErrRebuilt is returned by Build when the tree was already built.
	ErrRebuilt = errors.New("huffman: tree already built")
)

// BitWriter is the bit sink Encode emits code bits to.
// *bitstream.Writer satisfies it.
type BitWriter interface {
	WriteBit(bit byte) error
}

// BitReader is the bit source Decode consumes.
// *bitstream.Reader satisfies it.
type BitReader interface {
	ReadBit() (byte, error)
}

// Tree is a Huffman code tree. Build it once from a frequency table, then use
// it read-only from any number of sequential Encode and Decode calls. Tree
// provides no internal locking.
type Tree struct {
	root   *Node
	leaves [256]*Node
	built  bool
}

// NewTree returns an empty tree.
func NewTree() *Tree { return &Tree{} }

// Build constructs the optimal prefix tree for freqs by repeatedly merging
// the two lowest-weight nodes. The merged parent takes the first-extracted
// child's symbol, which keeps tie-breaking among internal nodes
// deterministic. An all-zero table leaves the root nil; a table with a single
// non-zero count makes that leaf the root.
func (t *Tree) Build(freqs *FreqTable) error {
	if t.built {
		return ErrRebuilt
	}
	t.built = true

	h := make(nodeHeap, 0, 256)
	for i, c := range freqs {
		if c != 0 {
			leaf := &Node{Weight: int64(c), Symbol: byte(i)}
			t.leaves[i] = leaf
			h = append(h, leaf)
		}
	}
	if len(h) == 0 {
		return nil
	}

	heap.Init(&h)
	for h.Len() > 1 {
		first := heap.Pop(&h).(*Node)
		second := heap.Pop(&h).(*Node)
		parent := &Node{
			Weight: first.Weight + second.Weight,
			Symbol: first.Symbol,
			C0:     first,
			C1:     second,
		}
		first.Parent = parent
		second.Parent = parent
		heap.Push(&h, parent)
	}
	t.root = h[0]
	return nil
}

// Encode writes the code bits for sym to w in root-to-leaf order. The bits
// are recovered by walking the leaf's parent chain: a node contributes 0 when
// it is its parent's first child and 1 when it is the second.
//
// A tree holding a single leaf emits the fixed 1-bit code 0. Encoding a
// symbol absent from the frequency table is a no-op; a correctly paired
// caller never requests one, and callers must not rely on the no-op.
func (t *Tree) Encode(sym byte, w BitWriter) error {
	leaf := t.leaves[sym]
	if leaf == nil {
		return nil
	}
	if leaf.Parent == nil {
		return w.WriteBit(0)
	}

	// The parent-chain walk yields bits leaf-to-root; a skewed 256-leaf
	// tree is at most 255 deep.
	var code [256]byte
	n := 0
	for node := leaf; node.Parent != nil; node = node.Parent {
		if node == node.Parent.C0 {
			code[n] = 0
		} else {
			code[n] = 1
		}
		n++
	}
	for i := n - 1; i >= 0; i-- {
		if err := w.WriteBit(code[i]); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads bits from r, descending from the root until a leaf is
// reached, and returns the leaf's symbol. A bit source exhausted
// mid-traversal surfaces the reader's error, never a guessed symbol.
// Decoding against an empty tree returns ErrEmptyTree. A single-leaf root
// yields its symbol without reading any bits.
func (t *Tree) Decode(r BitReader) (byte, error) {
	node := t.root
	if node == nil {
		return 0, ErrEmptyTree
	}
	for !node.Leaf() {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			node = node.C0
		} else {
			node = node.C1
		}
	}
	return node.Symbol, nil
}
