// Package frontier provides the minimal-storage variant of the deposit tree.
// It keeps only the "frontier" of the tree - for every level the left sibling
// that is still waiting for its right sibling - plus the leaf counter, which
// is exactly the carry set of a binary counter representation of the leaf
// count. It can always produce the current root in O(Depth) work, but has no
// memory of past states and cannot produce inclusion proofs.
package frontier

import (
	"unsafe"

	"github.com/depositree/go-deposit-tree/backend/tree"
	"github.com/depositree/go-deposit-tree/common"
)

// Tree is the frontier-only Merkle accumulator. The zero value is not usable;
// trees must be created through New. It is a single-writer structure: the
// caller must serialize deposits, while Root and LeafCount may be called
// concurrently with each other as long as no deposit is in flight.
type Tree struct {
	branch [tree.Depth]common.Hash // branch[i] is the dangling left sibling at level i
	count  uint64
}

// New creates an empty frontier tree.
func New() *Tree {
	return &Tree{}
}

// Deposit inserts the given leaf at the next free position, updating the
// frontier by binary-counter carry propagation: a one bit of the new leaf
// count marks the level where the carried hash becomes a lone left sibling,
// every zero bit below it completes a pair whose combined hash is carried
// one level up.
func (t *Tree) Deposit(leaf common.Hash) error {
	if t.count >= tree.MaxLeafCount {
		return tree.ErrTreeFull
	}
	t.count++
	node := leaf
	size := t.count
	for level := 0; level < tree.Depth; level++ {
		if size&1 == 1 {
			t.branch[level] = node
			return nil
		}
		node = common.Keccak256Pair(t.branch[level], node)
		size >>= 1
	}
	// with count < 2^Depth the new count has a one bit below Depth, so the
	// loop above must have terminated through the early return
	panic("frontier tree invariant violated: carry propagation did not terminate")
}

// Root provides the Merkle root covering all deposited leaves. It folds the
// frontier from the leaf level upwards, taking the stored left sibling where
// the leaf count has a one bit and the empty-subtree hash where it has a
// zero bit. The tree is not modified.
func (t *Tree) Root() (common.Hash, error) {
	var node common.Hash
	size := t.count
	for level := 0; level < tree.Depth; level++ {
		if size&1 == 1 {
			node = common.Keccak256Pair(t.branch[level], node)
		} else {
			node = common.Keccak256Pair(node, tree.ZeroHash(level))
		}
		size >>= 1
	}
	return node, nil
}

// LeafCount provides the amount of leaves deposited so far.
func (t *Tree) LeafCount() uint64 {
	return t.count
}

// GetMemoryFootprint provides the size of the tree in memory in bytes
func (t *Tree) GetMemoryFootprint() *common.MemoryFootprint {
	return common.NewMemoryFootprint(unsafe.Sizeof(*t))
}
