// Package indexed provides the fully-indexed variant of the deposit tree.
// Every internal node ever computed is retained in a sparse NodeStore keyed
// by (level, position), which allows the tree to answer root queries and
// produce inclusion proofs not only for the current leaf count but for any
// past one. A node is written exactly once - when the subtree it roots is
// completed by a deposit - and is never overwritten, so the store of a tree
// with n leaves contains the stores of all its predecessors.
package indexed

import (
	"fmt"
	"unsafe"

	"github.com/depositree/go-deposit-tree/backend/tree"
	"github.com/depositree/go-deposit-tree/common"
)

// Tree is the fully-indexed Merkle accumulator. It is a single-writer
// structure: the caller must serialize deposits, while root and proof
// queries may run concurrently with each other as long as no deposit is in
// flight.
type Tree struct {
	store tree.NodeStore
	count uint64
}

// New creates an indexed tree on top of the given node store, resuming from
// the leaf count the store has persisted. For an empty store the resulting
// tree is empty.
func New(store tree.NodeStore) (*Tree, error) {
	count, err := store.GetLeafCount()
	if err != nil {
		return nil, fmt.Errorf("failed to restore leaf count; %w", err)
	}
	return &Tree{store: store, count: count}, nil
}

// Deposit inserts the given leaf at the next free position. The leaf is
// written at level 0 and, for as long as the inserted node is a right child,
// combined with its already-stored left sibling into their parent one level
// up. The climb stops at the first left child - its parent cannot be
// computed before the right sibling arrives.
func (t *Tree) Deposit(leaf common.Hash) error {
	if t.count >= tree.MaxLeafCount {
		return tree.ErrTreeFull
	}
	index := t.count
	if err := t.store.PutNode(0, index, leaf); err != nil {
		return fmt.Errorf("failed to store leaf %d; %w", index, err)
	}
	node := leaf
	level := 0
	for index&1 == 1 {
		sibling, exists, err := t.store.GetNode(level, index-1)
		if err != nil {
			return fmt.Errorf("failed to load node %d/%d; %w", level, index-1, err)
		}
		if !exists {
			panic(fmt.Sprintf("indexed tree invariant violated: missing left sibling %d/%d", level, index-1))
		}
		node = common.Keccak256Pair(sibling, node)
		index >>= 1
		level++
		if err := t.store.PutNode(level, index, node); err != nil {
			return fmt.Errorf("failed to store node %d/%d; %w", level, index, err)
		}
	}
	t.count++
	if err := t.store.PutLeafCount(t.count); err != nil {
		return fmt.Errorf("failed to store leaf count; %w", err)
	}
	return nil
}

// Root provides the Merkle root covering all deposited leaves.
func (t *Tree) Root() (common.Hash, error) {
	return t.RootAt(t.count)
}

// RootAt provides the Merkle root as it was when the tree contained exactly
// the given amount of leaves. A count of zero yields the empty-tree root.
func (t *Tree) RootAt(count uint64) (common.Hash, error) {
	if count > t.count {
		return common.Hash{}, fmt.Errorf("%w: count %d exceeds leaf count %d", tree.ErrCountOutOfRange, count, t.count)
	}
	return t.nodeAt(tree.Depth, 0, count)
}

// GetMerkleProof provides the inclusion proof of the leaf at the given
// position, relative to the current root.
func (t *Tree) GetMerkleProof(index uint64) (tree.Proof, error) {
	return t.GetMerkleProofAt(index, t.count)
}

// GetMerkleProofAt provides the inclusion proof of the leaf at the given
// position, relative to the root of the snapshot with the given amount of
// leaves. The proof holds the snapshot value of the sibling of every node on
// the path from the leaf to the root, ordered from the leaf level upwards.
func (t *Tree) GetMerkleProofAt(index, count uint64) (proof tree.Proof, err error) {
	if count > t.count {
		return proof, fmt.Errorf("%w: count %d exceeds leaf count %d", tree.ErrCountOutOfRange, count, t.count)
	}
	if index >= count {
		return proof, fmt.Errorf("%w: index %d not deposited within the first %d leaves", tree.ErrIndexOutOfRange, index, count)
	}
	for level := 0; level < tree.Depth; level++ {
		sibling := (index >> level) ^ 1
		proof[level], err = t.nodeAt(level, sibling, count)
		if err != nil {
			return proof, err
		}
	}
	return proof, nil
}

// LeafCount provides the amount of leaves deposited so far.
func (t *Tree) LeafCount() uint64 {
	return t.count
}

// nodeAt resolves the value of the node at the given level and position as
// it was when the tree contained exactly count leaves. A node whose subtree
// was already complete at that point has been stored and is reused as is -
// this covers leaves, stored siblings and already-closed parents alike. A
// node whose subtree held no leaf at all resolves to the empty-subtree hash
// of its level. Only nodes on the partially-filled right edge of the
// snapshot have to be recombined from their children; at most one child of
// such a node is partial again, so the recursion is a single descent of at
// most level steps.
func (t *Tree) nodeAt(level int, position, count uint64) (common.Hash, error) {
	first := position << level
	if first+(1<<level) <= count {
		node, exists, err := t.store.GetNode(level, position)
		if err != nil {
			return common.Hash{}, fmt.Errorf("failed to load node %d/%d; %w", level, position, err)
		}
		if !exists {
			return common.Hash{}, fmt.Errorf("corrupted node store: missing node %d/%d", level, position)
		}
		return node, nil
	}
	if first >= count {
		return tree.ZeroHash(level), nil
	}
	left, err := t.nodeAt(level-1, 2*position, count)
	if err != nil {
		return common.Hash{}, err
	}
	right, err := t.nodeAt(level-1, 2*position+1, count)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Keccak256Pair(left, right), nil
}

// GetMemoryFootprint provides the size of the tree in memory in bytes
func (t *Tree) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*t))
	mf.AddChild("store", t.store.GetMemoryFootprint())
	return mf
}
