package tree

import "github.com/depositree/go-deposit-tree/common"

//go:generate mockgen -source tree.go -destination tree_mocks.go -package tree

const (
	// Depth is the number of levels between a leaf and the root. It is a
	// compile-time constant shared by all tree implementations.
	Depth = 32

	// MaxLeafCount is the maximum amount of leaves a tree can hold. One
	// counter value is reserved so that a full-tree error can be raised
	// before the leaf counter overflows.
	MaxLeafCount = 1<<Depth - 1
)

const (
	// ErrTreeFull is returned by a deposit into a tree at capacity. The
	// failing deposit leaves the tree state unchanged.
	ErrTreeFull = common.ConstError("tree is full")

	// ErrIndexOutOfRange is returned when a proof is requested for a leaf
	// position that has not been deposited within the requested snapshot.
	ErrIndexOutOfRange = common.ConstError("leaf index out of range")

	// ErrCountOutOfRange is returned when a snapshot beyond the current
	// leaf count is requested.
	ErrCountOutOfRange = common.ConstError("leaf count out of range")
)

// Tree is an append-only Merkle accumulator of fixed depth over 256-bit leaf
// hashes. Leaves are inserted one at a time at the next free position;
// nothing is ever removed. Implementations are single-writer structures:
// deposits must be serialized by the caller, while read operations may run
// concurrently with each other as long as no deposit is in flight.
type Tree interface {

	// Deposit inserts the given leaf at the next free position.
	Deposit(leaf common.Hash) error

	// Root provides the Merkle root covering all deposited leaves.
	Root() (common.Hash, error)

	// LeafCount provides the amount of leaves deposited so far.
	LeafCount() uint64

	// provides the size of the tree in memory in bytes
	common.MemoryFootprintProvider
}

// ProvingTree is a Tree additionally able to answer historical root queries
// and to produce inclusion proofs, for the current leaf count as well as for
// any past one.
type ProvingTree interface {
	Tree

	// RootAt provides the Merkle root as it was when the tree contained
	// exactly the given amount of leaves.
	RootAt(count uint64) (common.Hash, error)

	// GetMerkleProof provides the inclusion proof of the leaf at the given
	// position, relative to the current root.
	GetMerkleProof(index uint64) (Proof, error)

	// GetMerkleProofAt provides the inclusion proof of the leaf at the given
	// position, relative to the root of the snapshot with the given amount
	// of leaves.
	GetMerkleProofAt(index, count uint64) (Proof, error)
}

// NodeStore provides the sparse (level, position) to hash mapping backing an
// indexed tree, together with the persisted leaf counter. Level 0 holds the
// leaves; level Depth holds the root. A node is written at most once - the
// mapping is append-only.
type NodeStore interface {

	// GetNode provides the hash of the node at the given level and position
	// and whether such a node has been written at all.
	GetNode(level int, position uint64) (common.Hash, bool, error)

	// PutNode stores the hash of the node at the given level and position.
	PutNode(level int, position uint64, hash common.Hash) error

	// GetLeafCount provides the persisted leaf counter, zero for a fresh store.
	GetLeafCount() (uint64, error)

	// PutLeafCount persists the leaf counter.
	PutLeafCount(count uint64) error

	// provides the size of the store in memory in bytes
	common.MemoryFootprintProvider
}
