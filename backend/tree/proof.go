package tree

import "github.com/depositree/go-deposit-tree/common"

// Proof is an inclusion proof of a single leaf: the sibling hashes along the
// path from the leaf to the root, ordered from the leaf level upwards.
type Proof [Depth]common.Hash

// RootFromProof reconstructs the root committed to by the given proof for a
// leaf at the given position. At every level the carried value is combined
// with the sibling on the side selected by the parity bit of the position.
// The proof is valid if the result equals the root of the tree the proof was
// taken from. This is the reference verification algorithm used by the tests;
// verifying proofs produced elsewhere is out of the scope of this package.
func RootFromProof(leaf common.Hash, index uint64, proof Proof) common.Hash {
	node := leaf
	for level := 0; level < Depth; level++ {
		if index&1 == 0 {
			node = common.Keccak256Pair(node, proof[level])
		} else {
			node = common.Keccak256Pair(proof[level], node)
		}
		index >>= 1
	}
	return node
}
