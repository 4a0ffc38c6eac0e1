package tree

import "github.com/depositree/go-deposit-tree/common"

// zeroHashes[i] is the root of a perfectly empty subtree of height i.
// Level 0 is the all-zero hash standing in for an absent leaf; every other
// level is the hash of two copies of the level below.
var zeroHashes = func() (hashes [Depth + 1]common.Hash) {
	for i := 1; i <= Depth; i++ {
		hashes[i] = common.Keccak256Pair(hashes[i-1], hashes[i-1])
	}
	return hashes
}()

// ZeroHash provides the root of a perfectly empty subtree rooted at the
// given level. The level must be in the range [0, Depth].
func ZeroHash(level int) common.Hash {
	return zeroHashes[level]
}
