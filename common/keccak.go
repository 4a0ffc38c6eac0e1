package common

import (
	"sync"

	"golang.org/x/crypto/sha3"
)

// keccakHasher is the subset of the sha3 state needed for hashing. The Read
// method allows fetching the digest without the allocation done by Sum.
type keccakHasher interface {
	Reset()
	Write(in []byte) (int, error)
	Read(out []byte) (int, error)
}

var keccakHasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

// Keccak256 computes the keccak256 hash of the given data.
func Keccak256(data []byte) Hash {
	hasher := keccakHasherPool.Get().(keccakHasher)
	hasher.Reset()
	hasher.Write(data)
	var res Hash
	hasher.Read(res[:])
	keccakHasherPool.Put(hasher)
	return res
}

// Keccak256Pair computes the keccak256 hash of the concatenation of the two
// given hashes. This is the domain hash combining two Merkle tree nodes into
// their parent; the order of the arguments matters.
func Keccak256Pair(left, right Hash) Hash {
	hasher := keccakHasherPool.Get().(keccakHasher)
	hasher.Reset()
	hasher.Write(left[:])
	hasher.Write(right[:])
	var res Hash
	hasher.Read(res[:])
	keccakHasherPool.Put(hasher)
	return res
}
