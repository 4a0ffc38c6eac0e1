// Package ntmemory provides an in-memory node store for the indexed deposit
// tree - a plain map from (level, position) to the node hash.
package ntmemory

import (
	"unsafe"

	"github.com/depositree/go-deposit-tree/common"
)

// nodeId is the composite key of a tree node in the store.
type nodeId struct {
	level    int
	position uint64
}

// Store is an in-memory tree.NodeStore implementation.
type Store struct {
	nodes     map[nodeId]common.Hash
	leafCount uint64
}

// NewStore creates a new empty in-memory node store.
func NewStore() *Store {
	return &Store{nodes: map[nodeId]common.Hash{}}
}

// GetNode provides the hash of the node at the given level and position and
// whether such a node has been written at all.
func (s *Store) GetNode(level int, position uint64) (common.Hash, bool, error) {
	node, exists := s.nodes[nodeId{level, position}]
	return node, exists, nil
}

// PutNode stores the hash of the node at the given level and position.
func (s *Store) PutNode(level int, position uint64, hash common.Hash) error {
	s.nodes[nodeId{level, position}] = hash
	return nil
}

// GetLeafCount provides the persisted leaf counter.
func (s *Store) GetLeafCount() (uint64, error) {
	return s.leafCount, nil
}

// PutLeafCount persists the leaf counter.
func (s *Store) PutLeafCount(count uint64) error {
	s.leafCount = count
	return nil
}

// GetMemoryFootprint provides the size of the store in memory in bytes
func (s *Store) GetMemoryFootprint() *common.MemoryFootprint {
	entrySize := unsafe.Sizeof(nodeId{}) + unsafe.Sizeof(common.Hash{})
	return common.NewMemoryFootprint(unsafe.Sizeof(*s) + uintptr(len(s.nodes))*entrySize)
}
