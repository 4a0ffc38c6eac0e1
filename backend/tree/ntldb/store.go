// Package ntldb provides a LevelDB-backed node store for the indexed deposit
// tree. Nodes live under the hash tablespace, keyed by one level byte
// followed by the big-endian node position; the leaf counter lives under its
// own tablespace. A tree backed by this store survives process restarts.
package ntldb

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/depositree/go-deposit-tree/backend"
	"github.com/depositree/go-deposit-tree/common"
	"github.com/syndtr/goleveldb/leveldb"
)

// Store is a tree.NodeStore implementation persisting nodes in LevelDB.
type Store struct {
	db         backend.LevelDB
	serializer common.HashSerializer
}

// NewStore creates a node store on top of the given LevelDB connection.
func NewStore(db backend.LevelDB) *Store {
	return &Store{db: db}
}

// GetNode provides the hash of the node at the given level and position and
// whether such a node has been written at all.
func (s *Store) GetNode(level int, position uint64) (common.Hash, bool, error) {
	value, err := s.db.Get(s.nodeKey(level, position).ToBytes(), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return common.Hash{}, false, nil
	}
	if err != nil {
		return common.Hash{}, false, fmt.Errorf("failed to read node %d/%d; %w", level, position, err)
	}
	return s.serializer.FromBytes(value), true, nil
}

// PutNode stores the hash of the node at the given level and position.
func (s *Store) PutNode(level int, position uint64, hash common.Hash) error {
	return s.db.Put(s.nodeKey(level, position).ToBytes(), s.serializer.ToBytes(hash), nil)
}

// GetLeafCount provides the persisted leaf counter, zero for a fresh store.
func (s *Store) GetLeafCount() (uint64, error) {
	value, err := s.db.Get(s.leafCountKey().ToBytes(), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read leaf count; %w", err)
	}
	if len(value) != 8 {
		return 0, fmt.Errorf("corrupted leaf count of %d bytes", len(value))
	}
	return binary.BigEndian.Uint64(value), nil
}

// PutLeafCount persists the leaf counter.
func (s *Store) PutLeafCount(count uint64) error {
	return s.db.Put(s.leafCountKey().ToBytes(), binary.BigEndian.AppendUint64(nil, count), nil)
}

// nodeKey provides the database key of a tree node.
// The key is: [tableSpace][level][position], the level being 8bit and the
// position 32bit.
func (s *Store) nodeKey(level int, position uint64) backend.DbKey {
	return backend.ToDBKey(backend.HashKey,
		binary.BigEndian.AppendUint32([]byte{uint8(level)}, uint32(position)))
}

// leafCountKey provides the database key of the leaf counter.
func (s *Store) leafCountKey() backend.DbKey {
	return backend.ToDBKey(backend.LeafCountKey, nil)
}

// GetMemoryFootprint provides the size of the store in memory in bytes
func (s *Store) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(0)
	mf.AddChild("levelDb", s.db.GetMemoryFootprint())
	return mf
}
