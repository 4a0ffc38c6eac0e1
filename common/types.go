package common

import (
	"encoding/hex"
	"fmt"
)

// Hash is a 256-bit opaque value - the output of the domain hash function,
// also used to represent raw leaf values. It is immutable once produced.
type Hash [32]byte

// HashFromString decodes a hexadecimal string (without 0x prefix) into a Hash.
// The input must encode exactly 32 bytes.
func HashFromString(s string) (hash Hash, err error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, err
	}
	if len(data) != len(hash) {
		return Hash{}, fmt.Errorf("invalid hash length %d", len(data))
	}
	copy(hash[:], data)
	return hash, nil
}

func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}
