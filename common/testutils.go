package common

import (
	"encoding/binary"
)

// HashFromNumber provides a Hash with the given number encoded in its
// big-endian tail, i.e. the equivalent of the EVM bytes32(num) value.
func HashFromNumber(num uint64) (hash Hash) {
	binary.BigEndian.PutUint64(hash[24:], num)
	return
}
