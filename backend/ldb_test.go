package backend

import (
	"encoding/binary"
	"testing"
)

func TestToDBKey_PrefixesKeyWithTableSpace(t *testing.T) {
	key := binary.BigEndian.AppendUint32([]byte{7}, 42)
	dbKey := ToDBKey(HashKey, key)
	bytes := dbKey.ToBytes()
	if bytes[0] != byte(HashKey) {
		t.Errorf("unexpected table space prefix %c", bytes[0])
	}
	if bytes[1] != 7 || binary.BigEndian.Uint32(bytes[2:]) != 42 {
		t.Errorf("unexpected key payload %v", bytes)
	}
}

func TestToDBKey_RejectsOversizedKeys(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("oversized key should have caused a panic")
		}
	}()
	ToDBKey(HashKey, make([]byte, 8))
}

var dbKeySink DbKey

func BenchmarkToDBKey(b *testing.B) {
	key := make([]byte, 5)
	for i := 1; i <= b.N; i++ {
		key[0] = byte(i)
		dbKeySink = ToDBKey(HashKey, key)
	}
}
