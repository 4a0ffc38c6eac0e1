package common

import "testing"

func TestHashSerializer_RoundTrip(t *testing.T) {
	serializer := HashSerializer{}
	hash := HashFromNumber(123456)
	bytes := serializer.ToBytes(hash)
	if len(bytes) != serializer.Size() {
		t.Errorf("unexpected serialized size %d", len(bytes))
	}
	if restored := serializer.FromBytes(bytes); restored != hash {
		t.Errorf("restored hash does not match, wanted %v, got %v", hash, restored)
	}
}
