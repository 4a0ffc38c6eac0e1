package common

import (
	"testing"
)

func TestHashFromString_RoundTrip(t *testing.T) {
	str := "27ae5ba08d7291c96c8cbddcc148bf48a6d68c7974b94356f53754ef6171d757"
	hash, err := HashFromString(str)
	if err != nil {
		t.Fatalf("failed to decode hash; %s", err)
	}
	if got, want := hash.String(), "0x"+str; got != want {
		t.Errorf("unexpected hash string, wanted %s, got %s", want, got)
	}
}

func TestHashFromString_RejectsInvalidInput(t *testing.T) {
	tests := []string{
		"xyz",      // not hexadecimal
		"ab",       // too short
		"27ae5ba0", // too short
		"27ae5ba08d7291c96c8cbddcc148bf48a6d68c7974b94356f53754ef6171d75700", // too long
	}
	for _, test := range tests {
		if _, err := HashFromString(test); err == nil {
			t.Errorf("decoding of %s should have failed", test)
		}
	}
}

func TestHashFromNumber_EncodesBigEndianTail(t *testing.T) {
	hash := HashFromNumber(0x0102)
	if hash[31] != 0x02 || hash[30] != 0x01 {
		t.Errorf("unexpected encoding: %v", hash)
	}
	for i := 0; i < 30; i++ {
		if hash[i] != 0 {
			t.Errorf("unexpected non-zero byte at %d: %v", i, hash)
		}
	}
}
