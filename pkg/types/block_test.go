package types

import "testing"

func TestClone_IsIndependentCopy(t *testing.T) {
	original := &Block{ID: 1, Nonce: 2, Payload: "data", PrevHash: "0", Hash: "abc"}
	clone := original.Clone()

	if *clone != *original {
		t.Fatalf("clone differs from original: %+v vs %+v", clone, original)
	}

	clone.Nonce = 99
	if original.Nonce != 2 {
		t.Fatalf("mutating clone leaked into original: nonce=%d", original.Nonce)
	}
}

func TestClone_Nil(t *testing.T) {
	var b *Block
	if b.Clone() != nil {
		t.Fatal("clone of nil block should be nil")
	}
}

func TestIsGenesis(t *testing.T) {
	if !(&Block{PrevHash: GenesisPrevHash}).IsGenesis() {
		t.Fatal("sentinel prev_hash should mark a genesis block")
	}
	if (&Block{PrevHash: "abc"}).IsGenesis() {
		t.Fatal("non-sentinel prev_hash should not mark a genesis block")
	}
	var b *Block
	if b.IsGenesis() {
		t.Fatal("nil block is not a genesis block")
	}
}
