package crypto

import (
	"encoding/hex"
	"testing"
)

func TestSHA256_KnownVector(t *testing.T) {
	m := NewManager()

	// SHA-256("abc") 标准测试向量
	got := hex.EncodeToString(m.SHA256([]byte("abc")))
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Fatalf("SHA256(abc) got=%s want=%s", got, want)
	}
}

func TestDoubleSHA256_IsSHA256OfSHA256(t *testing.T) {
	m := NewManager()

	data := []byte("corechain")
	inner := m.SHA256(data)
	want := hex.EncodeToString(m.SHA256(inner))
	got := hex.EncodeToString(m.DoubleSHA256(data))
	if got != want {
		t.Fatalf("DoubleSHA256 mismatch: got=%s want=%s", got, want)
	}
}

func TestDigests_AreDeterministicAndDistinct(t *testing.T) {
	m := NewManager()
	data := []byte("determinism probe")

	for name, fn := range map[string]func([]byte) []byte{
		"sha256":     m.SHA256,
		"double":     m.DoubleSHA256,
		"blake2b256": m.BLAKE2b256,
	} {
		a := hex.EncodeToString(fn(data))
		b := hex.EncodeToString(fn(data))
		if a != b {
			t.Fatalf("%s not deterministic: %s vs %s", name, a, b)
		}
		if len(a) != 64 {
			t.Fatalf("%s digest length got=%d want=64 hex chars", name, len(a))
		}
	}

	if hex.EncodeToString(m.SHA256(data)) == hex.EncodeToString(m.BLAKE2b256(data)) {
		t.Fatal("sha256 and blake2b256 should differ on the same input")
	}
}
