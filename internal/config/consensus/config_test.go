package consensus

import "testing"

func TestDefaultOptions_AreValid(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Fatalf("default options should validate, got err=%v", err)
	}
	if opts.ConsensusType != ConsensusTypePOW {
		t.Fatalf("ConsensusType got=%s want=%s", opts.ConsensusType, ConsensusTypePOW)
	}
	if opts.POW.MaxDifficulty != 64 {
		t.Fatalf("MaxDifficulty got=%d want=64", opts.POW.MaxDifficulty)
	}
	if opts.POW.MaxPayloadSize != 1000 {
		t.Fatalf("MaxPayloadSize got=%d want=1000", opts.POW.MaxPayloadSize)
	}
}

func TestValidate_RejectsUnknownConsensusType(t *testing.T) {
	opts := DefaultOptions()
	opts.ConsensusType = "poh"
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error for unknown consensus type")
	}
}

func TestValidate_RejectsExcessiveBounds(t *testing.T) {
	opts := DefaultOptions()
	opts.POW.MaxDifficulty = 65
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error for max_difficulty > 64")
	}

	opts = DefaultOptions()
	opts.POW.MaxPayloadSize = 1001
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error for max_payload_size > 1000")
	}
}

func TestValidate_RejectsDifficultyAboveMax(t *testing.T) {
	opts := DefaultOptions()
	opts.POW.Difficulty = opts.POW.MaxDifficulty + 1
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error for difficulty above max_difficulty")
	}

	// 极端取值同样必须在配置校验期被拦下
	opts = DefaultOptions()
	opts.POW.Difficulty = 1 << 63
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error for difficulty beyond any hash length")
	}
}

func TestValidate_RejectsUnknownHashAlgorithm(t *testing.T) {
	opts := DefaultOptions()
	opts.POW.HashAlgorithm = "md5"
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error for unsupported hash algorithm")
	}
}

func TestValidate_RejectsParallelWithoutWorkers(t *testing.T) {
	opts := DefaultOptions()
	opts.POW.EnableParallel = true
	opts.POW.WorkerCount = 0
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error for parallel mining with zero workers")
	}
}
