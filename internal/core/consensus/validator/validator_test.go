package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	consensusconfig "github.com/corechain/v1/internal/config/consensus"
	"github.com/corechain/v1/internal/core/blockchain/block"
	"github.com/corechain/v1/internal/core/infrastructure/crypto"
	"github.com/corechain/v1/pkg/types"
)

func newHashService(t *testing.T) *block.HashService {
	t.Helper()
	svc, err := block.NewHashService(crypto.NewManager(), consensusconfig.HashAlgorithmSHA256)
	require.NoError(t, err)
	return svc
}

func newPoWValidator(t *testing.T, difficulty uint64, hashSvc *block.HashService) *PoWValidator {
	t.Helper()
	v, err := NewPoWValidator(difficulty, hashSvc)
	require.NoError(t, err)
	return v
}

func TestPoWValidator_AgreesWithPrefixRule(t *testing.T) {
	hashSvc := newHashService(t)

	// 对任意区块与难度，验证结果必须与哈希前缀规则一致
	for difficulty := uint64(0); difficulty <= 4; difficulty++ {
		v := newPoWValidator(t, difficulty, hashSvc)
		for nonce := uint64(0); nonce < 32; nonce++ {
			blk := &types.Block{ID: 1, Nonce: nonce, Payload: "test", PrevHash: "0"}

			hash, err := hashSvc.ComputeHash(blk)
			require.NoError(t, err)
			want := strings.HasPrefix(hash, strings.Repeat("0", int(difficulty)))

			assert.Equal(t, want, v.Validate(blk), "difficulty=%d nonce=%d hash=%s", difficulty, nonce, hash)
		}
	}
}

func TestPoWValidator_IgnoresStoredHash(t *testing.T) {
	hashSvc := newHashService(t)
	v := newPoWValidator(t, 4, hashSvc)

	// 伪造的哈希字段不能骗过验证器：哈希必须重新推导。
	// 选择一个重算哈希确定不合格的nonce，保证测试结果确定。
	forged := &types.Block{ID: 1, Nonce: 0, Payload: "forged", PrevHash: "0", Hash: "0000forgedhash"}
	for {
		hash, err := hashSvc.ComputeHash(forged)
		require.NoError(t, err)
		if !strings.HasPrefix(hash, "0000") {
			break
		}
		forged.Nonce++
	}

	assert.False(t, v.Validate(forged))
}

func TestPoWValidator_ZeroDifficultyAcceptsAnything(t *testing.T) {
	v := newPoWValidator(t, 0, newHashService(t))
	assert.True(t, v.Validate(&types.Block{ID: 1, Payload: "anything", PrevHash: "0"}))
}

func TestPoWValidator_NilBlock(t *testing.T) {
	v := newPoWValidator(t, 1, newHashService(t))
	assert.False(t, v.Validate(nil))
}

func TestNewPoWValidator_RejectsExcessiveDifficulty(t *testing.T) {
	hashSvc := newHashService(t)

	// 难度上限是构造期契约：越界值在这里被拒绝，而不是在验证调用时崩溃
	_, err := NewPoWValidator(types.MaxDifficulty+1, hashSvc)
	assert.Error(t, err)

	_, err = NewPoWValidator(1<<63, hashSvc)
	assert.Error(t, err)

	v, err := NewPoWValidator(types.MaxDifficulty, hashSvc)
	require.NoError(t, err)
	assert.NotPanics(t, func() { v.Validate(&types.Block{ID: 1, Payload: "x", PrevHash: "0"}) })
}

func TestPoSValidator_StakeThreshold(t *testing.T) {
	v := NewPoSValidator(500)

	tests := []struct {
		name    string
		payload string
		want    bool
	}{
		{"stake_above_threshold", "1000", true},
		{"stake_at_threshold", "500", true},
		{"stake_below_threshold", "100", false},
		{"non_numeric_payload", "abc", false},
		{"empty_payload", "", false},
		{"negative_number", "-100", false},
		{"overflowing_number", "18446744073709551616", false},
		{"decorated_number", " 1000 ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blk := &types.Block{ID: 1, Payload: tt.payload, PrevHash: "0"}
			assert.Equal(t, tt.want, v.Validate(blk))
		})
	}
}

func TestPoSValidator_NonNumericIsFalseRegardlessOfStake(t *testing.T) {
	blk := &types.Block{ID: 1, Payload: "abc", PrevHash: "0"}

	// 无法解析的载荷是"宽容的false"，与额度下限无关，且不是错误
	assert.False(t, NewPoSValidator(0).Validate(blk))
	assert.False(t, NewPoSValidator(500).Validate(blk))
}

func TestPoSValidator_NilBlock(t *testing.T) {
	assert.False(t, NewPoSValidator(1).Validate(nil))
}
