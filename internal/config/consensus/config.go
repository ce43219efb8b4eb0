// Package consensus 提供共识相关的配置管理
//
// ⚙️ **共识配置 (Consensus Configuration)**
//
// 采用分层结构：顶层选择共识类型，POW与POS各自持有专属参数组。
// 所有边界参数都是"共识有效性规则"的一部分，必须与协议常量一致。
package consensus

import (
	"fmt"

	"github.com/corechain/v1/pkg/types"
)

// 支持的共识类型
const (
	ConsensusTypePOW = "pow"
	ConsensusTypePOS = "pos"
)

// 支持的哈希算法
const (
	HashAlgorithmSHA256       = "sha256"
	HashAlgorithmDoubleSHA256 = "double-sha256"
	HashAlgorithmBLAKE2b256   = "blake2b256"
)

// ConsensusOptions 共识配置选项
type ConsensusOptions struct {
	// ConsensusType 共识类型（pow 或 pos）
	ConsensusType string `json:"consensus_type"`

	// 共享的 POW 配置
	POW POWConfig `json:"pow"`

	// POS 配置
	POS POSConfig `json:"pos"`
}

// POWConfig POW算法配置
type POWConfig struct {
	// Difficulty 挖矿与验证使用的难度（十六进制前导零字符数）
	Difficulty uint64 `json:"difficulty"`

	// MaxDifficulty 难度上限（对请求难度夹紧校验；256位摘要最多64个十六进制字符）
	MaxDifficulty uint64 `json:"max_difficulty"`

	// MaxPayloadSize 参与挖矿的区块载荷字节上限
	MaxPayloadSize int `json:"max_payload_size"`

	// HashAlgorithm 区块哈希使用的摘要算法
	HashAlgorithm string `json:"hash_algorithm"`

	// WorkerCount 并行挖矿的工作协程数（EnableParallel 为 true 时生效）
	WorkerCount int `json:"worker_count"`

	// EnableParallel 是否启用并行 nonce 搜索
	// 并行搜索保持与顺序搜索相同的确定性（最小 nonce 胜出）
	EnableParallel bool `json:"enable_parallel"`
}

// POSConfig POS算法配置
type POSConfig struct {
	// MinStake 区块载荷解析出的质押额度下限
	MinStake uint64 `json:"min_stake"`
}

// DefaultOptions 创建默认共识配置
//
// 默认值说明：
// - 难度2：演示与测试都能在毫秒级完成（期望约 16^2 次哈希）
// - 上限64/1000：协议常量，全网一致
// - 单协程顺序挖矿：默认关闭并行，行为最直观
func DefaultOptions() *ConsensusOptions {
	return &ConsensusOptions{
		ConsensusType: ConsensusTypePOW,
		POW: POWConfig{
			Difficulty:     2,
			MaxDifficulty:  types.MaxDifficulty,
			MaxPayloadSize: types.MaxPayloadSize,
			HashAlgorithm:  HashAlgorithmSHA256,
			WorkerCount:    1,
			EnableParallel: false,
		},
		POS: POSConfig{
			MinStake: 500,
		},
	}
}

// Validate 校验配置的合理性
func (o *ConsensusOptions) Validate() error {
	switch o.ConsensusType {
	case ConsensusTypePOW, ConsensusTypePOS:
	default:
		return fmt.Errorf("不支持的共识类型: %q", o.ConsensusType)
	}

	if o.POW.MaxDifficulty > types.MaxDifficulty {
		return fmt.Errorf("难度上限 %d 超过协议上限 %d", o.POW.MaxDifficulty, types.MaxDifficulty)
	}
	if o.POW.Difficulty > o.POW.MaxDifficulty {
		return fmt.Errorf("难度 %d 超过难度上限 %d", o.POW.Difficulty, o.POW.MaxDifficulty)
	}
	if o.POW.MaxPayloadSize <= 0 || o.POW.MaxPayloadSize > types.MaxPayloadSize {
		return fmt.Errorf("载荷上限 %d 超出协议范围 (0, %d]", o.POW.MaxPayloadSize, types.MaxPayloadSize)
	}

	switch o.POW.HashAlgorithm {
	case HashAlgorithmSHA256, HashAlgorithmDoubleSHA256, HashAlgorithmBLAKE2b256:
	default:
		return fmt.Errorf("不支持的哈希算法: %q", o.POW.HashAlgorithm)
	}

	if o.POW.EnableParallel && o.POW.WorkerCount < 1 {
		return fmt.Errorf("并行挖矿要求 worker_count >= 1，实际: %d", o.POW.WorkerCount)
	}

	return nil
}
