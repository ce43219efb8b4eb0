// Package validator 提供可插拔的区块验证策略实现
//
// ✅ **验证策略组件 (Validation Strategy Component)**
//
// 实现 pkg/interfaces/consensus 中定义的 Validator 接口：
// - PoWValidator: 工作量证明验证（哈希前导零判定）
// - PoSValidator: 权益证明验证（载荷质押额度判定）
//
// 两种策略共用同一接口，调用方按配置选择共识策略而无需类型分支；
// 新增策略（权益加权投票、混合方案等）只需新增实现，不修改既有代码。
package validator

import (
	"fmt"
	"strings"

	"github.com/corechain/v1/internal/core/blockchain/block"
	"github.com/corechain/v1/pkg/interfaces/consensus"
	"github.com/corechain/v1/pkg/types"
)

// PoWValidator 工作量证明验证器
//
// 判定规则：区块哈希以 difficulty 个 '0' 十六进制字符开头。
// 哈希必须重新推导，不信任区块中已存储的 Hash 字段——
// 防止调用方提交过期或伪造的哈希。
type PoWValidator struct {
	difficulty uint64
	hash       *block.HashService
}

var _ consensus.Validator = (*PoWValidator)(nil)

// NewPoWValidator 创建POW验证器
//
// 难度超过协议上限（256位摘要最多64个十六进制字符）是配置错误，
// 在构造期拒绝，而不是留给验证调用去处理。
func NewPoWValidator(difficulty uint64, hash *block.HashService) (*PoWValidator, error) {
	if difficulty > types.MaxDifficulty {
		return nil, fmt.Errorf("难度 %d 超过协议上限 %d", difficulty, types.MaxDifficulty)
	}
	return &PoWValidator{
		difficulty: difficulty,
		hash:       hash,
	}, nil
}

// Validate 判定区块哈希是否满足难度要求
// 哈希计算失败（如空区块）按验证不通过处理
func (v *PoWValidator) Validate(b *types.Block) bool {
	hash, err := v.hash.ComputeHash(b)
	if err != nil {
		return false
	}
	return strings.HasPrefix(hash, strings.Repeat("0", int(v.difficulty)))
}
