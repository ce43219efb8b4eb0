// Package consensus 提供 CoreChain 系统的共识接口定义
//
// 🤝 **共识策略接口 (Consensus Strategy Interface)**
//
// 本文件定义了区块有效性判定与挖矿的公共接口，专注于：
// - 策略多态：POW与POS共用同一个验证接口，调用方无需按类型分支
// - 开闭原则：新增共识策略（如权益加权投票、混合方案）只需新增实现，
//   不修改已有验证器、挖矿引擎或链校验器
// - 纯判定语义：验证失败是正常的 false 结果，不是错误
package consensus

import (
	"context"

	"github.com/corechain/v1/pkg/types"
)

// Validator 区块有效性验证策略
//
// 实现方约定：
// - Validate 必须是纯函数：不修改入参区块，不产生副作用
// - 不信任区块中已存储的 Hash 字段，需要哈希时必须重新推导
// - 判定不通过返回 false，而非错误
type Validator interface {
	// Validate 判定区块是否满足该策略的共识规则
	Validate(block *types.Block) bool
}

// Miner 工作量证明挖矿引擎
type Miner interface {
	// Mine 在 nonce 空间中搜索满足难度要求的解
	//
	// 参数：
	//   - ctx: 上下文控制，支持协作式取消
	//   - block: 候选区块（id/payload/prev_hash 固定，nonce 被忽略并覆盖）
	//   - difficulty: 要求的十六进制前导零字符数
	//
	// 返回：
	//   - uint64: 找到的最小合格 nonce
	//   - bool: 是否找到解；难度或载荷越界时为 false（安全阀，不是错误）
	//   - error: 序列化失败或上下文取消等异常情况
	Mine(ctx context.Context, block *types.Block, difficulty uint64) (uint64, bool, error)
}
