// Package chain 提供链的容器与完整性校验
//
// 🔗 **链校验器 (Chain Verifier)**
//
// 核心不变式：任何非创世区块的 prev_hash 必须等于其前驱区块的 hash。
// Verify 只做结构性链接检查；把验证策略（重算哈希、难度/质押判定）
// 组合进来是调用方的责任，VerifyWithValidator 提供这种组合，
// 两种关注点保持独立可测。
package chain

import (
	"errors"
	"fmt"

	"github.com/corechain/v1/internal/core/blockchain/block"
	"github.com/corechain/v1/pkg/interfaces/consensus"
	"github.com/corechain/v1/pkg/types"
)

var (
	// ErrBrokenLinkage 新区块的 prev_hash 与链尾哈希不一致
	ErrBrokenLinkage = errors.New("区块链接断裂")

	// ErrStaleHash 区块存储的哈希与重算结果不一致（内容被改写后未重新哈希）
	ErrStaleHash = errors.New("区块哈希过期")
)

// Verify 校验区块序列的链接完整性
//
// 对每一对相邻区块要求 chain[i].PrevHash == chain[i-1].Hash，
// 遇到首个不匹配立即返回false（短路）；空链或单区块链视为链接成立。
//
// 该函数不重跑挖矿或验证策略——只做结构检查。
func Verify(blocks []*types.Block) bool {
	for i := 1; i < len(blocks); i++ {
		if blocks[i] == nil || blocks[i-1] == nil {
			return false
		}
		if blocks[i].PrevHash != blocks[i-1].Hash {
			return false
		}
	}
	return true
}

// VerifyWithValidator 结构校验与验证策略的组合
//
// 先做链接检查，再对每个区块应用验证策略。
// 搭配POW验证器使用时可以发现"内容被改写但哈希未更新"的区块。
func VerifyWithValidator(blocks []*types.Block, v consensus.Validator) bool {
	if !Verify(blocks) {
		return false
	}
	for _, b := range blocks {
		if !v.Validate(b) {
			return false
		}
	}
	return true
}

// Chain 区块链容器
//
// 链独占其持有的区块：Append 接受的区块被克隆后纳入，
// 纳入后视为不可变，读取时返回副本切片，外部无法改写内部状态。
type Chain struct {
	hash   *block.HashService
	blocks []*types.Block
}

// New 创建空链
func New(hash *block.HashService) *Chain {
	return &Chain{hash: hash}
}

// Append 追加一个已封存的区块
//
// 入链检查：
// 1. 哈希完整性：重算哈希必须与区块存储的 Hash 一致（发现改写未重哈希的区块）
// 2. 链接完整性：非空链上 prev_hash 必须等于链尾哈希；空链上要求创世哨兵值
func (c *Chain) Append(b *types.Block) error {
	if b == nil {
		return block.ErrNilBlock
	}

	recomputed, err := c.hash.ComputeHash(b)
	if err != nil {
		return fmt.Errorf("重算区块哈希失败: %w", err)
	}
	if recomputed != b.Hash {
		return fmt.Errorf("%w: 存储=%s 重算=%s", ErrStaleHash, b.Hash, recomputed)
	}

	if len(c.blocks) == 0 {
		if !b.IsGenesis() {
			return fmt.Errorf("%w: 创世区块的 prev_hash 必须为 %q", ErrBrokenLinkage, types.GenesisPrevHash)
		}
	} else if tip := c.blocks[len(c.blocks)-1]; b.PrevHash != tip.Hash {
		return fmt.Errorf("%w: prev_hash=%s 链尾=%s", ErrBrokenLinkage, b.PrevHash, tip.Hash)
	}

	c.blocks = append(c.blocks, b.Clone())
	return nil
}

// Len 返回链长度
func (c *Chain) Len() int {
	return len(c.blocks)
}

// Tip 返回链尾区块的副本；空链返回nil
func (c *Chain) Tip() *types.Block {
	if len(c.blocks) == 0 {
		return nil
	}
	return c.blocks[len(c.blocks)-1].Clone()
}

// Blocks 返回全部区块的副本切片
func (c *Chain) Blocks() []*types.Block {
	out := make([]*types.Block, len(c.blocks))
	for i, b := range c.blocks {
		out[i] = b.Clone()
	}
	return out
}

// Verify 校验当前链的链接完整性
func (c *Chain) Verify() bool {
	return Verify(c.blocks)
}
