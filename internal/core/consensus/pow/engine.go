// Package pow 提供POW（工作量证明）挖矿引擎实现
//
// ⛏️ **挖矿引擎组件 (Mining Engine Component)**
//
// 本包实现POW挖矿的核心算法，专注于：
// - 挖矿算法：从0开始的顺序nonce搜索与哈希前缀判定
// - 安全边界：难度与载荷的双重安全阀（越界时立即返回"无结果"，不搜索、不崩溃）
// - 确定性：固定 (id, payload, prev_hash, difficulty) 下，返回的nonce永远是
//   满足目标的最小值——并行搜索同样保证该性质（最小nonce胜出）
// - 上下文控制：支持协作式取消，无强制终止
//
// 🎯 **职责边界**：
// - 只负责寻找合格nonce；把nonce提交进区块并派生最终哈希是调用方的责任
// - 不涉及验证策略（由validator包负责）
// - 不涉及链结构校验（由chain包负责）
//
// 📈 **监控指标**：
// - 哈希尝试计数、成功出块计数、越界拒绝计数、取消计数
package pow

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	consensusconfig "github.com/corechain/v1/internal/config/consensus"
	"github.com/corechain/v1/internal/core/blockchain/block"
	"github.com/corechain/v1/internal/core/infrastructure/metrics"
	"github.com/corechain/v1/pkg/interfaces/consensus"
	logiface "github.com/corechain/v1/pkg/interfaces/infrastructure/log"
	"github.com/corechain/v1/pkg/types"
)

// 上下文取消与进度日志的检查周期（按尝试次数）
const (
	cancelCheckInterval = 1024
	progressLogInterval = 1_000_000
)

// Engine POW挖矿引擎
//
// 📝 **字段说明**：
// - hash: 区块哈希服务（规范化序列化 + 摘要）
// - logger: 日志记录器
// - config: POW配置参数（难度与载荷边界、并行度）
// - metrics: 挖矿指标集合（可为nil，此时不统计）
type Engine struct {
	hash    *block.HashService
	logger  logiface.Logger
	config  *consensusconfig.POWConfig
	metrics *metrics.MiningMetrics
}

// 编译期接口检查
var _ consensus.Miner = (*Engine)(nil)

// NewEngine 创建POW挖矿引擎实例
//
// 参数：
//   - hash: 区块哈希服务（不能为nil）
//   - logger: 日志记录器（不能为nil）
//   - config: POW配置（为nil时使用默认配置）
//   - m: 挖矿指标（可为nil）
func NewEngine(hash *block.HashService, logger logiface.Logger, config *consensusconfig.POWConfig, m *metrics.MiningMetrics) (*Engine, error) {
	if hash == nil {
		return nil, errors.New("哈希服务不能为空")
	}
	if logger == nil {
		return nil, errors.New("日志记录器不能为空")
	}
	if config == nil {
		defaults := consensusconfig.DefaultOptions().POW
		config = &defaults
	}
	if config.MaxDifficulty > types.MaxDifficulty {
		return nil, fmt.Errorf("难度上限 %d 超过协议上限 %d", config.MaxDifficulty, types.MaxDifficulty)
	}

	return &Engine{
		hash:    hash,
		logger:  logger.With("component", "pow_engine"),
		config:  config,
		metrics: m,
	}, nil
}

// Mine 在nonce空间中搜索满足难度要求的解
//
// 📋 **算法流程**：
// 1. 边界检查：难度或载荷越界时立即返回"无结果"（安全阀，不是错误）
// 2. 克隆区块，避免修改调用方持有的原始对象
// 3. 顺序（或并行分片）搜索nonce，每个候选值经哈希服务计算后与目标前缀比较
// 4. 返回第一个（即最小的）合格nonce
//
// 🔄 **返回值**：
//   - uint64: 找到的最小合格nonce
//   - bool: 是否找到解；边界越界或nonce空间耗尽时为false
//   - error: 序列化失败或上下文取消
func (e *Engine) Mine(ctx context.Context, blk *types.Block, difficulty uint64) (uint64, bool, error) {
	if blk == nil {
		return 0, false, block.ErrNilBlock
	}

	// ==================== 安全阀 ====================

	if difficulty > e.config.MaxDifficulty || len(blk.Payload) > e.config.MaxPayloadSize {
		e.logger.Warnf("挖矿请求被安全阀拒绝: 难度=%d (上限=%d), 载荷=%d字节 (上限=%d)",
			difficulty, e.config.MaxDifficulty, len(blk.Payload), e.config.MaxPayloadSize)
		if e.metrics != nil {
			e.metrics.BoundsRejected.Inc()
		}
		return 0, false, nil
	}

	// 目标前缀：difficulty 个 '0' 字符（难度0时为空串，任何哈希都合格）
	target := strings.Repeat("0", int(difficulty))

	jobLog := e.logger.With("job_id", uuid.NewString())
	jobLog.Debugf("开始POW挖矿: 区块ID=%d, 难度=%d, 并行=%v", blk.ID, difficulty, e.config.EnableParallel)

	start := time.Now()

	var (
		nonce    uint64
		found    bool
		attempts uint64
		err      error
	)
	if e.config.EnableParallel && e.config.WorkerCount > 1 {
		nonce, found, attempts, err = e.mineParallel(ctx, blk, target)
	} else {
		nonce, found, attempts, err = e.mineSequential(ctx, blk, target)
	}

	elapsed := time.Since(start)
	if e.metrics != nil {
		e.metrics.HashAttempts.Add(float64(attempts))
	}

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			if e.metrics != nil {
				e.metrics.Cancelled.Inc()
			}
			jobLog.Infof("挖矿被取消: 已尝试=%d次, 耗时=%v", attempts, elapsed)
		}
		return 0, false, err
	}

	if !found {
		// nonce空间耗尽：定义明确的"无结果"，不是死循环也不是崩溃
		jobLog.Warnf("nonce空间耗尽仍未找到解: 难度=%d", difficulty)
		return 0, false, nil
	}

	if e.metrics != nil {
		e.metrics.MinedBlocks.Inc()
	}
	jobLog.Infof("挖矿成功: 区块ID=%d, nonce=%d, 尝试=%d次, 耗时=%v, 算力=%.2f H/s",
		blk.ID, nonce, attempts, elapsed, hashRate(attempts, elapsed))

	return nonce, true, nil
}

// mineSequential 单协程顺序搜索
//
// 从nonce=0开始逐一尝试，首个合格值即最小值，确定性由搜索顺序直接保证。
func (e *Engine) mineSequential(ctx context.Context, blk *types.Block, target string) (uint64, bool, uint64, error) {
	candidate := blk.Clone()

	var attempts uint64
	for nonce := uint64(0); ; nonce++ {
		if attempts%cancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return 0, false, attempts, fmt.Errorf("挖矿被取消: %w", ctx.Err())
			default:
			}
		}

		candidate.Nonce = nonce
		attempts++

		hash, err := e.hash.ComputeHash(candidate)
		if err != nil {
			return 0, false, attempts, fmt.Errorf("计算候选哈希失败: %w", err)
		}

		if strings.HasPrefix(hash, target) {
			return nonce, true, attempts, nil
		}

		if attempts%progressLogInterval == 0 {
			e.logger.Debugf("挖矿进度: 尝试=%d次, 当前nonce=%d", attempts, nonce)
		}

		// nonce溢出保护：uint64空间耗尽是定义好的退出路径
		if nonce == math.MaxUint64 {
			return 0, false, attempts, nil
		}
	}
}

// hashRate 计算平均算力（Hash/秒）
func hashRate(attempts uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(attempts) / elapsed.Seconds()
}
