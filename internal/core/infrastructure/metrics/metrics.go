// Package metrics 提供挖矿相关的性能指标统计
//
// 📈 **挖矿指标 (Mining Metrics)**
//
// 基于 prometheus 客户端库维护挖矿引擎的核心计数器：
// - 哈希尝试总数（算力统计的基础数据）
// - 成功出块总数
// - 因参数越界被安全阀拒绝的请求数
//
// 指标注册在独立的 Registry 上，由宿主程序决定是否暴露。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MiningMetrics 挖矿引擎指标集合
type MiningMetrics struct {
	// HashAttempts 哈希尝试总数
	HashAttempts prometheus.Counter

	// MinedBlocks 成功挖出的区块总数
	MinedBlocks prometheus.Counter

	// BoundsRejected 因难度或载荷越界被拒绝的挖矿请求数
	BoundsRejected prometheus.Counter

	// Cancelled 被上下文取消中止的挖矿搜索数
	Cancelled prometheus.Counter
}

// NewMiningMetrics 创建并注册挖矿指标
func NewMiningMetrics(reg prometheus.Registerer) *MiningMetrics {
	m := &MiningMetrics{
		HashAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "corechain",
			Subsystem: "pow",
			Name:      "hash_attempts_total",
			Help:      "Total number of nonce candidates hashed by the mining engine.",
		}),
		MinedBlocks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "corechain",
			Subsystem: "pow",
			Name:      "mined_blocks_total",
			Help:      "Total number of successfully mined blocks.",
		}),
		BoundsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "corechain",
			Subsystem: "pow",
			Name:      "bounds_rejected_total",
			Help:      "Mining requests rejected by the difficulty/payload safety valve.",
		}),
		Cancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "corechain",
			Subsystem: "pow",
			Name:      "cancelled_total",
			Help:      "Mining searches stopped by context cancellation.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.HashAttempts, m.MinedBlocks, m.BoundsRejected, m.Cancelled)
	}

	return m
}
