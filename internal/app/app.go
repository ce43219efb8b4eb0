// Package app 提供 CoreChain 应用的依赖注入组装
//
// 🚀 **应用组装 (Application Assembly)**
//
// 将各子系统的fx模块组合成完整的应用依赖图：
// 日志 → 加密 → 指标 → 共识。配置值由调用方注入，
// 缺省时使用各配置包的默认值。
package app

import (
	"go.uber.org/fx"

	consensusconfig "github.com/corechain/v1/internal/config/consensus"
	"github.com/corechain/v1/internal/core/consensus"
	"github.com/corechain/v1/internal/core/infrastructure/crypto"
	"github.com/corechain/v1/internal/core/infrastructure/log"
	"github.com/corechain/v1/internal/core/infrastructure/metrics"
)

// Module 返回完整的应用模块
//
// opts 为nil时使用默认共识配置。
func Module(opts *consensusconfig.ConsensusOptions) fx.Option {
	if opts == nil {
		opts = consensusconfig.DefaultOptions()
	}

	return fx.Options(
		fx.Provide(func() *consensusconfig.ConsensusOptions { return opts }),
		log.Module(),
		crypto.Module(),
		metrics.Module(),
		consensus.Module(),
	)
}
