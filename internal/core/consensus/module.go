// Package consensus 提供 CoreChain 系统的共识模块实现
//
// 🤝 **共识核心模块 (Consensus Core Module)**
//
// 通过fx依赖注入框架组装共识相关组件，对外提供
// pkg/interfaces/consensus 中定义的公共接口：
// - Miner: POW挖矿引擎
// - Validator: 按配置选择的共识验证策略（pow 或 pos）
//
// 🏗️ **架构特点**：
// - 接口导向：输出均为接口类型，便于测试和扩展
// - 配置驱动：策略选择与边界参数全部来自 internal/config/consensus
// - 开闭原则：新增策略只需扩展 provideValidator 的选择表
package consensus

import (
	"fmt"

	"go.uber.org/fx"

	consensusconfig "github.com/corechain/v1/internal/config/consensus"
	"github.com/corechain/v1/internal/core/blockchain/block"
	"github.com/corechain/v1/internal/core/consensus/pow"
	"github.com/corechain/v1/internal/core/consensus/validator"
	"github.com/corechain/v1/internal/core/infrastructure/metrics"
	consensusiface "github.com/corechain/v1/pkg/interfaces/consensus"
	cryptoiface "github.com/corechain/v1/pkg/interfaces/infrastructure/crypto"
	logiface "github.com/corechain/v1/pkg/interfaces/infrastructure/log"
)

// ModuleParams 定义共识模块的依赖参数
type ModuleParams struct {
	fx.In

	Logger  logiface.Logger
	Hashes  cryptoiface.HashManager
	Options *consensusconfig.ConsensusOptions
	Metrics *metrics.MiningMetrics `optional:"true"`
}

// ModuleOutput 定义共识模块的输出结构
type ModuleOutput struct {
	fx.Out

	HashService *block.HashService
	Miner       consensusiface.Miner
	Validator   consensusiface.Validator
}

// Module 返回共识模块
func Module() fx.Option {
	return fx.Module("consensus",
		fx.Provide(ProvideServices),
	)
}

// ProvideServices 组装哈希服务、挖矿引擎与验证策略
func ProvideServices(params ModuleParams) (ModuleOutput, error) {
	if err := params.Options.Validate(); err != nil {
		return ModuleOutput{}, fmt.Errorf("共识配置无效: %w", err)
	}

	hashService, err := block.NewHashService(params.Hashes, params.Options.POW.HashAlgorithm)
	if err != nil {
		return ModuleOutput{}, fmt.Errorf("创建哈希服务失败: %w", err)
	}

	engine, err := pow.NewEngine(hashService, params.Logger, &params.Options.POW, params.Metrics)
	if err != nil {
		return ModuleOutput{}, fmt.Errorf("创建挖矿引擎失败: %w", err)
	}

	v, err := provideValidator(params.Options, hashService)
	if err != nil {
		return ModuleOutput{}, err
	}

	return ModuleOutput{
		HashService: hashService,
		Miner:       engine,
		Validator:   v,
	}, nil
}

// provideValidator 按配置选择共识验证策略
func provideValidator(opts *consensusconfig.ConsensusOptions, hash *block.HashService) (consensusiface.Validator, error) {
	switch opts.ConsensusType {
	case consensusconfig.ConsensusTypePOW:
		return validator.NewPoWValidator(opts.POW.Difficulty, hash)
	case consensusconfig.ConsensusTypePOS:
		return validator.NewPoSValidator(opts.POS.MinStake), nil
	default:
		return nil, fmt.Errorf("不支持的共识类型: %q", opts.ConsensusType)
	}
}
