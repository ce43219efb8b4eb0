// Package metrics 提供指标基础设施模块
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Module 返回指标模块
// 提供独立的 Registry 与挖矿指标集合
func Module() fx.Option {
	return fx.Module("metrics",
		fx.Provide(
			func() *prometheus.Registry { return prometheus.NewRegistry() },
			func(reg *prometheus.Registry) prometheus.Registerer { return reg },
			NewMiningMetrics,
		),
	)
}
