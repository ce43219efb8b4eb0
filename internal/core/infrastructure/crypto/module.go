// Package crypto 提供加密基础设施模块
package crypto

import (
	"go.uber.org/fx"

	cryptoiface "github.com/corechain/v1/pkg/interfaces/infrastructure/crypto"
)

// Module 返回加密基础设施模块
func Module() fx.Option {
	return fx.Module("crypto",
		fx.Provide(
			func() cryptoiface.HashManager { return NewManager() },
		),
	)
}
