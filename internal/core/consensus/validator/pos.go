package validator

import (
	"strconv"

	"github.com/corechain/v1/pkg/interfaces/consensus"
	"github.com/corechain/v1/pkg/types"
)

// PoSValidator 权益证明验证器
//
// 判定规则：区块载荷解析为无符号整数，且不小于最低质押额度。
//
// 载荷来自不可信来源：无法解析的载荷按"验证不通过"处理（宽容的false），
// 而不是错误——这是对不可信字段的既定策略。
type PoSValidator struct {
	minStake uint64
}

var _ consensus.Validator = (*PoSValidator)(nil)

// NewPoSValidator 创建POS验证器
func NewPoSValidator(minStake uint64) *PoSValidator {
	return &PoSValidator{minStake: minStake}
}

// Validate 判定区块载荷的质押额度是否达标
func (v *PoSValidator) Validate(b *types.Block) bool {
	if b == nil {
		return false
	}
	stake, err := strconv.ParseUint(b.Payload, 10, 64)
	if err != nil {
		return false
	}
	return stake >= v.minStake
}
