// Package crypto 提供哈希计算管理器的具体实现
//
// #️⃣ **哈希基础设施 (Hash Infrastructure)**
//
// 实现 pkg/interfaces/infrastructure/crypto 中定义的 HashManager 接口：
// - SHA256: 标准库实现（默认算法）
// - DoubleSHA256: 双重SHA-256（Bitcoin兼容）
// - BLAKE2b256: golang.org/x/crypto 实现的第二种256位摘要
//
// 所有方法都是纯函数：相同输入永远产生相同输出，无任何内部状态。
package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"

	cryptoiface "github.com/corechain/v1/pkg/interfaces/infrastructure/crypto"
)

// Manager HashManager接口的默认实现
type Manager struct{}

// 编译期接口检查
var _ cryptoiface.HashManager = (*Manager)(nil)

// NewManager 创建哈希管理器实例
func NewManager() *Manager {
	return &Manager{}
}

// SHA256 计算SHA-256哈希
func (m *Manager) SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// DoubleSHA256 计算双重SHA-256哈希
func (m *Manager) DoubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// BLAKE2b256 计算BLAKE2b-256哈希
func (m *Manager) BLAKE2b256(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}
