// Package block 提供区块的规范化序列化与哈希服务
//
// 🧱 **区块哈希服务 (Block Hash Service)**
//
// 本包实现区块内容到256位摘要的确定性映射，专注于：
// - 规范化序列化：字段顺序固定、整数大端编码、变长字段带长度前缀，
//   保证相同逻辑内容在任何平台、任何运行中产生字节级一致的序列化结果
// - 哈希派生：序列化结果经注入的摘要算法计算，输出小写十六进制字符串
// - 循环依赖消除：Hash 字段不参与自身的序列化计算
//
// 🎯 **契约要点**：
// - 序列化对不同的字段取值元组是单射的（长度前缀保证无歧义拼接）
// - 序列化失败是显式错误，绝不静默替换
// - 计算过程无副作用，不修改入参区块
package block

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math"

	consensusconfig "github.com/corechain/v1/internal/config/consensus"
	cryptoiface "github.com/corechain/v1/pkg/interfaces/infrastructure/crypto"
	"github.com/corechain/v1/pkg/types"
)

var (
	// ErrNilBlock 入参区块为空
	ErrNilBlock = errors.New("区块不能为空")

	// ErrPayloadTooLarge 载荷超出可编码范围
	ErrPayloadTooLarge = errors.New("载荷超出可序列化范围")
)

// Serialize 将区块的哈希相关字段编码为规范化字节序列
//
// 编码布局（字段顺序固定）：
//
//	id        uint32 大端
//	nonce     uint64 大端
//	len(payload)   uint32 大端 + payload 字节
//	len(prev_hash) uint32 大端 + prev_hash 字节
//
// Hash 字段被显式排除，避免哈希对自身取值的依赖环。
func Serialize(b *types.Block) ([]byte, error) {
	if b == nil {
		return nil, ErrNilBlock
	}
	if len(b.Payload) > math.MaxUint32 || len(b.PrevHash) > math.MaxUint32 {
		return nil, ErrPayloadTooLarge
	}

	buf := make([]byte, 0, 4+8+4+len(b.Payload)+4+len(b.PrevHash))

	buf = binary.BigEndian.AppendUint32(buf, b.ID)
	buf = binary.BigEndian.AppendUint64(buf, b.Nonce)

	buf = binary.BigEndian.AppendUint32(buf, uint32(len(b.Payload)))
	buf = append(buf, b.Payload...)

	buf = binary.BigEndian.AppendUint32(buf, uint32(len(b.PrevHash)))
	buf = append(buf, b.PrevHash...)

	return buf, nil
}

// HashService 区块哈希服务
//
// 组合摘要算法与规范化序列化，对外提供 区块 → 小写十六进制哈希 的纯函数。
// 摘要算法由配置选择，任何256位摘要都可以替换而不影响上层契约。
type HashService struct {
	hashes cryptoiface.HashManager
	digest func([]byte) []byte
}

// NewHashService 创建区块哈希服务
//
// 参数：
//   - hashes: 哈希管理器（不能为nil）
//   - algorithm: 摘要算法名（见 internal/config/consensus 中的常量）
func NewHashService(hashes cryptoiface.HashManager, algorithm string) (*HashService, error) {
	if hashes == nil {
		return nil, errors.New("哈希管理器不能为空")
	}

	s := &HashService{hashes: hashes}
	switch algorithm {
	case consensusconfig.HashAlgorithmSHA256:
		s.digest = hashes.SHA256
	case consensusconfig.HashAlgorithmDoubleSHA256:
		s.digest = hashes.DoubleSHA256
	case consensusconfig.HashAlgorithmBLAKE2b256:
		s.digest = hashes.BLAKE2b256
	default:
		return nil, fmt.Errorf("不支持的哈希算法: %q", algorithm)
	}

	return s, nil
}

// ComputeHash 计算区块的规范化哈希
//
// 返回256位摘要的小写十六进制表示（64个字符）。
// 序列化失败时返回错误并向调用方传播。
func (s *HashService) ComputeHash(b *types.Block) (string, error) {
	data, err := Serialize(b)
	if err != nil {
		return "", fmt.Errorf("序列化区块失败: %w", err)
	}
	return hex.EncodeToString(s.digest(data)), nil
}

// Seal 计算并写入区块的 Hash 字段
//
// 用于挖矿完成后的提交步骤：nonce 已固定，哈希随之固定。
// 写入后的区块应被视为不可变。
func (s *HashService) Seal(b *types.Block) error {
	h, err := s.ComputeHash(b)
	if err != nil {
		return err
	}
	b.Hash = h
	return nil
}
