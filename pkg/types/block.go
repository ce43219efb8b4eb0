// Package types 提供 CoreChain 系统的公共数据类型定义
//
// 📦 **核心类型包 (Core Types Package)**
//
// 本包定义了被接口层和实现层共享的基础数据结构，专注于：
// - 区块结构：链的基本数据单元定义
// - 协议常量：载荷上限、难度上限、创世哨兵值
// - 纯数据语义：不依赖任何实现包，避免循环依赖
package types

// 协议级常量
//
// 这些常量是共识有效性规则的一部分，全链必须一致。
const (
	// GenesisPrevHash 创世区块的 prev_hash 哨兵值
	GenesisPrevHash = "0"

	// MaxPayloadSize 区块载荷的最大字节数
	// 超过该上限的区块不参与挖矿搜索（安全阀，防止无意义的大输入计算）
	MaxPayloadSize = 1000

	// MaxDifficulty 难度上限（十六进制前导零字符数）
	// 256位摘要的十六进制表示共64个字符，难度超过64没有意义
	MaxDifficulty = 64
)

// Block 区块结构
//
// 区块一旦完成挖矿并写入链中即视为不可变：
// - ID: 由调用方分配的序列标识，核心不做唯一性检查
// - Nonce: 工作量证明的搜索变量，挖矿完成后固定
// - Payload: 任意文本载荷（如交易数据或质押额度）
// - PrevHash: 前一个区块哈希的十六进制字符串；创世区块为 GenesisPrevHash
// - Hash: 派生字段，由规范化序列化（不含 Hash 自身）计算得出
type Block struct {
	ID       uint32 `json:"id"`
	Nonce    uint64 `json:"nonce"`
	Payload  string `json:"payload"`
	PrevHash string `json:"prev_hash"`
	Hash     string `json:"hash"`
}

// NewBlock 构造一个待挖矿的区块（Nonce=0，Hash 为空）
func NewBlock(id uint32, payload string, prevHash string) *Block {
	return &Block{
		ID:       id,
		Payload:  payload,
		PrevHash: prevHash,
	}
}

// Clone 返回区块的深拷贝
// 挖矿等需要修改 Nonce 的流程必须在副本上操作，避免共享可变状态
func (b *Block) Clone() *Block {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// IsGenesis 判断是否为创世区块（以哨兵值作为前驱哈希）
func (b *Block) IsGenesis() bool {
	return b != nil && b.PrevHash == GenesisPrevHash
}
