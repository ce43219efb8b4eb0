// Package crypto 提供 CoreChain 系统的哈希计算接口定义
//
// #️⃣ **哈希计算服务 (Hash Computation Service)**
//
// 本文件定义了系统的哈希计算接口，专注于：
// - 多算法支持：SHA256、双重SHA256、BLAKE2b-256
// - 摘要可替换：任何256位加密摘要都可以在不改变上层契约的情况下替换
// - 纯函数语义：相同输入永远产生相同输出，无副作用
//
// 🔗 **组件关系**
// - HashManager：被区块哈希服务、POW引擎、验证器等模块使用
package crypto

// HashManager 定义哈希计算相关接口
//
// 提供核心所需的256位摘要原语：
// - SHA256：标准SHA-256（默认算法）
// - DoubleSHA256：双重SHA-256（Bitcoin兼容）
// - BLAKE2b256：BLAKE2b-256（替换性验证用的第二算法）
type HashManager interface {
	// SHA256 计算SHA-256哈希
	// 参数：
	//   - data: 输入数据
	// 返回：32字节哈希值
	SHA256(data []byte) []byte

	// DoubleSHA256 计算双重SHA-256哈希
	// 参数：
	//   - data: 输入数据
	// 返回：32字节哈希值
	DoubleSHA256(data []byte) []byte

	// BLAKE2b256 计算BLAKE2b-256哈希
	// 参数：
	//   - data: 输入数据
	// 返回：32字节哈希值
	BLAKE2b256(data []byte) []byte
}
