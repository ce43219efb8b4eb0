package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	Algorithm string // 区块哈希算法
	LogLevel  string // 日志级别
}

var globalFlags GlobalFlags

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "corechain",
	Short: "CoreChain 最小区块链核心演示工具",
	Long: `CoreChain CLI - 最小工作量证明链核心的命令行演示

提供核心能力的本地演示:
- 挖矿：搜索满足难度要求的nonce并封存区块
- 组链：把挖出的区块串成链并校验链接完整性
- 验证：对区块应用POW或POS验证策略

本工具不涉及网络、持久化或钱包，全部操作在内存中完成。`,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalFlags.Algorithm, "algorithm", "sha256", "区块哈希算法: sha256|double-sha256|blake2b256")
	rootCmd.PersistentFlags().StringVar(&globalFlags.LogLevel, "log-level", "info", "日志级别: debug|info|warn|error")
}

func main() {
	Execute()
}
