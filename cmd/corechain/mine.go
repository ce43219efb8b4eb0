package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/corechain/v1/internal/app"
	consensusconfig "github.com/corechain/v1/internal/config/consensus"
	logconfig "github.com/corechain/v1/internal/config/log"
	"github.com/corechain/v1/internal/core/blockchain/block"
	"github.com/corechain/v1/internal/core/blockchain/chain"
	consensusiface "github.com/corechain/v1/pkg/interfaces/consensus"
	logiface "github.com/corechain/v1/pkg/interfaces/infrastructure/log"
	"github.com/corechain/v1/pkg/types"
)

// mineFlags 挖矿命令标志
var mineFlags struct {
	Difficulty uint64
	Payload    string
	Blocks     int
	Parallel   bool
	Workers    int
}

// mineCmd 挖矿演示命令
var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "挖出指定数量的区块并组成一条链",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := consensusconfig.DefaultOptions()
		opts.POW.Difficulty = mineFlags.Difficulty
		opts.POW.HashAlgorithm = globalFlags.Algorithm
		opts.POW.EnableParallel = mineFlags.Parallel
		opts.POW.WorkerCount = mineFlags.Workers

		var (
			miner   consensusiface.Miner
			hashSvc *block.HashService
			logger  logiface.Logger
		)
		fxApp := fx.New(
			app.Module(opts),
			fx.Provide(func() *logconfig.LogOptions {
				return &logconfig.LogOptions{Level: globalFlags.LogLevel, ToConsole: true}
			}),
			fx.NopLogger,
			fx.Populate(&miner, &hashSvc, &logger),
		)
		if err := fxApp.Err(); err != nil {
			return fmt.Errorf("初始化失败: %w", err)
		}
		// 退出前刷新日志缓冲区
		defer func() { _ = logger.Sync() }()

		// Ctrl-C 触发协作式取消
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ledger := chain.New(hashSvc)
		prevHash := types.GenesisPrevHash

		for i := 0; i < mineFlags.Blocks; i++ {
			blk := types.NewBlock(uint32(i), mineFlags.Payload, prevHash)

			nonce, found, err := miner.Mine(ctx, blk, mineFlags.Difficulty)
			if err != nil {
				return fmt.Errorf("挖矿失败: %w", err)
			}
			if !found {
				return fmt.Errorf("未找到解: 难度=%d, 载荷=%d字节", mineFlags.Difficulty, len(mineFlags.Payload))
			}

			// 提交nonce并派生最终哈希
			blk.Nonce = nonce
			if err := hashSvc.Seal(blk); err != nil {
				return fmt.Errorf("封存区块失败: %w", err)
			}
			if err := ledger.Append(blk); err != nil {
				return fmt.Errorf("入链失败: %w", err)
			}

			fmt.Printf("区块 %d: nonce=%d hash=%s\n", blk.ID, blk.Nonce, blk.Hash)
			prevHash = blk.Hash
		}

		if ledger.Verify() {
			fmt.Printf("链校验通过: %d 个区块链接完整\n", ledger.Len())
			return nil
		}
		return fmt.Errorf("链校验失败")
	},
}

func init() {
	mineCmd.Flags().Uint64Var(&mineFlags.Difficulty, "difficulty", 2, "难度（十六进制前导零字符数，上限64）")
	mineCmd.Flags().StringVar(&mineFlags.Payload, "payload", "Hello, blockchain!", "区块载荷")
	mineCmd.Flags().IntVar(&mineFlags.Blocks, "blocks", 2, "要挖出的区块数量")
	mineCmd.Flags().BoolVar(&mineFlags.Parallel, "parallel", false, "启用并行nonce搜索")
	mineCmd.Flags().IntVar(&mineFlags.Workers, "workers", 4, "并行挖矿的工作协程数")

	rootCmd.AddCommand(mineCmd)
}
