// Package pow 并行nonce搜索实现
//
// 🔀 **并行挖矿 (Parallel Mining)**
//
// nonce空间对挖矿是"天然可并行"的：N个工作协程各自持有区块的独立副本，
// 以交错步长覆盖互不重叠的nonce子集（worker w 负责 w, w+N, w+2N, ...）。
//
// 🎯 **确定性保证（最小nonce胜出）**：
// 工作协程只有在"自己的下一个候选值已大于当前最优解"时才允许退出。
// 因此所有小于最终胜出nonce的候选值都必然被其所属协程实际检验过，
// 并行搜索与顺序搜索返回完全相同的结果。
//
// 🛑 **协作式取消**：
// 协程周期性检查上下文与共享结果槽，无锁共享区块状态——
// 唯一的共享可变状态是协调者的结果槽（互斥锁保护的单一最优值）。
package pow

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/corechain/v1/pkg/types"
)

// resultSlot 协调者的单一结果槽
//
// 最小nonce胜出：多个协程在取消生效前先后报告时，保留最小值。
// 同时承载首个错误（任何协程序列化失败都会中止整个搜索）。
type resultSlot struct {
	mu    sync.Mutex
	nonce uint64
	found bool
	err   error
}

// offer 报告一个合格nonce，仅当它优于当前最优解时生效
func (r *resultSlot) offer(n uint64) {
	r.mu.Lock()
	if !r.found || n < r.nonce {
		r.nonce = n
		r.found = true
	}
	r.mu.Unlock()
}

// fail 记录首个错误
func (r *resultSlot) fail(err error) {
	r.mu.Lock()
	if r.err == nil {
		r.err = err
	}
	r.mu.Unlock()
}

// snapshot 读取当前状态
func (r *resultSlot) snapshot() (nonce uint64, found bool, err error) {
	r.mu.Lock()
	nonce, found, err = r.nonce, r.found, r.err
	r.mu.Unlock()
	return
}

// mineParallel 多协程交错步长搜索
func (e *Engine) mineParallel(ctx context.Context, blk *types.Block, target string) (uint64, bool, uint64, error) {
	workers := e.config.WorkerCount
	stride := uint64(workers)

	slot := &resultSlot{}
	var (
		wg         sync.WaitGroup
		attemptsMu sync.Mutex
		attempts   uint64
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start uint64) {
			defer wg.Done()

			// 每个协程独占自己的区块副本，无共享可变区块状态
			candidate := blk.Clone()
			var local uint64

			defer func() {
				attemptsMu.Lock()
				attempts += local
				attemptsMu.Unlock()
			}()

			for n := start; ; n += stride {
				if local%cancelCheckInterval == 0 {
					select {
					case <-ctx.Done():
						slot.fail(fmt.Errorf("挖矿被取消: %w", ctx.Err()))
						return
					default:
					}

					best, found, err := slot.snapshot()
					if err != nil {
						return
					}
					// 只有确认不可能再产生更小的解时才退出
					if found && n > best {
						return
					}
				}

				candidate.Nonce = n
				local++

				hash, err := e.hash.ComputeHash(candidate)
				if err != nil {
					slot.fail(fmt.Errorf("计算候选哈希失败: %w", err))
					return
				}

				if strings.HasPrefix(hash, target) {
					slot.offer(n)
					return
				}

				// 步长递增的溢出保护：本协程的子空间已耗尽
				if n > math.MaxUint64-stride {
					return
				}
			}
		}(uint64(w))
	}

	wg.Wait()

	nonce, found, err := slot.snapshot()
	if err != nil {
		return 0, false, attempts, err
	}
	return nonce, found, attempts, nil
}
