// Package generation 实现内容生成编排核心
package generation

import (
	"sync"
	"time"

	"docgen-ai-api/pkg/errors"
)

// rateLimitWindow 滑动窗口长度
const rateLimitWindow = time.Minute

// RateLimiter 进程级提供商调用限流器
//
// 滑动剪枝计数器：每次检查先剔除窗口外的时间戳，达到上限时拒绝且不记录，
// 否则记录当前时间戳并放行。允许瞬时打满上限的突发，不是令牌桶。
// 状态仅存活于进程生命周期内，不按调用方分片。
type RateLimiter struct {
	mu      sync.Mutex
	ceiling int
	calls   []time.Time
	now     func() time.Time
}

// NewRateLimiter 创建限流器，ceiling 为每分钟调用上限
func NewRateLimiter(ceiling int) *RateLimiter {
	return &RateLimiter{
		ceiling: ceiling,
		now:     time.Now,
	}
}

// CheckAndRecord 检查并记录一次调用
// 超限时返回 ErrRateLimitExceeded，此时不记录本次调用。
func (l *RateLimiter) CheckAndRecord() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-rateLimitWindow)

	kept := l.calls[:0]
	for _, t := range l.calls {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	l.calls = kept

	if len(l.calls) >= l.ceiling {
		return errors.ErrRateLimitExceeded
	}

	l.calls = append(l.calls, now)
	return nil
}

// Len 返回当前窗口内已记录的调用数
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-rateLimitWindow)
	n := 0
	for _, t := range l.calls {
		if t.After(cutoff) {
			n++
		}
	}
	return n
}
