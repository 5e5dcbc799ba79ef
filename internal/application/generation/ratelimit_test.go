package generation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docgen-ai-api/pkg/errors"
)

func TestRateLimiter_CeilingRejects(t *testing.T) {
	limiter := NewRateLimiter(3)

	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.CheckAndRecord())
	}

	err := limiter.CheckAndRecord()
	assert.ErrorIs(t, err, errors.ErrRateLimitExceeded)

	// 被拒绝的调用不计入窗口
	assert.Equal(t, 3, limiter.Len())
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	base := time.Now()
	current := base

	limiter := NewRateLimiter(2)
	limiter.now = func() time.Time { return current }

	require.NoError(t, limiter.CheckAndRecord())
	require.NoError(t, limiter.CheckAndRecord())
	require.Error(t, limiter.CheckAndRecord())

	// 窗口滑过之后旧时间戳被剪掉
	current = base.Add(rateLimitWindow + time.Second)
	require.NoError(t, limiter.CheckAndRecord())
	assert.Equal(t, 1, limiter.Len())
}

func TestRateLimiter_ZeroCeilingRejectsEverything(t *testing.T) {
	limiter := NewRateLimiter(0)
	assert.ErrorIs(t, limiter.CheckAndRecord(), errors.ErrRateLimitExceeded)
	assert.Equal(t, 0, limiter.Len())
}
