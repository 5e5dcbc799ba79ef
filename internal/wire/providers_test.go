package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docgen-ai-api/internal/config"
)

// 默认构建（无 wireinject 标签）下提供者函数必须可见，wire_gen.go 依赖它们
func TestProvideAuthConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Security.JWT.Secret = "test-secret"
	cfg.Security.JWT.Issuer = "docgen-ai"

	authCfg := ProvideAuthConfig(cfg)

	assert.Equal(t, "test-secret", authCfg.Secret)
	assert.Equal(t, "docgen-ai", authCfg.Issuer)
	assert.True(t, authCfg.Enabled)
	assert.Contains(t, authCfg.SkipPaths, "/v1/auth/register")
	assert.Contains(t, authCfg.SkipPaths, "/v1/auth/login")
	assert.Contains(t, authCfg.SkipPaths, "/v1/auth/refresh")
	assert.Contains(t, authCfg.SkipPaths, "/v1/auth/logout")
}

func TestProvideProviderRateLimiter(t *testing.T) {
	cfg := &config.Config{}
	cfg.LLM.RateLimitPerMinute = 5

	limiter := ProvideProviderRateLimiter(cfg)

	assert.NotNil(t, limiter)
	assert.Equal(t, 0, limiter.Len())
}
