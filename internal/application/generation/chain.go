package generation

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"

	"docgen-ai-api/internal/config"
	einoobs "docgen-ai-api/internal/observability/eino"
	"docgen-ai-api/pkg/errors"
	"docgen-ai-api/pkg/logger"
	"docgen-ai-api/pkg/metrics"
)

// 兜底原因，作为指标标签
const (
	fallbackOffline     = "offline"
	fallbackUnavailable = "unavailable"
	fallbackExhausted   = "exhausted"
)

// Chain 提供商调用链
//
// 调用顺序：离线开关 > 次提供商单次尝试 > 主提供商限流重试 > 离线合成器。
// Generate 对调用方永不失败，提供商全部不可用时由合成器兜底。
type Chain struct {
	cfg     *config.LLMConfig
	factory ChatModelFactory
	limiter *RateLimiter
	synth   Generator
}

// NewChain 创建提供商调用链
func NewChain(cfg *config.LLMConfig, factory ChatModelFactory, limiter *RateLimiter, synth Generator) *Chain {
	return &Chain{
		cfg:     cfg,
		factory: factory,
		limiter: limiter,
		synth:   synth,
	}
}

// Generate 生成内容，永不失败，extra 为空时不拼接背景前缀
func (c *Chain) Generate(ctx context.Context, prompt, extra string) string {
	content, reason, err := c.tryProviders(ctx, prompt, extra)
	if err == nil {
		return content
	}

	metrics.FallbackTotal.WithLabelValues(reason).Inc()
	return c.synth.Generate(ctx, prompt, extra)
}

// TryGenerate 仅经由提供商生成，不使用离线合成器兜底
// 离线模式、无可用提供商或重试耗尽时返回错误，由调用方决定兜底策略。
func (c *Chain) TryGenerate(ctx context.Context, prompt, extra string) (string, error) {
	content, _, err := c.tryProviders(ctx, prompt, extra)
	return content, err
}

func (c *Chain) tryProviders(ctx context.Context, prompt, extra string) (string, string, error) {
	full := prompt
	if extra != "" {
		full = "Context: " + extra + "\n\n" + prompt
	}

	if c.cfg.Offline {
		return "", fallbackOffline, errors.ErrProviderUnavailable
	}

	// 次提供商仅尝试一次，不占用限流窗口
	if secondary, ok := c.factory.Secondary(); ok {
		content, err := c.call(ctx, secondary, full)
		if err == nil {
			return content, "", nil
		}
		logger.Warn(ctx, "次提供商调用失败，转入主提供商", "provider", secondary.Name, "error", err.Error())
	}

	primary, ok := c.factory.Primary()
	if !ok {
		logger.Warn(ctx, "主提供商不可用")
		return "", fallbackUnavailable, errors.ErrProviderUnavailable
	}

	attempts := c.cfg.RetryAttempts
	for attempt := 1; attempt <= attempts; attempt++ {
		content, err := c.attemptPrimary(ctx, primary, full)
		if err == nil {
			return content, "", nil
		}
		logger.Warn(ctx, "主提供商调用失败", "provider", primary.Name, "attempt", attempt, "error", err.Error())

		// 退避间隔随尝试次数线性增长
		if attempt < attempts {
			select {
			case <-time.After(c.cfg.RetryBaseDelay * time.Duration(attempt)):
			case <-ctx.Done():
				logger.Warn(ctx, "生成被取消", "error", ctx.Err().Error())
				return "", fallbackExhausted, errors.ErrProviderCallFailed
			}
		}
	}

	logger.Error(ctx, "主提供商重试耗尽", nil, "attempts", attempts)
	return "", fallbackExhausted, errors.ErrProviderCallFailed
}

// attemptPrimary 主提供商的一次尝试，限流拒绝计为一次失败尝试
func (c *Chain) attemptPrimary(ctx context.Context, p *Provider, full string) (string, error) {
	if err := c.limiter.CheckAndRecord(); err != nil {
		metrics.LLMRateLimited.Inc()
		return "", err
	}
	return c.call(ctx, p, full)
}

// call 执行一次提供商调用并记录指标
// 空响应视作调用失败。
func (c *Chain) call(ctx context.Context, p *Provider, full string) (string, error) {
	messages := []*schema.Message{
		schema.SystemMessage(systemInstruction),
		schema.UserMessage(full),
	}

	start := time.Now()
	msg, err := p.Chat.Generate(einoobs.WithProvider(ctx, p.Name), messages)
	metrics.LLMCallDuration.WithLabelValues(p.Name, p.Model).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.LLMCallTotal.WithLabelValues(p.Name, p.Model, "error").Inc()
		return "", fmt.Errorf("failed to call provider %s: %w", p.Name, err)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		metrics.LLMCallTotal.WithLabelValues(p.Name, p.Model, "empty").Inc()
		return "", stderrors.New("provider returned empty completion")
	}

	metrics.LLMCallTotal.WithLabelValues(p.Name, p.Model, "success").Inc()
	return msg.Content, nil
}
