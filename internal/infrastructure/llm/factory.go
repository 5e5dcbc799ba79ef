// Package llm 提供 LLM 提供商客户端工厂
package llm

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/openai"

	"docgen-ai-api/internal/application/generation"
	"docgen-ai-api/internal/config"
	"docgen-ai-api/pkg/logger"
)

// Factory 提供商客户端工厂
//
// 客户端在进程启动时构造并探测一次，初始化失败的提供商在整个进程
// 生命周期内标记为不可用，调用链据此直接跳过。
type Factory struct {
	primary   *generation.Provider
	secondary *generation.Provider
}

// NewFactory 创建工厂并探测两级提供商
func NewFactory(ctx context.Context, cfg *config.LLMConfig) *Factory {
	f := &Factory{}

	if cfg.Offline {
		logger.Info(ctx, "离线模式已开启，跳过提供商探测")
		return f
	}

	f.primary = probe(ctx, "primary", &cfg.Primary)
	f.secondary = probe(ctx, "secondary", &cfg.Secondary)
	return f
}

// probe 构造单个提供商客户端，失败时返回 nil
func probe(ctx context.Context, name string, cfg *config.ProviderConfig) *generation.Provider {
	if !cfg.Configured() {
		logger.Info(ctx, "提供商未配置，标记为不可用", "provider", name)
		return nil
	}

	temperature := float32(cfg.Temperature)
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		MaxTokens:   &cfg.MaxTokens,
		Temperature: &temperature,
		Timeout:     cfg.Timeout,
	})
	if err != nil {
		logger.Warn(ctx, "提供商客户端初始化失败，标记为不可用", "provider", name, "model", cfg.Model, "error", err.Error())
		return nil
	}

	logger.Info(ctx, "提供商就绪", "provider", name, "model", cfg.Model)
	return &generation.Provider{
		Name:  name,
		Model: cfg.Model,
		Chat:  chatModel,
	}
}

// Primary 主提供商
func (f *Factory) Primary() (*generation.Provider, bool) {
	return f.primary, f.primary != nil
}

// Secondary 次提供商
func (f *Factory) Secondary() (*generation.Provider, bool) {
	return f.secondary, f.secondary != nil
}
