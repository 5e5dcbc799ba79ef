// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"docgen-ai-api/internal/application/generation"
	"docgen-ai-api/internal/application/generation/fallback"
	"docgen-ai-api/internal/application/refinement"
	"docgen-ai-api/internal/config"
	"docgen-ai-api/internal/domain/repository"
	"docgen-ai-api/internal/infrastructure/llm"
	"docgen-ai-api/internal/infrastructure/persistence/postgres"
	"docgen-ai-api/internal/infrastructure/persistence/redis"
	"docgen-ai-api/internal/infrastructure/storage"
	"docgen-ai-api/internal/interfaces/http/middleware"
)

// ProvidePostgresClient 提供 PostgreSQL 客户端
func ProvidePostgresClient(cfg *config.Config) (*postgres.Client, func(), error) {
	client, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}

// ProvideRedisClient 提供 Redis 客户端
func ProvideRedisClient(cfg *config.Config) (*redis.Client, func(), error) {
	client, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}

// ProvideExportStore 提供导出文件存储
func ProvideExportStore(cfg *config.Config) (*storage.Local, error) {
	return storage.NewLocal(&cfg.Storage.Local)
}

// ProvideChatModelFactory 提供 LLM 提供商工厂
func ProvideChatModelFactory(ctx context.Context, cfg *config.Config) generation.ChatModelFactory {
	return llm.NewFactory(ctx, &cfg.LLM)
}

// ProvideProviderRateLimiter 提供进程内提供商调用限流器
func ProvideProviderRateLimiter(cfg *config.Config) *generation.RateLimiter {
	return generation.NewRateLimiter(cfg.LLM.RateLimitPerMinute)
}

// ProvideChain 提供生成调用链
func ProvideChain(cfg *config.Config, factory generation.ChatModelFactory, limiter *generation.RateLimiter) *generation.Chain {
	return generation.NewChain(&cfg.LLM, factory, limiter, fallback.NewSynthesizer())
}

// ProvideOrchestrator 提供生成编排器
func ProvideOrchestrator(chain *generation.Chain, contexts generation.ContextProvider, sections repository.SectionRepository, slides repository.SlideRepository) *generation.Orchestrator {
	return generation.NewOrchestrator(chain, contexts, postgres.NewSectionOutlineStore(sections), postgres.NewSlideOutlineStore(slides))
}

// ProvideRefinementEngine 提供润色引擎
func ProvideRefinementEngine(cfg *config.Config, chain *generation.Chain, sections repository.SectionRepository, slides repository.SlideRepository, records repository.RefinementRepository) *refinement.Engine {
	return refinement.NewEngine(&cfg.LLM, chain, sections, slides, records)
}

// ProvideAuthConfig 提供认证配置
func ProvideAuthConfig(cfg *config.Config) middleware.AuthConfig {
	skipPaths := append([]string{}, middleware.DefaultSkipPaths...)
	skipPaths = append(skipPaths,
		"/v1/auth/register",
		"/v1/auth/login",
		"/v1/auth/refresh",
		"/v1/auth/logout",
	)
	return middleware.AuthConfig{
		Secret:    cfg.Security.JWT.Secret,
		Issuer:    cfg.Security.JWT.Issuer,
		SkipPaths: skipPaths,
		Enabled:   true,
	}
}
