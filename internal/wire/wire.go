//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

	"docgen-ai-api/internal/application/export"
	"docgen-ai-api/internal/application/generation"
	"docgen-ai-api/internal/application/outline"
	"docgen-ai-api/internal/application/revision"
	"docgen-ai-api/internal/config"
	"docgen-ai-api/internal/domain/repository"
	"docgen-ai-api/internal/infrastructure/persistence/postgres"
	"docgen-ai-api/internal/infrastructure/persistence/redis"
	"docgen-ai-api/internal/infrastructure/storage"
	"docgen-ai-api/internal/interfaces/http/handler"
	"docgen-ai-api/internal/interfaces/http/middleware"
	"docgen-ai-api/internal/interfaces/http/router"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		RepoSet,
		RedisSet,
		StorageSet,
		GenerationSet,
		ApplicationSet,
		RouterSet,
	)
	return nil, nil, nil
}

// PostgresSet PostgreSQL 提供者集合
var PostgresSet = wire.NewSet(
	ProvidePostgresClient,
	postgres.NewTxManager,
	postgres.NewUserRepository,
	postgres.NewProjectRepository,
	postgres.NewSectionRepository,
	postgres.NewSlideRepository,
	postgres.NewConfigRepository,
	postgres.NewRefinementRepository,
	postgres.NewRevisionRepository,
)

// RepoSet 整合了具体实现与接口绑定的集合
var RepoSet = wire.NewSet(
	PostgresSet,
	// 接口绑定
	wire.Bind(new(repository.Transactor), new(*postgres.TxManager)),
	wire.Bind(new(repository.UserRepository), new(*postgres.UserRepository)),
	wire.Bind(new(repository.ProjectRepository), new(*postgres.ProjectRepository)),
	wire.Bind(new(repository.SectionRepository), new(*postgres.SectionRepository)),
	wire.Bind(new(repository.SlideRepository), new(*postgres.SlideRepository)),
	wire.Bind(new(repository.ConfigRepository), new(*postgres.ConfigRepository)),
	wire.Bind(new(repository.RefinementRepository), new(*postgres.RefinementRepository)),
	wire.Bind(new(repository.RevisionRepository), new(*postgres.RevisionRepository)),
)

// RedisSet Redis 提供者集合
var RedisSet = wire.NewSet(
	ProvideRedisClient,
	redis.NewCache,
	redis.NewRateLimiter,
	redis.NewProjectContextProvider,
	wire.Bind(new(middleware.RateLimiter), new(*redis.RateLimiter)),
	wire.Bind(new(outline.CacheInvalidator), new(*redis.Cache)),
	wire.Bind(new(generation.ContextProvider), new(*redis.ProjectContextProvider)),
)

// StorageSet 导出存储提供者集合
var StorageSet = wire.NewSet(
	ProvideExportStore,
	wire.Bind(new(export.Store), new(*storage.Local)),
)

// GenerationSet 生成链路提供者集合
var GenerationSet = wire.NewSet(
	ProvideChatModelFactory,
	ProvideProviderRateLimiter,
	ProvideChain,
	ProvideOrchestrator,
	ProvideRefinementEngine,
)

// ApplicationSet 应用服务提供者集合
var ApplicationSet = wire.NewSet(
	outline.NewService,
	revision.NewService,
	export.NewService,
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	ProvideAuthConfig,
	handler.NewHealthHandler,
	handler.NewAuthHandler,
	handler.NewProjectHandler,
	handler.NewOutlineHandler,
	handler.NewSectionHandler,
	handler.NewSlideHandler,
	handler.NewGenerationHandler,
	handler.NewRefinementHandler,
	handler.NewRevisionHandler,
	handler.NewExportHandler,
	wire.Struct(new(router.RouterHandlers), "*"),
	router.NewWithDeps,
)
