package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"docgen-ai-api/internal/application/generation"
	"docgen-ai-api/internal/domain/entity"
	"docgen-ai-api/internal/domain/repository"
)

// configCacheTTL 项目配置缓存时长
const configCacheTTL = 10 * time.Minute

// ProjectContextProvider 带缓存的项目背景查询
//
// 配置经 redis 缓存，提交配置时由应用层调用 InvalidateProject 使其失效。
// 无配置的项目缓存空配置，避免缓存穿透。
type ProjectContextProvider struct {
	cache   *Cache
	configs repository.ConfigRepository
}

// NewProjectContextProvider 创建项目背景查询
func NewProjectContextProvider(cache *Cache, configs repository.ConfigRepository) *ProjectContextProvider {
	return &ProjectContextProvider{
		cache:   cache,
		configs: configs,
	}
}

// ProjectContext 返回项目级自由文本背景，无配置时返回空串
func (p *ProjectContextProvider) ProjectContext(ctx context.Context, projectID string) (string, error) {
	data, err := p.cache.GetOrLoadSafe(ctx, ConfigKey(projectID), configCacheTTL, func() (interface{}, error) {
		cfg, err := p.configs.GetByProject(ctx, projectID)
		if err != nil {
			return nil, err
		}
		if cfg == nil {
			return &entity.ProjectConfig{ProjectID: projectID}, nil
		}
		return cfg, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to load project config: %w", err)
	}

	var cfg entity.ProjectConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return "", fmt.Errorf("failed to decode cached config: %w", err)
	}
	return cfg.Context, nil
}

var _ generation.ContextProvider = (*ProjectContextProvider)(nil)
