// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"docgen-ai-api/internal/domain/entity"
)

// ConfigRepository 项目配置仓储接口
type ConfigRepository interface {
	// Upsert 创建或覆盖项目配置
	Upsert(ctx context.Context, config *entity.ProjectConfig) error

	// GetByProject 获取项目配置，不存在时返回 (nil, nil)
	GetByProject(ctx context.Context, projectID string) (*entity.ProjectConfig, error)

	// DeleteByProject 删除项目配置
	DeleteByProject(ctx context.Context, projectID string) error
}
