package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"docgen-ai-api/internal/domain/entity"
)

// ConfigRepository 项目配置仓储实现
type ConfigRepository struct {
	client *Client
}

// NewConfigRepository 创建项目配置仓储
func NewConfigRepository(client *Client) *ConfigRepository {
	return &ConfigRepository{client: client}
}

// Upsert 创建或覆盖项目配置
// 以 project_id 为冲突键，重复提交覆盖标题列表与背景文本。
func (r *ConfigRepository) Upsert(ctx context.Context, config *entity.ProjectConfig) error {
	ctx, span := tracer.Start(ctx, "postgres.ConfigRepository.Upsert")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"titles", "context", "updated_at"}),
	}).Create(config).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to upsert project config: %w", err)
	}
	return nil
}

// GetByProject 获取项目配置，不存在时返回 (nil, nil)
func (r *ConfigRepository) GetByProject(ctx context.Context, projectID string) (*entity.ProjectConfig, error) {
	ctx, span := tracer.Start(ctx, "postgres.ConfigRepository.GetByProject")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var config entity.ProjectConfig
	if err := db.First(&config, "project_id = ?", projectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get project config: %w", err)
	}
	return &config, nil
}

// DeleteByProject 删除项目配置
func (r *ConfigRepository) DeleteByProject(ctx context.Context, projectID string) error {
	ctx, span := tracer.Start(ctx, "postgres.ConfigRepository.DeleteByProject")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.ProjectConfig{}, "project_id = ?", projectID).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete project config: %w", err)
	}
	return nil
}
