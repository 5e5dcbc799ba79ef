// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"docgen-ai-api/internal/domain/entity"
)

// SectionRepository 章节仓储接口
type SectionRepository interface {
	// Create 创建章节
	Create(ctx context.Context, section *entity.Section) error

	// CreateBatch 批量创建章节
	CreateBatch(ctx context.Context, sections []*entity.Section) error

	// GetByID 根据 ID 获取章节
	GetByID(ctx context.Context, id string) (*entity.Section, error)

	// Update 更新章节
	Update(ctx context.Context, section *entity.Section) error

	// Delete 删除章节
	Delete(ctx context.Context, id string) error

	// ListByProject 按 order_index 升序获取项目全部章节
	ListByProject(ctx context.Context, projectID string) ([]*entity.Section, error)

	// UpdateContent 单条 UPDATE 同时写入内容与生成标记
	UpdateContent(ctx context.Context, id, content string, isGenerated bool) error

	// UpdateContentOnly 只写入内容，不改动生成标记
	UpdateContentOnly(ctx context.Context, id, content string) error

	// DeleteByProject 删除项目全部章节
	DeleteByProject(ctx context.Context, projectID string) error
}
