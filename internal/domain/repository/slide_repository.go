// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"docgen-ai-api/internal/domain/entity"
)

// SlideRepository 幻灯片仓储接口
type SlideRepository interface {
	// Create 创建幻灯片
	Create(ctx context.Context, slide *entity.Slide) error

	// CreateBatch 批量创建幻灯片
	CreateBatch(ctx context.Context, slides []*entity.Slide) error

	// GetByID 根据 ID 获取幻灯片
	GetByID(ctx context.Context, id string) (*entity.Slide, error)

	// Update 更新幻灯片
	Update(ctx context.Context, slide *entity.Slide) error

	// Delete 删除幻灯片
	Delete(ctx context.Context, id string) error

	// ListByProject 按 order_index 升序获取项目全部幻灯片
	ListByProject(ctx context.Context, projectID string) ([]*entity.Slide, error)

	// UpdateContent 单条 UPDATE 同时写入内容与生成标记
	UpdateContent(ctx context.Context, id, content string, isGenerated bool) error

	// UpdateContentOnly 只写入内容，不改动生成标记
	UpdateContentOnly(ctx context.Context, id, content string) error

	// DeleteByProject 删除项目全部幻灯片
	DeleteByProject(ctx context.Context, projectID string) error
}
