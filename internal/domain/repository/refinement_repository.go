// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"docgen-ai-api/internal/domain/entity"
)

// RefinementRepository 润色记录仓储接口，只追加
type RefinementRepository interface {
	// Append 追加润色记录
	Append(ctx context.Context, refinement *entity.Refinement) error

	// ListBySection 按创建时间倒序获取章节的润色历史
	ListBySection(ctx context.Context, sectionID string) ([]*entity.Refinement, error)

	// ListBySlide 按创建时间倒序获取幻灯片的润色历史
	ListBySlide(ctx context.Context, slideID string) ([]*entity.Refinement, error)
}
