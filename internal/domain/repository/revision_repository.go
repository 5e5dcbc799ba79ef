// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"docgen-ai-api/internal/domain/entity"
)

// RevisionRepository 修订快照仓储接口
type RevisionRepository interface {
	// Create 创建修订快照
	Create(ctx context.Context, revision *entity.Revision) error

	// GetByID 根据 ID 获取修订快照
	GetByID(ctx context.Context, id string) (*entity.Revision, error)

	// GetByNumber 根据项目与修订号获取快照
	GetByNumber(ctx context.Context, projectID string, number int) (*entity.Revision, error)

	// ListByProject 按修订号倒序获取项目修订列表
	ListByProject(ctx context.Context, projectID string, pagination Pagination) (*PagedResult[*entity.Revision], error)

	// NextNumber 获取项目的下一个修订号
	NextNumber(ctx context.Context, projectID string) (int, error)
}
