package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"docgen-ai-api/internal/domain/entity"
	"docgen-ai-api/internal/domain/repository"
)

// RevisionRepository 修订快照仓储实现
type RevisionRepository struct {
	client *Client
}

// NewRevisionRepository 创建修订快照仓储
func NewRevisionRepository(client *Client) *RevisionRepository {
	return &RevisionRepository{client: client}
}

// Create 创建修订快照
func (r *RevisionRepository) Create(ctx context.Context, revision *entity.Revision) error {
	ctx, span := tracer.Start(ctx, "postgres.RevisionRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(revision).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create revision: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取修订快照
func (r *RevisionRepository) GetByID(ctx context.Context, id string) (*entity.Revision, error) {
	ctx, span := tracer.Start(ctx, "postgres.RevisionRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var revision entity.Revision
	if err := db.First(&revision, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get revision: %w", err)
	}
	return &revision, nil
}

// GetByNumber 根据项目与修订号获取快照
func (r *RevisionRepository) GetByNumber(ctx context.Context, projectID string, number int) (*entity.Revision, error) {
	ctx, span := tracer.Start(ctx, "postgres.RevisionRepository.GetByNumber")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var revision entity.Revision
	if err := db.First(&revision, "project_id = ? AND revision_number = ?", projectID, number).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get revision by number: %w", err)
	}
	return &revision, nil
}

// ListByProject 按修订号倒序获取项目修订列表
func (r *RevisionRepository) ListByProject(ctx context.Context, projectID string, pagination repository.Pagination) (*repository.PagedResult[*entity.Revision], error) {
	ctx, span := tracer.Start(ctx, "postgres.RevisionRepository.ListByProject")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.Revision{}).Where("project_id = ?", projectID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count revisions: %w", err)
	}

	var revisions []*entity.Revision
	if err := query.Order("revision_number DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&revisions).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list revisions: %w", err)
	}

	return repository.NewPagedResult(revisions, total, pagination), nil
}

// NextNumber 获取项目的下一个修订号，从 1 开始单调递增
func (r *RevisionRepository) NextNumber(ctx context.Context, projectID string) (int, error) {
	ctx, span := tracer.Start(ctx, "postgres.RevisionRepository.NextNumber")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var maxNumber *int
	err := db.Model(&entity.Revision{}).
		Where("project_id = ?", projectID).
		Select("MAX(revision_number)").
		Scan(&maxNumber).Error
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("failed to get max revision number: %w", err)
	}

	if maxNumber == nil {
		return 1, nil
	}
	return *maxNumber + 1, nil
}
