package postgres

import (
	"context"
	"fmt"

	"docgen-ai-api/internal/domain/entity"
)

// RefinementRepository 润色记录仓储实现，只追加
type RefinementRepository struct {
	client *Client
}

// NewRefinementRepository 创建润色记录仓储
func NewRefinementRepository(client *Client) *RefinementRepository {
	return &RefinementRepository{client: client}
}

// Append 追加润色记录
func (r *RefinementRepository) Append(ctx context.Context, refinement *entity.Refinement) error {
	ctx, span := tracer.Start(ctx, "postgres.RefinementRepository.Append")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(refinement).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to append refinement: %w", err)
	}
	return nil
}

// ListBySection 按创建时间倒序获取章节的润色历史
func (r *RefinementRepository) ListBySection(ctx context.Context, sectionID string) ([]*entity.Refinement, error) {
	ctx, span := tracer.Start(ctx, "postgres.RefinementRepository.ListBySection")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var refinements []*entity.Refinement
	if err := db.Where("section_id = ?", sectionID).
		Order("created_at DESC").
		Find(&refinements).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list refinements by section: %w", err)
	}
	return refinements, nil
}

// ListBySlide 按创建时间倒序获取幻灯片的润色历史
func (r *RefinementRepository) ListBySlide(ctx context.Context, slideID string) ([]*entity.Refinement, error) {
	ctx, span := tracer.Start(ctx, "postgres.RefinementRepository.ListBySlide")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var refinements []*entity.Refinement
	if err := db.Where("slide_id = ?", slideID).
		Order("created_at DESC").
		Find(&refinements).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list refinements by slide: %w", err)
	}
	return refinements, nil
}
