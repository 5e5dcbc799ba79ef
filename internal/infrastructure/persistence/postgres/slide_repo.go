package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"docgen-ai-api/internal/domain/entity"
)

// SlideRepository 幻灯片仓储实现
type SlideRepository struct {
	client *Client
}

// NewSlideRepository 创建幻灯片仓储
func NewSlideRepository(client *Client) *SlideRepository {
	return &SlideRepository{client: client}
}

// Create 创建幻灯片
func (r *SlideRepository) Create(ctx context.Context, slide *entity.Slide) error {
	ctx, span := tracer.Start(ctx, "postgres.SlideRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(slide).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create slide: %w", err)
	}
	return nil
}

// CreateBatch 批量创建幻灯片
func (r *SlideRepository) CreateBatch(ctx context.Context, slides []*entity.Slide) error {
	ctx, span := tracer.Start(ctx, "postgres.SlideRepository.CreateBatch")
	defer span.End()

	if len(slides) == 0 {
		return nil
	}

	db := getDB(ctx, r.client.db)
	if err := db.Create(&slides).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create slides: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取幻灯片
func (r *SlideRepository) GetByID(ctx context.Context, id string) (*entity.Slide, error) {
	ctx, span := tracer.Start(ctx, "postgres.SlideRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var slide entity.Slide
	if err := db.First(&slide, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get slide: %w", err)
	}
	return &slide, nil
}

// Update 更新幻灯片
func (r *SlideRepository) Update(ctx context.Context, slide *entity.Slide) error {
	ctx, span := tracer.Start(ctx, "postgres.SlideRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(slide).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update slide: %w", err)
	}
	return nil
}

// Delete 删除幻灯片
func (r *SlideRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.SlideRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Slide{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete slide: %w", err)
	}
	return nil
}

// ListByProject 按 order_index 升序获取项目全部幻灯片
func (r *SlideRepository) ListByProject(ctx context.Context, projectID string) ([]*entity.Slide, error) {
	ctx, span := tracer.Start(ctx, "postgres.SlideRepository.ListByProject")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var slides []*entity.Slide
	if err := db.Where("project_id = ?", projectID).
		Order("order_index ASC").
		Find(&slides).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list slides: %w", err)
	}
	return slides, nil
}

// UpdateContent 单条 UPDATE 同时写入内容与生成标记
func (r *SlideRepository) UpdateContent(ctx context.Context, id, content string, isGenerated bool) error {
	ctx, span := tracer.Start(ctx, "postgres.SlideRepository.UpdateContent")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Model(&entity.Slide{}).Where("id = ?", id).Updates(map[string]interface{}{
		"content":      content,
		"is_generated": isGenerated,
	}).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update slide content: %w", err)
	}
	return nil
}

// UpdateContentOnly 只写入内容，不改动生成标记
func (r *SlideRepository) UpdateContentOnly(ctx context.Context, id, content string) error {
	ctx, span := tracer.Start(ctx, "postgres.SlideRepository.UpdateContentOnly")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Model(&entity.Slide{}).Where("id = ?", id).Update("content", content).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update slide content: %w", err)
	}
	return nil
}

// DeleteByProject 删除项目全部幻灯片
func (r *SlideRepository) DeleteByProject(ctx context.Context, projectID string) error {
	ctx, span := tracer.Start(ctx, "postgres.SlideRepository.DeleteByProject")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Slide{}, "project_id = ?", projectID).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete slides: %w", err)
	}
	return nil
}
