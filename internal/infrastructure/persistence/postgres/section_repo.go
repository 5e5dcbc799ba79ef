package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"docgen-ai-api/internal/domain/entity"
)

// SectionRepository 章节仓储实现
type SectionRepository struct {
	client *Client
}

// NewSectionRepository 创建章节仓储
func NewSectionRepository(client *Client) *SectionRepository {
	return &SectionRepository{client: client}
}

// Create 创建章节
func (r *SectionRepository) Create(ctx context.Context, section *entity.Section) error {
	ctx, span := tracer.Start(ctx, "postgres.SectionRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(section).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create section: %w", err)
	}
	return nil
}

// CreateBatch 批量创建章节
func (r *SectionRepository) CreateBatch(ctx context.Context, sections []*entity.Section) error {
	ctx, span := tracer.Start(ctx, "postgres.SectionRepository.CreateBatch")
	defer span.End()

	if len(sections) == 0 {
		return nil
	}

	db := getDB(ctx, r.client.db)
	if err := db.Create(&sections).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create sections: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取章节
func (r *SectionRepository) GetByID(ctx context.Context, id string) (*entity.Section, error) {
	ctx, span := tracer.Start(ctx, "postgres.SectionRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var section entity.Section
	if err := db.First(&section, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get section: %w", err)
	}
	return &section, nil
}

// Update 更新章节
func (r *SectionRepository) Update(ctx context.Context, section *entity.Section) error {
	ctx, span := tracer.Start(ctx, "postgres.SectionRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(section).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update section: %w", err)
	}
	return nil
}

// Delete 删除章节
func (r *SectionRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.SectionRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Section{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete section: %w", err)
	}
	return nil
}

// ListByProject 按 order_index 升序获取项目全部章节
func (r *SectionRepository) ListByProject(ctx context.Context, projectID string) ([]*entity.Section, error) {
	ctx, span := tracer.Start(ctx, "postgres.SectionRepository.ListByProject")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var sections []*entity.Section
	if err := db.Where("project_id = ?", projectID).
		Order("order_index ASC").
		Find(&sections).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	return sections, nil
}

// UpdateContent 单条 UPDATE 同时写入内容与生成标记
func (r *SectionRepository) UpdateContent(ctx context.Context, id, content string, isGenerated bool) error {
	ctx, span := tracer.Start(ctx, "postgres.SectionRepository.UpdateContent")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Model(&entity.Section{}).Where("id = ?", id).Updates(map[string]interface{}{
		"content":      content,
		"is_generated": isGenerated,
	}).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update section content: %w", err)
	}
	return nil
}

// UpdateContentOnly 只写入内容，不改动生成标记
func (r *SectionRepository) UpdateContentOnly(ctx context.Context, id, content string) error {
	ctx, span := tracer.Start(ctx, "postgres.SectionRepository.UpdateContentOnly")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Model(&entity.Section{}).Where("id = ?", id).Update("content", content).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update section content: %w", err)
	}
	return nil
}

// DeleteByProject 删除项目全部章节
func (r *SectionRepository) DeleteByProject(ctx context.Context, projectID string) error {
	ctx, span := tracer.Start(ctx, "postgres.SectionRepository.DeleteByProject")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Section{}, "project_id = ?", projectID).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete sections: %w", err)
	}
	return nil
}
