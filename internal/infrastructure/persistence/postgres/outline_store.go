package postgres

import (
	"context"

	"docgen-ai-api/internal/application/generation"
	"docgen-ai-api/internal/domain/repository"
)

// SectionOutlineStore 章节大纲存取适配器
type SectionOutlineStore struct {
	sections repository.SectionRepository
}

// NewSectionOutlineStore 创建章节大纲适配器
func NewSectionOutlineStore(sections repository.SectionRepository) *SectionOutlineStore {
	return &SectionOutlineStore{sections: sections}
}

// ListByProject 按 order_index 升序返回项目全部章节
func (s *SectionOutlineStore) ListByProject(ctx context.Context, projectID string) ([]*generation.OutlineItem, error) {
	sections, err := s.sections.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	items := make([]*generation.OutlineItem, 0, len(sections))
	for _, section := range sections {
		items = append(items, &generation.OutlineItem{
			ID:          section.ID,
			Title:       section.Title,
			Content:     section.ContentText(),
			OrderIndex:  section.OrderIndex,
			IsGenerated: section.IsGenerated,
		})
	}
	return items, nil
}

// UpdateContent 持久化章节内容与生成标记
func (s *SectionOutlineStore) UpdateContent(ctx context.Context, id, content string, isGenerated bool) error {
	return s.sections.UpdateContent(ctx, id, content, isGenerated)
}

// SlideOutlineStore 幻灯片大纲存取适配器
type SlideOutlineStore struct {
	slides repository.SlideRepository
}

// NewSlideOutlineStore 创建幻灯片大纲适配器
func NewSlideOutlineStore(slides repository.SlideRepository) *SlideOutlineStore {
	return &SlideOutlineStore{slides: slides}
}

// ListByProject 按 order_index 升序返回项目全部幻灯片
func (s *SlideOutlineStore) ListByProject(ctx context.Context, projectID string) ([]*generation.OutlineItem, error) {
	slides, err := s.slides.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	items := make([]*generation.OutlineItem, 0, len(slides))
	for _, slide := range slides {
		items = append(items, &generation.OutlineItem{
			ID:          slide.ID,
			Title:       slide.Title,
			Content:     slide.ContentText(),
			OrderIndex:  slide.OrderIndex,
			IsGenerated: slide.IsGenerated,
		})
	}
	return items, nil
}

// UpdateContent 持久化幻灯片内容与生成标记
func (s *SlideOutlineStore) UpdateContent(ctx context.Context, id, content string, isGenerated bool) error {
	return s.slides.UpdateContent(ctx, id, content, isGenerated)
}

var (
	_ generation.OutlineStore = (*SectionOutlineStore)(nil)
	_ generation.OutlineStore = (*SlideOutlineStore)(nil)
)
