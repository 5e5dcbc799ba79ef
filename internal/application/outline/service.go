// Package outline 实现大纲配置应用服务
package outline

import (
	"context"
	"fmt"

	"docgen-ai-api/internal/domain/entity"
	"docgen-ai-api/internal/domain/repository"
	"docgen-ai-api/pkg/errors"
	"docgen-ai-api/pkg/logger"
)

// CacheInvalidator 项目缓存失效端口
type CacheInvalidator interface {
	InvalidateProject(ctx context.Context, projectID string) error
}

// Service 大纲配置服务
//
// 提交配置会覆盖项目配置并按标题顺序重建整个大纲，
// 旧条目连同其生成内容一并删除，润色审计记录保留。
type Service struct {
	tx       repository.Transactor
	configs  repository.ConfigRepository
	sections repository.SectionRepository
	slides   repository.SlideRepository
	cache    CacheInvalidator
}

// NewService 创建大纲配置服务
func NewService(tx repository.Transactor, configs repository.ConfigRepository, sections repository.SectionRepository, slides repository.SlideRepository, cache CacheInvalidator) *Service {
	return &Service{
		tx:       tx,
		configs:  configs,
		sections: sections,
		slides:   slides,
		cache:    cache,
	}
}

// ApplyConfig 提交项目配置并重建大纲
func (s *Service) ApplyConfig(ctx context.Context, project *entity.Project, titles []string, contextText string) (*entity.ProjectConfig, error) {
	if len(titles) == 0 {
		return nil, errors.New(errors.CodeInvalidRequest, "outline titles must not be empty")
	}
	for _, title := range titles {
		if title == "" {
			return nil, errors.New(errors.CodeInvalidRequest, "outline titles must not be empty")
		}
	}

	config := entity.NewProjectConfig(project.ID, titles, contextText)

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.configs.Upsert(ctx, config); err != nil {
			return err
		}

		if project.IsWord() {
			if err := s.sections.DeleteByProject(ctx, project.ID); err != nil {
				return err
			}
			sections := make([]*entity.Section, 0, len(titles))
			for i, title := range titles {
				sections = append(sections, entity.NewSection(project.ID, title, i))
			}
			return s.sections.CreateBatch(ctx, sections)
		}

		if err := s.slides.DeleteByProject(ctx, project.ID); err != nil {
			return err
		}
		slides := make([]*entity.Slide, 0, len(titles))
		for i, title := range titles {
			slides = append(slides, entity.NewSlide(project.ID, title, i))
		}
		return s.slides.CreateBatch(ctx, slides)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply project config: %w", err)
	}

	// 缓存失效失败不影响写入结果
	if err := s.cache.InvalidateProject(ctx, project.ID); err != nil {
		logger.Warn(ctx, "项目配置缓存失效失败", "project_id", project.ID, "error", err.Error())
	}

	return config, nil
}

// GetConfig 获取项目配置，不存在时返回 (nil, nil)
func (s *Service) GetConfig(ctx context.Context, projectID string) (*entity.ProjectConfig, error) {
	return s.configs.GetByProject(ctx, projectID)
}
