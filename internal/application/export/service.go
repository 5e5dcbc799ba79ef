// Package export 实现文档导出
package export

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"docgen-ai-api/internal/domain/entity"
	"docgen-ai-api/internal/domain/repository"
	"docgen-ai-api/pkg/logger"
	"docgen-ai-api/pkg/metrics"
)

// Store 导出文件存取端口，由存储后端适配
type Store interface {
	// Save 持久化导出文件
	Save(ctx context.Context, name string, data []byte) error

	// Open 打开已导出的文件，不存在时返回错误
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// Service 导出服务
//
// Word 项目渲染为 markdown，PowerPoint 项目渲染为分隔的幻灯片文本。
// 不产出二进制文档格式。
type Service struct {
	sections repository.SectionRepository
	slides   repository.SlideRepository
	store    Store
}

// NewService 创建导出服务
func NewService(sections repository.SectionRepository, slides repository.SlideRepository, store Store) *Service {
	return &Service{
		sections: sections,
		slides:   slides,
		store:    store,
	}
}

// Export 渲染并持久化项目内容，返回存储文件名
func (s *Service) Export(ctx context.Context, project *entity.Project) (string, error) {
	kind := string(project.Kind)

	var rendered string
	var ext string
	if project.IsWord() {
		sections, err := s.sections.ListByProject(ctx, project.ID)
		if err != nil {
			metrics.ExportTotal.WithLabelValues(kind, "error").Inc()
			return "", fmt.Errorf("failed to load sections for export: %w", err)
		}
		rendered = renderMarkdown(project, sections)
		ext = "md"
	} else {
		slides, err := s.slides.ListByProject(ctx, project.ID)
		if err != nil {
			metrics.ExportTotal.WithLabelValues(kind, "error").Inc()
			return "", fmt.Errorf("failed to load slides for export: %w", err)
		}
		rendered = renderSlideText(project, slides)
		ext = "txt"
	}

	name := fmt.Sprintf("%s-%s.%s", project.ID, time.Now().UTC().Format("20060102T150405"), ext)
	if err := s.store.Save(ctx, name, []byte(rendered)); err != nil {
		metrics.ExportTotal.WithLabelValues(kind, "error").Inc()
		return "", fmt.Errorf("failed to store export: %w", err)
	}

	metrics.ExportTotal.WithLabelValues(kind, "success").Inc()
	logger.Info(ctx, "导出完成", "project_id", project.ID, "kind", kind, "file", name)
	return name, nil
}

// Open 打开已导出的文件
func (s *Service) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.store.Open(ctx, name)
}

// renderMarkdown Word 项目渲染为 markdown 文档
func renderMarkdown(project *entity.Project, sections []*entity.Section) string {
	var b strings.Builder
	b.WriteString("# " + project.Name + "\n")
	if project.Description != "" {
		b.WriteString("\n" + project.Description + "\n")
	}
	for _, section := range sections {
		b.WriteString("\n## " + section.Title + "\n\n")
		if content := section.ContentText(); content != "" {
			b.WriteString(content + "\n")
		}
	}
	return b.String()
}

// renderSlideText PowerPoint 项目渲染为分隔的幻灯片文本
func renderSlideText(project *entity.Project, slides []*entity.Slide) string {
	var b strings.Builder
	b.WriteString(project.Name + "\n")
	for i, slide := range slides {
		b.WriteString(fmt.Sprintf("\n--- Slide %d: %s ---\n", i+1, slide.Title))
		if content := slide.ContentText(); content != "" {
			b.WriteString(content + "\n")
		}
	}
	return b.String()
}
