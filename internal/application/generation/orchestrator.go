package generation

import (
	"context"
	"fmt"
	"time"

	"docgen-ai-api/pkg/errors"
	"docgen-ai-api/pkg/logger"
	"docgen-ai-api/pkg/metrics"
)

// Selection 生成目标选择
// All 为 true 时生成项目全部条目，否则仅生成 IDs 指定的条目。
type Selection struct {
	All bool
	IDs []string
}

// SequenceResult 一次生成序列的计数
// Requested 为命中大纲的目标条目数，Generated 为成功持久化的条目数。
type SequenceResult struct {
	Generated int
	Requested int
}

// Orchestrator 顺序生成编排器
//
// 按 order_index 升序逐条生成，已处理条目的标题作为后续条目的背景传递。
// 生成子集时，首个选中条目之前的大纲条目标题计入初始背景，
// 其后未选中的条目不进入背景。
// 单条持久化失败只影响该条目，不中断序列。
type Orchestrator struct {
	generator Generator
	contexts  ContextProvider
	sections  OutlineStore
	slides    OutlineStore
}

// NewOrchestrator 创建生成编排器
func NewOrchestrator(generator Generator, contexts ContextProvider, sections, slides OutlineStore) *Orchestrator {
	return &Orchestrator{
		generator: generator,
		contexts:  contexts,
		sections:  sections,
		slides:    slides,
	}
}

// GenerateSequence 顺序生成选中条目
func (o *Orchestrator) GenerateSequence(ctx context.Context, projectID string, kind ContentKind, sel Selection) (SequenceResult, error) {
	var result SequenceResult

	if !sel.All && len(sel.IDs) == 0 {
		return result, errors.New(errors.CodeInvalidRequest, "no items selected for generation")
	}

	store := o.sections
	if kind == KindSlide {
		store = o.slides
	}

	items, err := store.ListByProject(ctx, projectID)
	if err != nil {
		return result, fmt.Errorf("failed to list outline items: %w", err)
	}

	selected := make(map[string]bool, len(sel.IDs))
	for _, id := range sel.IDs {
		selected[id] = true
	}

	// 背景查询失败不阻塞生成，退化为无项目背景
	projectContext, err := o.contexts.ProjectContext(ctx, projectID)
	if err != nil {
		logger.Warn(ctx, "项目背景查询失败，继续无背景生成", "project_id", projectID, "error", err.Error())
		projectContext = ""
	}

	start := time.Now()
	var previous []string

	// 首个选中条目之前的标题作为初始背景
	if !sel.All {
		for _, item := range items {
			if selected[item.ID] {
				break
			}
			previous = append(previous, item.Title)
		}
	}

	for _, item := range items {
		if !sel.All && !selected[item.ID] {
			continue
		}
		result.Requested++

		prompt := BuildPrompt(kind, item.Title)
		extra := BuildContext(kind, projectContext, previous)
		content := o.generator.Generate(ctx, prompt, extra)

		if err := store.UpdateContent(ctx, item.ID, content, true); err != nil {
			logger.Error(ctx, "生成内容持久化失败", err, "project_id", projectID, "item_id", item.ID)
			metrics.GenerationTotal.WithLabelValues(string(kind), "error").Inc()
			continue
		}

		metrics.GenerationTotal.WithLabelValues(string(kind), "success").Inc()
		previous = append(previous, item.Title)
		result.Generated++
	}

	metrics.GenerationDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	logger.Info(ctx, "生成序列完成", "project_id", projectID, "kind", string(kind), "generated", result.Generated, "requested", result.Requested)
	return result, nil
}
