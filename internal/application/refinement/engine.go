// Package refinement 实现内容润色引擎
package refinement

import (
	"context"
	"fmt"
	"strings"

	"docgen-ai-api/internal/application/generation"
	"docgen-ai-api/internal/application/generation/fallback"
	"docgen-ai-api/internal/config"
	"docgen-ai-api/internal/domain/entity"
	"docgen-ai-api/internal/domain/repository"
	"docgen-ai-api/pkg/logger"
	"docgen-ai-api/pkg/metrics"
)

// Refiner 在线润色端口，提供商不可用时返回错误
type Refiner interface {
	TryGenerate(ctx context.Context, prompt, extra string) (string, error)
}

// ContentStore 润色内容写回端口
// 写回不改变 is_generated 标记，由持久层适配。
type ContentStore interface {
	UpdateContentOnly(ctx context.Context, id, content string) error
}

// Input 一次润色请求
// Prompt 为空表示用户手工编辑后的直接保存，内容原样入库。
type Input struct {
	TargetID string
	Kind     generation.ContentKind
	Content  string
	Prompt   *string
	Feedback *entity.RefinementFeedback
	Comments *string
}

// Result 润色结果
type Result struct {
	RecordID string `json:"record_id"`
	Content  string `json:"content"`
	Mode     string `json:"mode"`
}

// 润色模式，作为指标标签
const (
	modePassthrough = "passthrough"
	modeProvider    = "provider"
	modeOffline     = "offline"
)

// Engine 润色引擎
//
// 每次调用都追加一条不可变审计记录并把最终内容写回目标条目。
// 提供商失败静默回退到调用方内容，引擎只因持久化失败而报错。
type Engine struct {
	cfg      *config.LLMConfig
	refiner  Refiner
	sections ContentStore
	slides   ContentStore
	records  repository.RefinementRepository
}

// NewEngine 创建润色引擎
func NewEngine(cfg *config.LLMConfig, refiner Refiner, sections, slides ContentStore, records repository.RefinementRepository) *Engine {
	return &Engine{
		cfg:      cfg,
		refiner:  refiner,
		sections: sections,
		slides:   slides,
		records:  records,
	}
}

// Refine 执行一次润色
func (e *Engine) Refine(ctx context.Context, in Input) (*Result, error) {
	slide := in.Kind == generation.KindSlide
	final := in.Content
	mode := modePassthrough

	if in.Prompt != nil && strings.TrimSpace(*in.Prompt) != "" {
		instruction := *in.Prompt
		if e.cfg.Offline {
			final = fallback.Rewrite(in.Content, instruction, slide)
			mode = modeOffline
		} else {
			refined, err := e.refiner.TryGenerate(ctx, buildRefinePrompt(in.Content, instruction, in.Kind), "")
			if err != nil {
				// 提供商失败不阻塞保存，退回调用方内容
				logger.Warn(ctx, "润色调用失败，保存原始内容", "target_id", in.TargetID, "error", err.Error())
			} else {
				final = refined
				mode = modeProvider
			}
		}
	}

	record := e.newRecord(in, final)
	if err := e.records.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to append refinement record: %w", err)
	}

	store := e.sections
	if slide {
		store = e.slides
	}
	if err := store.UpdateContentOnly(ctx, in.TargetID, final); err != nil {
		return nil, fmt.Errorf("failed to save refined content: %w", err)
	}

	metrics.RefinementTotal.WithLabelValues(string(in.Kind), mode).Inc()
	logger.Info(ctx, "润色完成", "target_id", in.TargetID, "kind", string(in.Kind), "mode", mode)

	return &Result{
		RecordID: record.ID,
		Content:  final,
		Mode:     mode,
	}, nil
}

func (e *Engine) newRecord(in Input, content string) *entity.Refinement {
	var record *entity.Refinement
	if in.Kind == generation.KindSlide {
		record = entity.NewSlideRefinement(in.TargetID, in.Prompt, content)
	} else {
		record = entity.NewSectionRefinement(in.TargetID, in.Prompt, content)
	}
	return record.WithFeedback(in.Feedback, in.Comments)
}

// buildRefinePrompt 构造润色提示词
func buildRefinePrompt(content, instruction string, kind generation.ContentKind) string {
	return fmt.Sprintf(`Refine the following %s content based on the user's request.

Original Content:
%s

User's Refinement Request:
%s

Please provide the refined content that addresses the user's request while maintaining the overall quality and style of the original content.`, string(kind), content, instruction)
}
