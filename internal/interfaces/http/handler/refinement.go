// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"docgen-ai-api/internal/application/generation"
	"docgen-ai-api/internal/application/refinement"
	"docgen-ai-api/internal/domain/entity"
	"docgen-ai-api/internal/domain/repository"
	"docgen-ai-api/internal/interfaces/http/dto"
	"docgen-ai-api/pkg/logger"
)

// RefinementHandler 内容润色处理器
type RefinementHandler struct {
	engine         *refinement.Engine
	refinementRepo repository.RefinementRepository
	sectionRepo    repository.SectionRepository
	slideRepo      repository.SlideRepository
	projectRepo    repository.ProjectRepository
}

// NewRefinementHandler 创建内容润色处理器
func NewRefinementHandler(engine *refinement.Engine, refinementRepo repository.RefinementRepository, sectionRepo repository.SectionRepository, slideRepo repository.SlideRepository, projectRepo repository.ProjectRepository) *RefinementHandler {
	return &RefinementHandler{
		engine:         engine,
		refinementRepo: refinementRepo,
		sectionRepo:    sectionRepo,
		slideRepo:      slideRepo,
		projectRepo:    projectRepo,
	}
}

// RefineSection 润色章节内容
// @Summary 润色章节内容
// @Description 有提示词时经模型润色，否则直接保存；每次调用追加一条审计记录
// @Tags Refinements
// @Accept json
// @Produce json
// @Param id path string true "章节 ID"
// @Param body body dto.RefineRequest true "润色请求"
// @Success 200 {object} dto.Response[dto.RefineResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/refinements/sections/{id} [post]
func (h *RefinementHandler) RefineSection(c *gin.Context) {
	ctx := c.Request.Context()

	section, err := h.sectionRepo.GetByID(ctx, dto.BindID(c))
	if err != nil {
		logger.Error(ctx, "failed to get section", err)
		dto.InternalError(c, "failed to get section")
		return
	}
	if section == nil {
		dto.NotFound(c, "section not found")
		return
	}
	if _, ok := loadOwnedProject(c, h.projectRepo, section.ProjectID); !ok {
		return
	}

	h.refine(c, section.ID, generation.KindSection)
}

// RefineSlide 润色幻灯片内容
// @Summary 润色幻灯片内容
// @Description 有提示词时经模型润色，否则直接保存；每次调用追加一条审计记录
// @Tags Refinements
// @Accept json
// @Produce json
// @Param id path string true "幻灯片 ID"
// @Param body body dto.RefineRequest true "润色请求"
// @Success 200 {object} dto.Response[dto.RefineResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/refinements/slides/{id} [post]
func (h *RefinementHandler) RefineSlide(c *gin.Context) {
	ctx := c.Request.Context()

	slide, err := h.slideRepo.GetByID(ctx, dto.BindID(c))
	if err != nil {
		logger.Error(ctx, "failed to get slide", err)
		dto.InternalError(c, "failed to get slide")
		return
	}
	if slide == nil {
		dto.NotFound(c, "slide not found")
		return
	}
	if _, ok := loadOwnedProject(c, h.projectRepo, slide.ProjectID); !ok {
		return
	}

	h.refine(c, slide.ID, generation.KindSlide)
}

// refine 绑定请求并调用润色引擎
func (h *RefinementHandler) refine(c *gin.Context, targetID string, kind generation.ContentKind) {
	ctx := c.Request.Context()

	var req dto.RefineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	var feedback *entity.RefinementFeedback
	if req.Feedback != nil {
		f := entity.RefinementFeedback(*req.Feedback)
		feedback = &f
	}

	result, err := h.engine.Refine(ctx, refinement.Input{
		TargetID: targetID,
		Kind:     kind,
		Content:  req.Content,
		Prompt:   req.Prompt,
		Feedback: feedback,
		Comments: req.Comments,
	})
	if err != nil {
		if respondAppError(c, err) {
			return
		}
		logger.Error(ctx, "failed to refine content", err, "target_id", targetID)
		dto.InternalError(c, "failed to refine content")
		return
	}

	dto.Success(c, &dto.RefineResponse{
		RecordID: result.RecordID,
		Content:  result.Content,
		Mode:     result.Mode,
	})
}

// ListSectionRefinements 获取章节润色历史
// @Summary 获取章节润色历史
// @Tags Refinements
// @Produce json
// @Param id path string true "章节 ID"
// @Success 200 {object} dto.Response[dto.RefinementListResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/refinements/sections/{id} [get]
func (h *RefinementHandler) ListSectionRefinements(c *gin.Context) {
	ctx := c.Request.Context()

	section, err := h.sectionRepo.GetByID(ctx, dto.BindID(c))
	if err != nil {
		logger.Error(ctx, "failed to get section", err)
		dto.InternalError(c, "failed to get section")
		return
	}
	if section == nil {
		dto.NotFound(c, "section not found")
		return
	}
	if _, ok := loadOwnedProject(c, h.projectRepo, section.ProjectID); !ok {
		return
	}

	records, err := h.refinementRepo.ListBySection(ctx, section.ID)
	if err != nil {
		logger.Error(ctx, "failed to list refinements", err, "section_id", section.ID)
		dto.InternalError(c, "failed to list refinements")
		return
	}

	dto.Success(c, dto.ToRefinementListResponse(records))
}

// ListSlideRefinements 获取幻灯片润色历史
// @Summary 获取幻灯片润色历史
// @Tags Refinements
// @Produce json
// @Param id path string true "幻灯片 ID"
// @Success 200 {object} dto.Response[dto.RefinementListResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/refinements/slides/{id} [get]
func (h *RefinementHandler) ListSlideRefinements(c *gin.Context) {
	ctx := c.Request.Context()

	slide, err := h.slideRepo.GetByID(ctx, dto.BindID(c))
	if err != nil {
		logger.Error(ctx, "failed to get slide", err)
		dto.InternalError(c, "failed to get slide")
		return
	}
	if slide == nil {
		dto.NotFound(c, "slide not found")
		return
	}
	if _, ok := loadOwnedProject(c, h.projectRepo, slide.ProjectID); !ok {
		return
	}

	records, err := h.refinementRepo.ListBySlide(ctx, slide.ID)
	if err != nil {
		logger.Error(ctx, "failed to list refinements", err, "slide_id", slide.ID)
		dto.InternalError(c, "failed to list refinements")
		return
	}

	dto.Success(c, dto.ToRefinementListResponse(records))
}
