// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"docgen-ai-api/internal/domain/entity"
	"docgen-ai-api/internal/domain/repository"
	"docgen-ai-api/internal/interfaces/http/dto"
	"docgen-ai-api/pkg/logger"
)

// SlideHandler 幻灯片处理器
type SlideHandler struct {
	slideRepo   repository.SlideRepository
	projectRepo repository.ProjectRepository
}

// NewSlideHandler 创建幻灯片处理器
func NewSlideHandler(slideRepo repository.SlideRepository, projectRepo repository.ProjectRepository) *SlideHandler {
	return &SlideHandler{
		slideRepo:   slideRepo,
		projectRepo: projectRepo,
	}
}

// loadOwnedSlide 加载幻灯片并校验其所属项目的归属
func (h *SlideHandler) loadOwnedSlide(c *gin.Context) (*entity.Slide, bool) {
	ctx := c.Request.Context()

	slide, err := h.slideRepo.GetByID(ctx, dto.BindID(c))
	if err != nil {
		logger.Error(ctx, "failed to get slide", err)
		dto.InternalError(c, "failed to get slide")
		return nil, false
	}
	if slide == nil {
		dto.NotFound(c, "slide not found")
		return nil, false
	}

	if _, ok := loadOwnedProject(c, h.projectRepo, slide.ProjectID); !ok {
		return nil, false
	}
	return slide, true
}

// GetSlide 获取幻灯片详情
// @Summary 获取幻灯片详情
// @Tags Slides
// @Produce json
// @Param id path string true "幻灯片 ID"
// @Success 200 {object} dto.Response[dto.OutlineItemResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/slides/{id} [get]
func (h *SlideHandler) GetSlide(c *gin.Context) {
	slide, ok := h.loadOwnedSlide(c)
	if !ok {
		return
	}
	dto.Success(c, dto.ToSlideResponse(slide))
}

// UpdateSlide 手工编辑幻灯片内容
// @Summary 手工编辑幻灯片内容
// @Description 直接写入内容，不改动生成标记
// @Tags Slides
// @Accept json
// @Produce json
// @Param id path string true "幻灯片 ID"
// @Param body body dto.UpdateItemRequest true "内容"
// @Success 200 {object} dto.Response[dto.OutlineItemResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/slides/{id} [put]
func (h *SlideHandler) UpdateSlide(c *gin.Context) {
	ctx := c.Request.Context()

	slide, ok := h.loadOwnedSlide(c)
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	if err := h.slideRepo.UpdateContentOnly(ctx, slide.ID, req.Content); err != nil {
		logger.Error(ctx, "failed to update slide content", err, "slide_id", slide.ID)
		dto.InternalError(c, "failed to update slide content")
		return
	}

	slide.ApplyRefinement(req.Content)
	dto.Success(c, dto.ToSlideResponse(slide))
}
