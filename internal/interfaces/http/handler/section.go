// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"docgen-ai-api/internal/domain/entity"
	"docgen-ai-api/internal/domain/repository"
	"docgen-ai-api/internal/interfaces/http/dto"
	"docgen-ai-api/pkg/logger"
)

// SectionHandler 章节处理器
type SectionHandler struct {
	sectionRepo repository.SectionRepository
	projectRepo repository.ProjectRepository
}

// NewSectionHandler 创建章节处理器
func NewSectionHandler(sectionRepo repository.SectionRepository, projectRepo repository.ProjectRepository) *SectionHandler {
	return &SectionHandler{
		sectionRepo: sectionRepo,
		projectRepo: projectRepo,
	}
}

// loadOwnedSection 加载章节并校验其所属项目的归属
func (h *SectionHandler) loadOwnedSection(c *gin.Context) (*entity.Section, bool) {
	ctx := c.Request.Context()

	section, err := h.sectionRepo.GetByID(ctx, dto.BindID(c))
	if err != nil {
		logger.Error(ctx, "failed to get section", err)
		dto.InternalError(c, "failed to get section")
		return nil, false
	}
	if section == nil {
		dto.NotFound(c, "section not found")
		return nil, false
	}

	if _, ok := loadOwnedProject(c, h.projectRepo, section.ProjectID); !ok {
		return nil, false
	}
	return section, true
}

// GetSection 获取章节详情
// @Summary 获取章节详情
// @Tags Sections
// @Produce json
// @Param id path string true "章节 ID"
// @Success 200 {object} dto.Response[dto.OutlineItemResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/sections/{id} [get]
func (h *SectionHandler) GetSection(c *gin.Context) {
	section, ok := h.loadOwnedSection(c)
	if !ok {
		return
	}
	dto.Success(c, dto.ToSectionResponse(section))
}

// UpdateSection 手工编辑章节内容
// @Summary 手工编辑章节内容
// @Description 直接写入内容，不改动生成标记
// @Tags Sections
// @Accept json
// @Produce json
// @Param id path string true "章节 ID"
// @Param body body dto.UpdateItemRequest true "内容"
// @Success 200 {object} dto.Response[dto.OutlineItemResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/sections/{id} [put]
func (h *SectionHandler) UpdateSection(c *gin.Context) {
	ctx := c.Request.Context()

	section, ok := h.loadOwnedSection(c)
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	if err := h.sectionRepo.UpdateContentOnly(ctx, section.ID, req.Content); err != nil {
		logger.Error(ctx, "failed to update section content", err, "section_id", section.ID)
		dto.InternalError(c, "failed to update section content")
		return
	}

	section.ApplyRefinement(req.Content)
	dto.Success(c, dto.ToSectionResponse(section))
}
