// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"docgen-ai-api/internal/application/outline"
	"docgen-ai-api/internal/domain/repository"
	"docgen-ai-api/internal/interfaces/http/dto"
	"docgen-ai-api/pkg/logger"
)

// OutlineHandler 大纲配置处理器
type OutlineHandler struct {
	outlineSvc  *outline.Service
	projectRepo repository.ProjectRepository
	sectionRepo repository.SectionRepository
	slideRepo   repository.SlideRepository
}

// NewOutlineHandler 创建大纲配置处理器
func NewOutlineHandler(outlineSvc *outline.Service, projectRepo repository.ProjectRepository, sectionRepo repository.SectionRepository, slideRepo repository.SlideRepository) *OutlineHandler {
	return &OutlineHandler{
		outlineSvc:  outlineSvc,
		projectRepo: projectRepo,
		sectionRepo: sectionRepo,
		slideRepo:   slideRepo,
	}
}

// PutConfig 提交项目配置
// @Summary 提交项目大纲配置
// @Description 覆盖项目配置并按标题顺序重建大纲，旧条目连同内容一并删除
// @Tags Outline
// @Accept json
// @Produce json
// @Param pid path string true "项目 ID"
// @Param body body dto.ConfigRequest true "大纲配置"
// @Success 200 {object} dto.Response[dto.ConfigResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/config [put]
func (h *OutlineHandler) PutConfig(c *gin.Context) {
	ctx := c.Request.Context()

	project, ok := loadOwnedProject(c, h.projectRepo, dto.BindProjectID(c))
	if !ok {
		return
	}
	if !project.IsEditable() {
		dto.Conflict(c, "project is archived")
		return
	}

	var req dto.ConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	config, err := h.outlineSvc.ApplyConfig(ctx, project, req.Titles, req.Context)
	if err != nil {
		if respondAppError(c, err) {
			return
		}
		logger.Error(ctx, "failed to apply project config", err, "project_id", project.ID)
		dto.InternalError(c, "failed to apply project config")
		return
	}

	dto.Success(c, dto.ToConfigResponse(config))
}

// GetConfig 获取项目配置
// @Summary 获取项目大纲配置
// @Tags Outline
// @Produce json
// @Param pid path string true "项目 ID"
// @Success 200 {object} dto.Response[dto.ConfigResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/config [get]
func (h *OutlineHandler) GetConfig(c *gin.Context) {
	ctx := c.Request.Context()

	project, ok := loadOwnedProject(c, h.projectRepo, dto.BindProjectID(c))
	if !ok {
		return
	}

	config, err := h.outlineSvc.GetConfig(ctx, project.ID)
	if err != nil {
		logger.Error(ctx, "failed to get project config", err, "project_id", project.ID)
		dto.InternalError(c, "failed to get project config")
		return
	}
	if config == nil {
		dto.NotFound(c, "project config not found")
		return
	}

	dto.Success(c, dto.ToConfigResponse(config))
}

// ListItems 获取项目大纲条目
// @Summary 获取项目大纲条目列表
// @Description 按 order_index 升序返回项目的全部章节或幻灯片
// @Tags Outline
// @Produce json
// @Param pid path string true "项目 ID"
// @Success 200 {object} dto.Response[dto.OutlineListResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/outline [get]
func (h *OutlineHandler) ListItems(c *gin.Context) {
	ctx := c.Request.Context()

	project, ok := loadOwnedProject(c, h.projectRepo, dto.BindProjectID(c))
	if !ok {
		return
	}

	if project.IsWord() {
		sections, err := h.sectionRepo.ListByProject(ctx, project.ID)
		if err != nil {
			logger.Error(ctx, "failed to list sections", err, "project_id", project.ID)
			dto.InternalError(c, "failed to list outline items")
			return
		}
		dto.Success(c, dto.ToSectionListResponse(sections))
		return
	}

	slides, err := h.slideRepo.ListByProject(ctx, project.ID)
	if err != nil {
		logger.Error(ctx, "failed to list slides", err, "project_id", project.ID)
		dto.InternalError(c, "failed to list outline items")
		return
	}
	dto.Success(c, dto.ToSlideListResponse(slides))
}
