// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"docgen-ai-api/internal/application/generation"
	"docgen-ai-api/internal/domain/repository"
	"docgen-ai-api/internal/interfaces/http/dto"
	"docgen-ai-api/pkg/logger"
)

// GenerationHandler 内容生成处理器
type GenerationHandler struct {
	orchestrator *generation.Orchestrator
	projectRepo  repository.ProjectRepository
}

// NewGenerationHandler 创建内容生成处理器
func NewGenerationHandler(orchestrator *generation.Orchestrator, projectRepo repository.ProjectRepository) *GenerationHandler {
	return &GenerationHandler{
		orchestrator: orchestrator,
		projectRepo:  projectRepo,
	}
}

// Generate 生成项目内容
// @Summary 生成项目内容
// @Description 按大纲顺序生成选中条目的内容，前序标题作为后续生成的上下文
// @Tags Generation
// @Accept json
// @Produce json
// @Param pid path string true "项目 ID"
// @Param body body dto.GenerateRequest true "生成选择"
// @Success 200 {object} dto.Response[dto.GenerateResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/generate [post]
func (h *GenerationHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	project, ok := loadOwnedProject(c, h.projectRepo, dto.BindProjectID(c))
	if !ok {
		return
	}
	if !project.IsEditable() {
		dto.Conflict(c, "project is archived")
		return
	}

	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	kind := generation.KindSlide
	ids := req.SlideIDs
	if project.IsWord() {
		kind = generation.KindSection
		ids = req.SectionIDs
	}

	result, err := h.orchestrator.GenerateSequence(ctx, project.ID, kind, generation.Selection{
		All: req.GenerateAll,
		IDs: ids,
	})
	if err != nil {
		if respondAppError(c, err) {
			return
		}
		logger.Error(ctx, "failed to generate content", err, "project_id", project.ID)
		dto.InternalError(c, "failed to generate content")
		return
	}

	dto.Success(c, &dto.GenerateResponse{
		GeneratedCount: result.Generated,
		TotalRequested: result.Requested,
	})
}
