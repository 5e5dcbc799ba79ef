// Package handler 提供 HTTP 请求处理器
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"docgen-ai-api/internal/application/revision"
	"docgen-ai-api/internal/domain/repository"
	"docgen-ai-api/internal/interfaces/http/dto"
	"docgen-ai-api/pkg/logger"
)

// RevisionHandler 修订快照处理器
type RevisionHandler struct {
	revisionSvc *revision.Service
	projectRepo repository.ProjectRepository
}

// NewRevisionHandler 创建修订快照处理器
func NewRevisionHandler(revisionSvc *revision.Service, projectRepo repository.ProjectRepository) *RevisionHandler {
	return &RevisionHandler{
		revisionSvc: revisionSvc,
		projectRepo: projectRepo,
	}
}

// CreateRevision 创建修订快照
// @Summary 创建修订快照
// @Description 记录项目当前大纲内容，修订号在项目内单调递增
// @Tags Revisions
// @Produce json
// @Param pid path string true "项目 ID"
// @Success 201 {object} dto.Response[dto.RevisionResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/revisions [post]
func (h *RevisionHandler) CreateRevision(c *gin.Context) {
	ctx := c.Request.Context()

	project, ok := loadOwnedProject(c, h.projectRepo, dto.BindProjectID(c))
	if !ok {
		return
	}

	rev, err := h.revisionSvc.Snapshot(ctx, project, currentUserID(c))
	if err != nil {
		if respondAppError(c, err) {
			return
		}
		logger.Error(ctx, "failed to create revision", err, "project_id", project.ID)
		dto.InternalError(c, "failed to create revision")
		return
	}

	dto.Created(c, dto.ToRevisionResponse(rev, true))
}

// ListRevisions 获取修订列表
// @Summary 获取项目修订列表
// @Description 按修订号倒序分页返回，列表项不携带快照正文
// @Tags Revisions
// @Produce json
// @Param pid path string true "项目 ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页条数" default(20)
// @Success 200 {object} dto.Response[dto.RevisionListResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/revisions [get]
func (h *RevisionHandler) ListRevisions(c *gin.Context) {
	ctx := c.Request.Context()

	project, ok := loadOwnedProject(c, h.projectRepo, dto.BindProjectID(c))
	if !ok {
		return
	}

	pageReq := dto.BindPage(c)

	result, err := h.revisionSvc.List(ctx, project.ID, repository.NewPagination(pageReq.Page, pageReq.PageSize))
	if err != nil {
		logger.Error(ctx, "failed to list revisions", err, "project_id", project.ID)
		dto.InternalError(c, "failed to list revisions")
		return
	}

	resp := dto.ToRevisionListResponse(result.Items)
	meta := dto.NewPageMeta(pageReq.Page, pageReq.PageSize, int(result.Total))
	dto.SuccessWithPage(c, resp, meta)
}

// DiffRevisions 计算修订差异
// @Summary 计算两个修订之间的差异
// @Description 返回 RFC 7386 merge patch，from 应用 patch 后得到 to
// @Tags Revisions
// @Produce json
// @Param pid path string true "项目 ID"
// @Param from query int true "起始修订号"
// @Param to query int true "目标修订号"
// @Success 200 {object} dto.Response[dto.DiffResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/revisions/diff [get]
func (h *RevisionHandler) DiffRevisions(c *gin.Context) {
	ctx := c.Request.Context()

	project, ok := loadOwnedProject(c, h.projectRepo, dto.BindProjectID(c))
	if !ok {
		return
	}

	from, err := strconv.Atoi(c.Query("from"))
	if err != nil || from < 1 {
		dto.BadRequest(c, "invalid from revision number")
		return
	}
	to, err := strconv.Atoi(c.Query("to"))
	if err != nil || to < 1 {
		dto.BadRequest(c, "invalid to revision number")
		return
	}

	patch, err := h.revisionSvc.Diff(ctx, project.ID, from, to)
	if err != nil {
		if respondAppError(c, err) {
			return
		}
		logger.Error(ctx, "failed to diff revisions", err, "project_id", project.ID)
		dto.InternalError(c, "failed to diff revisions")
		return
	}

	dto.Success(c, &dto.DiffResponse{
		From:  from,
		To:    to,
		Patch: patch,
	})
}

// RestoreRevision 恢复修订快照
// @Summary 恢复修订快照
// @Description 将快照内容写回大纲，快照之后被删除的条目跳过
// @Tags Revisions
// @Produce json
// @Param pid path string true "项目 ID"
// @Param number path int true "修订号"
// @Success 200 {object} dto.Response[dto.RestoreResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/revisions/{number}/restore [post]
func (h *RevisionHandler) RestoreRevision(c *gin.Context) {
	ctx := c.Request.Context()

	project, ok := loadOwnedProject(c, h.projectRepo, dto.BindProjectID(c))
	if !ok {
		return
	}
	if !project.IsEditable() {
		dto.Conflict(c, "project is archived")
		return
	}

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		dto.BadRequest(c, "invalid revision number")
		return
	}

	restored, err := h.revisionSvc.Restore(ctx, project, number)
	if err != nil {
		if respondAppError(c, err) {
			return
		}
		logger.Error(ctx, "failed to restore revision", err, "project_id", project.ID, "revision", number)
		dto.InternalError(c, "failed to restore revision")
		return
	}

	dto.Success(c, &dto.RestoreResponse{
		RevisionNumber: number,
		RestoredCount:  restored,
	})
}
