package handler

import (
	"github.com/gin-gonic/gin"

	"docgen-ai-api/internal/domain/entity"
	"docgen-ai-api/internal/domain/repository"
	"docgen-ai-api/internal/interfaces/http/dto"
	"docgen-ai-api/pkg/errors"
	"docgen-ai-api/pkg/logger"
)

// currentUserID 获取当前认证用户 ID
func currentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

// loadOwnedProject 加载项目并校验归属
// 失败时已写入错误响应，调用方直接返回即可。
func loadOwnedProject(c *gin.Context, projects repository.ProjectRepository, projectID string) (*entity.Project, bool) {
	ctx := c.Request.Context()

	project, err := projects.GetByID(ctx, projectID)
	if err != nil {
		logger.Error(ctx, "failed to get project", err, "project_id", projectID)
		dto.InternalError(c, "failed to get project")
		return nil, false
	}
	if project == nil {
		dto.NotFound(c, "project not found")
		return nil, false
	}
	if !project.OwnedBy(currentUserID(c)) {
		dto.Forbidden(c, "project belongs to another user")
		return nil, false
	}
	return project, true
}

// respondAppError 按 AppError 的 HTTP 状态码写入错误响应
// 非 AppError 时返回 false，由调用方按 500 处理。
func respondAppError(c *gin.Context, err error) bool {
	if !errors.IsAppError(err) {
		return false
	}
	appErr := errors.AsAppError(err)
	c.JSON(appErr.HTTPStatus, dto.ErrorResponse{
		Code:    appErr.HTTPStatus,
		Message: appErr.Message,
		TraceID: c.GetString("trace_id"),
	})
	return true
}
