// Package handler 提供 HTTP 请求处理器
package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"docgen-ai-api/internal/application/export"
	"docgen-ai-api/internal/domain/repository"
	"docgen-ai-api/internal/interfaces/http/dto"
	"docgen-ai-api/pkg/logger"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	exportSvc   *export.Service
	projectRepo repository.ProjectRepository
}

// NewExportHandler 创建导出处理器
func NewExportHandler(exportSvc *export.Service, projectRepo repository.ProjectRepository) *ExportHandler {
	return &ExportHandler{
		exportSvc:   exportSvc,
		projectRepo: projectRepo,
	}
}

// ExportProject 导出项目内容
// @Summary 导出项目内容
// @Description Word 项目导出 markdown，PowerPoint 项目导出分隔的幻灯片文本
// @Tags Export
// @Produce json
// @Param pid path string true "项目 ID"
// @Success 201 {object} dto.Response[dto.ExportResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/export [post]
func (h *ExportHandler) ExportProject(c *gin.Context) {
	ctx := c.Request.Context()

	project, ok := loadOwnedProject(c, h.projectRepo, dto.BindProjectID(c))
	if !ok {
		return
	}

	name, err := h.exportSvc.Export(ctx, project)
	if err != nil {
		if respondAppError(c, err) {
			return
		}
		logger.Error(ctx, "failed to export project", err, "project_id", project.ID)
		dto.InternalError(c, "failed to export project")
		return
	}

	dto.Created(c, &dto.ExportResponse{
		FileName: name,
		URL:      "/v1/exports/" + name,
	})
}

// DownloadExport 下载导出文件
// @Summary 下载导出文件
// @Tags Export
// @Produce plain
// @Param name path string true "文件名"
// @Success 200
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/exports/{name} [get]
func (h *ExportHandler) DownloadExport(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	f, err := h.exportSvc.Open(ctx, name)
	if err != nil {
		if respondAppError(c, err) {
			return
		}
		logger.Error(ctx, "failed to open export file", err, "file", name)
		dto.InternalError(c, "failed to open export file")
		return
	}
	defer f.Close()

	contentType := "text/plain; charset=utf-8"
	if strings.HasSuffix(name, ".md") {
		contentType = "text/markdown; charset=utf-8"
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, f); err != nil {
		logger.Warn(ctx, "failed to stream export file", "file", name, "error", err.Error())
	}
}
