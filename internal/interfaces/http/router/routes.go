// Package router 提供 HTTP 路由配置
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(v1 *gin.RouterGroup, h RouterHandlers) {
	// 认证管理
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", h.Auth.Me)
	}

	// 项目管理
	projects := v1.Group("/projects")
	{
		projects.GET("", h.Project.ListProjects)
		projects.POST("", h.Project.CreateProject)
		projects.GET("/:pid", h.Project.GetProject)
		projects.PUT("/:pid", h.Project.UpdateProject)
		projects.DELETE("/:pid", h.Project.DeleteProject)

		// 项目大纲配置
		projects.PUT("/:pid/config", h.Outline.PutConfig)
		projects.GET("/:pid/config", h.Outline.GetConfig)
		projects.GET("/:pid/outline", h.Outline.ListItems)

		// 内容生成
		projects.POST("/:pid/generate", h.Generation.Generate)

		// 修订快照
		projects.POST("/:pid/revisions", h.Revision.CreateRevision)
		projects.GET("/:pid/revisions", h.Revision.ListRevisions)
		projects.GET("/:pid/revisions/diff", h.Revision.DiffRevisions)
		projects.POST("/:pid/revisions/:number/restore", h.Revision.RestoreRevision)

		// 导出
		projects.POST("/:pid/export", h.Export.ExportProject)
	}

	// 章节管理
	sections := v1.Group("/sections")
	{
		sections.GET("/:id", h.Section.GetSection)
		sections.PUT("/:id", h.Section.UpdateSection)
	}

	// 幻灯片管理
	slides := v1.Group("/slides")
	{
		slides.GET("/:id", h.Slide.GetSlide)
		slides.PUT("/:id", h.Slide.UpdateSlide)
	}

	// 内容润色
	refinements := v1.Group("/refinements")
	{
		refinements.POST("/sections/:id", h.Refinement.RefineSection)
		refinements.GET("/sections/:id", h.Refinement.ListSectionRefinements)
		refinements.POST("/slides/:id", h.Refinement.RefineSlide)
		refinements.GET("/slides/:id", h.Refinement.ListSlideRefinements)
	}

	// 导出文件下载
	exports := v1.Group("/exports")
	{
		exports.GET("/:name", h.Export.DownloadExport)
	}
}
