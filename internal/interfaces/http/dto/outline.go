// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"time"

	"docgen-ai-api/internal/domain/entity"
)

// ConfigRequest 提交项目大纲配置请求
//
// 提交会整体覆盖现有配置并按标题顺序重建大纲。
type ConfigRequest struct {
	Titles  []string `json:"titles" binding:"required,min=1,dive,required,max=255"`
	Context string   `json:"context" binding:"max=10000"`
}

// ConfigResponse 项目配置响应
type ConfigResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Titles    []string  `json:"titles"`
	Context   string    `json:"context,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateItemRequest 手工编辑大纲条目内容请求
type UpdateItemRequest struct {
	Content string `json:"content" binding:"required"`
}

// OutlineItemResponse 大纲条目响应，章节与幻灯片共用
type OutlineItemResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content,omitempty"`
	OrderIndex  int       `json:"order_index"`
	IsGenerated bool      `json:"is_generated"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OutlineListResponse 大纲条目列表响应
type OutlineListResponse struct {
	Items []*OutlineItemResponse `json:"items"`
}

// ToConfigResponse 将领域实体转换为 DTO
func ToConfigResponse(c *entity.ProjectConfig) *ConfigResponse {
	if c == nil {
		return nil
	}
	return &ConfigResponse{
		ID:        c.ID,
		ProjectID: c.ProjectID,
		Titles:    c.Titles,
		Context:   c.Context,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToSectionResponse 章节转换为大纲条目 DTO
func ToSectionResponse(s *entity.Section) *OutlineItemResponse {
	if s == nil {
		return nil
	}
	return &OutlineItemResponse{
		ID:          s.ID,
		ProjectID:   s.ProjectID,
		Title:       s.Title,
		Content:     s.ContentText(),
		OrderIndex:  s.OrderIndex,
		IsGenerated: s.IsGenerated,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToSlideResponse 幻灯片转换为大纲条目 DTO
func ToSlideResponse(s *entity.Slide) *OutlineItemResponse {
	if s == nil {
		return nil
	}
	return &OutlineItemResponse{
		ID:          s.ID,
		ProjectID:   s.ProjectID,
		Title:       s.Title,
		Content:     s.ContentText(),
		OrderIndex:  s.OrderIndex,
		IsGenerated: s.IsGenerated,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToSectionListResponse 批量转换章节列表
func ToSectionListResponse(sections []*entity.Section) *OutlineListResponse {
	items := make([]*OutlineItemResponse, 0, len(sections))
	for _, s := range sections {
		items = append(items, ToSectionResponse(s))
	}
	return &OutlineListResponse{Items: items}
}

// ToSlideListResponse 批量转换幻灯片列表
func ToSlideListResponse(slides []*entity.Slide) *OutlineListResponse {
	items := make([]*OutlineItemResponse, 0, len(slides))
	for _, s := range slides {
		items = append(items, ToSlideResponse(s))
	}
	return &OutlineListResponse{Items: items}
}
