// Package entity 定义领域实体
package entity

import (
	"time"
)

// Section Word 文档章节实体
//
// Content 与 IsGenerated 各自独立：AI 生成同时写入两者，
// 润色只写 Content，手工编辑过但从未生成的章节 IsGenerated 保持 false。
type Section struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID   string    `json:"project_id" gorm:"type:uuid;index;not null"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Content     *string   `json:"content,omitempty" gorm:"type:text"`
	OrderIndex  int       `json:"order_index" gorm:"not null;uniqueIndex:idx_sections_project_order,composite:project_id"`
	IsGenerated bool      `json:"is_generated" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Section) TableName() string {
	return "sections"
}

// NewSection 创建新章节
func NewSection(projectID, title string, orderIndex int) *Section {
	now := time.Now()
	return &Section{
		ProjectID:  projectID,
		Title:      title,
		OrderIndex: orderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// SetGeneratedContent 写入 AI 生成的内容并置生成标记
func (s *Section) SetGeneratedContent(content string) {
	s.Content = &content
	s.IsGenerated = true
	s.UpdatedAt = time.Now()
}

// ApplyRefinement 写入润色结果，不改动生成标记
func (s *Section) ApplyRefinement(content string) {
	s.Content = &content
	s.UpdatedAt = time.Now()
}

// ContentText 返回内容文本，未生成时为空串
func (s *Section) ContentText() string {
	if s.Content == nil {
		return ""
	}
	return *s.Content
}
