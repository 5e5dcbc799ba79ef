// Package entity 定义领域实体
package entity

import (
	"time"
)

// Slide 演示文稿幻灯片实体
type Slide struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID   string    `json:"project_id" gorm:"type:uuid;index;not null"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Content     *string   `json:"content,omitempty" gorm:"type:text"`
	OrderIndex  int       `json:"order_index" gorm:"not null;uniqueIndex:idx_slides_project_order,composite:project_id"`
	IsGenerated bool      `json:"is_generated" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Slide) TableName() string {
	return "slides"
}

// NewSlide 创建新幻灯片
func NewSlide(projectID, title string, orderIndex int) *Slide {
	now := time.Now()
	return &Slide{
		ProjectID:  projectID,
		Title:      title,
		OrderIndex: orderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// SetGeneratedContent 写入 AI 生成的内容并置生成标记
func (s *Slide) SetGeneratedContent(content string) {
	s.Content = &content
	s.IsGenerated = true
	s.UpdatedAt = time.Now()
}

// ApplyRefinement 写入润色结果，不改动生成标记
func (s *Slide) ApplyRefinement(content string) {
	s.Content = &content
	s.UpdatedAt = time.Now()
}

// ContentText 返回内容文本，未生成时为空串
func (s *Slide) ContentText() string {
	if s.Content == nil {
		return ""
	}
	return *s.Content
}
