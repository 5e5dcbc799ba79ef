// Package entity 定义领域实体
package entity

import (
	"time"
)

// RefinementFeedback 润色反馈
type RefinementFeedback string

const (
	RefinementFeedbackLike    RefinementFeedback = "like"
	RefinementFeedbackDislike RefinementFeedback = "dislike"
)

// Refinement 润色审计记录
//
// 只追加，创建后不可修改或删除。SectionID 与 SlideID 恰好一个非空。
type Refinement struct {
	ID        string              `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SectionID *string             `json:"section_id,omitempty" gorm:"type:uuid;index"`
	SlideID   *string             `json:"slide_id,omitempty" gorm:"type:uuid;index"`
	Prompt    *string             `json:"prompt,omitempty" gorm:"type:text"`
	Content   string              `json:"content" gorm:"type:text;not null"`
	Feedback  *RefinementFeedback `json:"feedback,omitempty" gorm:"type:varchar(20)"`
	Comments  *string             `json:"comments,omitempty" gorm:"type:text"`
	CreatedAt time.Time           `json:"created_at" gorm:"autoCreateTime"`
}

// TableName 指定表名
func (Refinement) TableName() string {
	return "refinements"
}

// NewSectionRefinement 创建章节润色记录
func NewSectionRefinement(sectionID string, prompt *string, content string) *Refinement {
	return &Refinement{
		SectionID: &sectionID,
		Prompt:    prompt,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// NewSlideRefinement 创建幻灯片润色记录
func NewSlideRefinement(slideID string, prompt *string, content string) *Refinement {
	return &Refinement{
		SlideID:   &slideID,
		Prompt:    prompt,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// WithFeedback 附加用户反馈
func (r *Refinement) WithFeedback(feedback *RefinementFeedback, comments *string) *Refinement {
	r.Feedback = feedback
	r.Comments = comments
	return r
}
