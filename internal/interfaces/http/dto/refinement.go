// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"time"

	"docgen-ai-api/internal/domain/entity"
)

// RefineRequest 内容润色请求
//
// Prompt 为空时直接保存 Content，不经过模型。
type RefineRequest struct {
	Content  string  `json:"content" binding:"required"`
	Prompt   *string `json:"prompt,omitempty" binding:"omitempty,max=5000"`
	Feedback *string `json:"feedback,omitempty" binding:"omitempty,oneof=like dislike"`
	Comments *string `json:"comments,omitempty" binding:"omitempty,max=5000"`
}

// RefineResponse 润色响应
type RefineResponse struct {
	RecordID string `json:"record_id"`
	Content  string `json:"content"`
	Mode     string `json:"mode"`
}

// RefinementRecordResponse 润色审计记录响应
type RefinementRecordResponse struct {
	ID        string    `json:"id"`
	SectionID *string   `json:"section_id,omitempty"`
	SlideID   *string   `json:"slide_id,omitempty"`
	Prompt    *string   `json:"prompt,omitempty"`
	Content   string    `json:"content"`
	Feedback  *string   `json:"feedback,omitempty"`
	Comments  *string   `json:"comments,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RefinementListResponse 润色记录列表响应
type RefinementListResponse struct {
	Records []*RefinementRecordResponse `json:"records"`
}

// ToRefinementRecordResponse 将领域实体转换为 DTO
func ToRefinementRecordResponse(r *entity.Refinement) *RefinementRecordResponse {
	if r == nil {
		return nil
	}
	resp := &RefinementRecordResponse{
		ID:        r.ID,
		SectionID: r.SectionID,
		SlideID:   r.SlideID,
		Prompt:    r.Prompt,
		Content:   r.Content,
		Comments:  r.Comments,
		CreatedAt: r.CreatedAt,
	}
	if r.Feedback != nil {
		feedback := string(*r.Feedback)
		resp.Feedback = &feedback
	}
	return resp
}

// ToRefinementListResponse 批量转换润色记录
func ToRefinementListResponse(records []*entity.Refinement) *RefinementListResponse {
	out := make([]*RefinementRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, ToRefinementRecordResponse(r))
	}
	return &RefinementListResponse{Records: out}
}
