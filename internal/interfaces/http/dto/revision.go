// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"encoding/json"
	"time"

	"docgen-ai-api/internal/domain/entity"
)

// RevisionResponse 修订快照响应
type RevisionResponse struct {
	ID             string                   `json:"id"`
	ProjectID      string                   `json:"project_id"`
	RevisionNumber int                      `json:"revision_number"`
	Snapshot       *entity.RevisionSnapshot `json:"snapshot,omitempty"`
	CreatedBy      string                   `json:"created_by"`
	CreatedAt      time.Time                `json:"created_at"`
}

// RevisionListResponse 修订列表响应，列表项不携带快照正文
type RevisionListResponse struct {
	Revisions []*RevisionResponse `json:"revisions"`
}

// DiffResponse 修订差异响应，Patch 为 RFC 7386 merge patch
type DiffResponse struct {
	From  int             `json:"from"`
	To    int             `json:"to"`
	Patch json.RawMessage `json:"patch"`
}

// RestoreResponse 修订恢复响应
type RestoreResponse struct {
	RevisionNumber int `json:"revision_number"`
	RestoredCount  int `json:"restored_count"`
}

// ToRevisionResponse 将领域实体转换为 DTO
func ToRevisionResponse(r *entity.Revision, withSnapshot bool) *RevisionResponse {
	if r == nil {
		return nil
	}
	resp := &RevisionResponse{
		ID:             r.ID,
		ProjectID:      r.ProjectID,
		RevisionNumber: r.RevisionNumber,
		CreatedBy:      r.CreatedBy,
		CreatedAt:      r.CreatedAt,
	}
	if withSnapshot {
		resp.Snapshot = r.Snapshot
	}
	return resp
}

// ToRevisionListResponse 批量转换修订列表
func ToRevisionListResponse(revisions []*entity.Revision) *RevisionListResponse {
	out := make([]*RevisionResponse, 0, len(revisions))
	for _, r := range revisions {
		out = append(out, ToRevisionResponse(r, false))
	}
	return &RevisionListResponse{Revisions: out}
}
