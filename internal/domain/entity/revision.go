// Package entity 定义领域实体
package entity

import (
	"time"
)

// RevisionItem 快照中的单个大纲条目
type RevisionItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content,omitempty"`
	OrderIndex  int    `json:"order_index"`
	IsGenerated bool   `json:"is_generated"`
}

// RevisionSnapshot 项目内容快照
type RevisionSnapshot struct {
	Kind    ProjectKind    `json:"kind"`
	Context string         `json:"context,omitempty"`
	Items   []RevisionItem `json:"items"`
}

// Revision 项目修订快照实体
//
// RevisionNumber 在项目内单调递增。
type Revision struct {
	ID             string            `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID      string            `json:"project_id" gorm:"type:uuid;index;not null"`
	RevisionNumber int               `json:"revision_number" gorm:"not null;uniqueIndex:idx_revisions_project_number,composite:project_id"`
	Snapshot       *RevisionSnapshot `json:"snapshot" gorm:"type:jsonb;serializer:json"`
	CreatedBy      string            `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt      time.Time         `json:"created_at" gorm:"autoCreateTime"`
}

// TableName 指定表名
func (Revision) TableName() string {
	return "revisions"
}

// NewRevision 创建修订快照
func NewRevision(projectID string, number int, snapshot *RevisionSnapshot, createdBy string) *Revision {
	return &Revision{
		ProjectID:      projectID,
		RevisionNumber: number,
		Snapshot:       snapshot,
		CreatedBy:      createdBy,
		CreatedAt:      time.Now(),
	}
}
