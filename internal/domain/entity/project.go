// Package entity 定义领域实体
package entity

import (
	"time"
)

// ProjectKind 项目类型
type ProjectKind string

const (
	ProjectKindWord       ProjectKind = "word"
	ProjectKindPowerPoint ProjectKind = "powerpoint"
)

// ProjectStatus 项目状态
type ProjectStatus string

const (
	ProjectStatusDraft     ProjectStatus = "draft"
	ProjectStatusWriting   ProjectStatus = "writing"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// Project 文档项目实体
type Project struct {
	ID          string        `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerID     string        `json:"owner_id" gorm:"type:uuid;index;not null"`
	Name        string        `json:"name" gorm:"type:varchar(255);not null"`
	Description string        `json:"description,omitempty" gorm:"type:text"`
	Kind        ProjectKind   `json:"kind" gorm:"type:varchar(20);not null"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(50);default:'draft'"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Project) TableName() string {
	return "projects"
}

// NewProject 创建新项目
func NewProject(ownerID, name string, kind ProjectKind) *Project {
	now := time.Now()
	return &Project{
		OwnerID:   ownerID,
		Name:      name,
		Kind:      kind,
		Status:    ProjectStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsWord 是否为 Word 文档项目
func (p *Project) IsWord() bool {
	return p.Kind == ProjectKindWord
}

// IsEditable 检查项目是否可编辑
func (p *Project) IsEditable() bool {
	return p.Status != ProjectStatusArchived
}

// OwnedBy 检查项目归属
func (p *Project) OwnedBy(userID string) bool {
	return p.OwnerID == userID
}
