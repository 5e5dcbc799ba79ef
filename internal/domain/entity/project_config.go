// Package entity 定义领域实体
package entity

import (
	"time"

	"github.com/lib/pq"
)

// ProjectConfig 项目大纲配置
//
// Titles 为有序的大纲标题列表，提交后按顺序创建章节或幻灯片；
// Context 为项目级自由文本背景，会传入每一次生成调用。
type ProjectConfig struct {
	ID        string         `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID string         `json:"project_id" gorm:"type:uuid;uniqueIndex;not null"`
	Titles    pq.StringArray `json:"titles" gorm:"type:text[]"`
	Context   string         `json:"context,omitempty" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (ProjectConfig) TableName() string {
	return "project_configs"
}

// NewProjectConfig 创建项目配置
func NewProjectConfig(projectID string, titles []string, context string) *ProjectConfig {
	now := time.Now()
	return &ProjectConfig{
		ProjectID: projectID,
		Titles:    titles,
		Context:   context,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
