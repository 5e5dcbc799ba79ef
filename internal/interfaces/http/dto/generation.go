// Package dto 提供 HTTP 层数据传输对象
package dto

// GenerateRequest 内容生成请求
//
// GenerateAll 为 true 时忽略 ID 列表生成整个大纲；
// 否则按项目类型取 SectionIDs 或 SlideIDs 生成选中条目。
type GenerateRequest struct {
	GenerateAll bool     `json:"generate_all"`
	SectionIDs  []string `json:"section_ids,omitempty"`
	SlideIDs    []string `json:"slide_ids,omitempty"`
}

// GenerateResponse 内容生成响应
type GenerateResponse struct {
	GeneratedCount int `json:"generated_count"`
	TotalRequested int `json:"total_requested"`
}
