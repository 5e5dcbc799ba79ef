// Package dto 提供 HTTP 层数据传输对象
package dto

// ExportResponse 导出响应
type ExportResponse struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}
