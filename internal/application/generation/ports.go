package generation

import (
	"context"

	"github.com/cloudwego/eino/components/model"
)

// ContentKind 生成内容类型
type ContentKind string

const (
	KindSection ContentKind = "section"
	KindSlide   ContentKind = "slide"
)

// Provider 一个已探测可用的 LLM 提供商客户端
type Provider struct {
	Name  string
	Model string
	Chat  model.BaseChatModel
}

// ChatModelFactory 提供商客户端工厂
//
// 客户端在进程启动时构造并探测，返回的布尔值是能力标志：
// false 表示该层级未配置或客户端初始化失败，调用方据此跳过而非重试。
type ChatModelFactory interface {
	// Primary 主提供商
	Primary() (*Provider, bool)

	// Secondary 次提供商
	Secondary() (*Provider, bool)
}

// Generator 内容生成接口，Generate 保证返回非空文本且不失败
type Generator interface {
	Generate(ctx context.Context, prompt, extra string) string
}

// OutlineItem 大纲条目视图，章节与幻灯片共用
type OutlineItem struct {
	ID          string
	Title       string
	Content     string
	OrderIndex  int
	IsGenerated bool
}

// OutlineStore 大纲条目存取端口，由持久层适配
type OutlineStore interface {
	// ListByProject 按 order_index 升序返回项目全部条目
	ListByProject(ctx context.Context, projectID string) ([]*OutlineItem, error)

	// UpdateContent 持久化内容与生成标记，两者必须在同一次写入中提交
	UpdateContent(ctx context.Context, id, content string, isGenerated bool) error
}

// ContextProvider 项目级自由文本背景查询端口
type ContextProvider interface {
	ProjectContext(ctx context.Context, projectID string) (string, error)
}
