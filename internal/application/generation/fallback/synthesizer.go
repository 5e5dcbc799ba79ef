package fallback

import (
	"context"
	"strings"
)

// Synthesizer 离线内容合成器
//
// 纯函数式：相同的提示词与背景永远产出相同内容，不做任何 IO。
// 作为提供商链的兜底，保证生成流程在无任何外部依赖时仍能完成。
type Synthesizer struct{}

// NewSynthesizer 创建合成器
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Generate 根据提示词与背景合成内容，永不失败
// 提示词中出现 slide/powerpoint 时产出要点列表，否则产出段落文本。
func (s *Synthesizer) Generate(_ context.Context, prompt, extra string) string {
	title := extractTitle(prompt)
	t := classify(title, extra)

	promptLower := strings.ToLower(prompt)
	if strings.Contains(promptLower, "slide") || strings.Contains(promptLower, "powerpoint") {
		return slideContent(title, t)
	}
	return sectionContent(title, t)
}
