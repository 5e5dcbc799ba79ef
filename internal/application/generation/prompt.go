package generation

import (
	"fmt"
	"strings"
)

// systemInstruction 提供商调用的系统指令
const systemInstruction = "You are a helpful assistant that generates high-quality, informative, and relevant content. Be specific, detailed, and provide actual useful information about the topic."

// BuildSectionPrompt 构造 Word 章节生成提示词
func BuildSectionPrompt(title string) string {
	return fmt.Sprintf(`Generate comprehensive content for a document section titled %q.

Requirements:
- Write detailed, professional content appropriate for this section
- Use proper formatting and structure
- Include relevant information and examples where appropriate
- Maintain consistency with the overall document theme
- Aim for 300-500 words

Section Title: %s`, title, title)
}

// BuildSlidePrompt 构造幻灯片生成提示词
func BuildSlidePrompt(title string) string {
	return fmt.Sprintf(`Generate content for a PowerPoint slide titled %q.

Requirements:
- Create concise, bullet-point style content suitable for a presentation slide
- Include key points and main ideas
- Use clear, impactful language
- Keep content brief (suitable for a slide format)
- Maintain consistency with the overall presentation theme

Slide Title: %s`, title, title)
}

// BuildPrompt 按内容类型构造提示词
func BuildPrompt(kind ContentKind, title string) string {
	if kind == KindSlide {
		return BuildSlidePrompt(title)
	}
	return BuildSectionPrompt(title)
}

// BuildContext 组装生成调用的附加上下文
// 由项目级背景与此前已处理条目的标题组成，任一为空则省略对应行。
func BuildContext(kind ContentKind, projectContext string, previousTitles []string) string {
	var parts []string

	if projectContext != "" {
		if kind == KindSlide {
			parts = append(parts, "Presentation context: "+projectContext)
		} else {
			parts = append(parts, "Project context: "+projectContext)
		}
	}

	if len(previousTitles) > 0 {
		if kind == KindSlide {
			parts = append(parts, "Previous slides: "+strings.Join(previousTitles, ", "))
		} else {
			parts = append(parts, "Previous sections: "+strings.Join(previousTitles, ", "))
		}
	}

	return strings.Join(parts, "\n")
}
