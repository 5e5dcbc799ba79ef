package fallback

import (
	"fmt"
	"strings"
)

// Rewrite 离线确定性润色
//
// 按修改指令中的关键词选择启发式变换：扩写、缩写、简化、增强、主题阐释。
// 未命中任何模式时原样返回清理后的内容，保证调用方总能拿到可保存的文本。
// slide 为 true 时按要点列表处理，否则按段落文本处理。
func Rewrite(original, instruction string, slide bool) string {
	instructionLower := strings.ToLower(instruction)

	// 首行够短且不以句号结尾时视作标题
	title := ""
	if lines := strings.Split(original, "\n"); len(lines) > 0 {
		first := strings.TrimSpace(lines[0])
		if len(first) < 100 && !strings.HasSuffix(first, ".") {
			title = first
		}
	}

	// 剔除早期版本泄漏进内容的指令文本
	cleaned := original
	if strings.Contains(cleaned, "Please provide the refined content") {
		cleaned = strings.TrimSpace(strings.SplitN(cleaned, "Please provide the refined content", 2)[0])
	}

	switch {
	case containsAny(instructionLower, []string{"make longer", "expand", "add more", "more detail", "more information"}):
		if slide {
			if strings.Contains(cleaned, "•") || strings.Contains(cleaned, "-") {
				return cleaned + "\n• Additional relevant information and insights\n• Further details and considerations\n• Important aspects to consider"
			}
			return cleaned + "\n\n• Additional key points\n• Further considerations\n• Important details"
		}
		return cleaned + "\n\nThis topic encompasses additional important aspects that warrant further exploration. Understanding these elements provides deeper insights into the subject matter and its broader implications."

	case containsAny(instructionLower, []string{"make shorter", "condense", "summarize", "brief", "concise"}):
		if slide {
			var bullets []string
			for _, line := range strings.Split(cleaned, "\n") {
				trimmed := strings.TrimSpace(line)
				if strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "-") {
					bullets = append(bullets, line)
				}
			}
			if len(bullets) > 0 {
				if len(bullets) > 4 {
					bullets = bullets[:4]
				}
				return strings.Join(bullets, "\n")
			}
			sentences := strings.Split(cleaned, ".")
			if len(sentences) > 2 {
				sentences = sentences[:2]
			}
			return strings.Join(sentences, ". ") + "."
		}
		// strings.Split 至少返回一个元素，首段即缩短结果
		paragraphs := strings.Split(cleaned, "\n\n")
		return paragraphs[0]

	case containsAny(instructionLower, []string{"simpler", "simple", "easy", "understand", "explain"}):
		simplified := strings.ReplaceAll(cleaned, "encompasses", "includes")
		simplified = strings.ReplaceAll(simplified, "comprehensive", "complete")
		simplified = strings.ReplaceAll(simplified, "fundamental", "basic")
		return simplified

	case containsAny(instructionLower, []string{"improve", "better", "enhance", "quality"}):
		if slide {
			if !strings.Contains(cleaned, "•") {
				var bullets []string
				for _, s := range strings.Split(cleaned, ".") {
					if trimmed := strings.TrimSpace(s); trimmed != "" {
						bullets = append(bullets, "• "+trimmed)
					}
					if len(bullets) == 6 {
						break
					}
				}
				return strings.Join(bullets, "\n")
			}
			return cleaned + "\n• Enhanced implementation strategies\n• Best practices and recommendations"
		}
		return cleaned + "\n\nTo further enhance understanding, it is important to consider practical applications and real-world examples that demonstrate the relevance of these concepts."
	}

	if title != "" && containsAny(instructionLower, []string{"about", "explain", "what is", "define"}) {
		if slide {
			return fmt.Sprintf(`• %s refers to important concepts and applications in this field
• Key characteristics and defining features
• Practical applications and real-world uses
• Benefits and advantages
• Current trends and future developments`, title)
		}
		return fmt.Sprintf(`%s represents an important concept that encompasses multiple key aspects and practical applications. Understanding this topic requires examining its fundamental principles, key characteristics, and real-world relevance.

The core elements of %s include essential concepts, defining features, and practical applications that demonstrate its significance. These components work together to provide a comprehensive understanding of the subject matter and its importance in various contexts.

Key considerations include the definition and scope of %s, its key characteristics and features, important applications and use cases, and the benefits or value it provides. Each of these dimensions contributes to a thorough understanding of the topic.`, title, title, title)
	}

	return cleaned
}
