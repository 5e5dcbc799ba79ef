// Package fallback 提供离线确定性内容合成器
package fallback

import "strings"

// topics 标题与背景文本的主题归类结果
type topics struct {
	devotional bool
	coffee     bool
	technical  bool
	business   bool
	science    bool
	health     bool
	education  bool

	// healthcareContext 背景文本提及医疗领域
	healthcareContext bool
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// extractTitle 从提示词中提取条目标题
// 依次尝试：引号包裹 > titled 后缀 > Section Title:/Slide Title: 标记 > 最后一个冒号之后。
// 提取结果过短时退化为 "Topic"。
func extractTitle(prompt string) string {
	title := ""
	if strings.Contains(prompt, `"`) {
		parts := strings.Split(prompt, `"`)
		if len(parts) >= 2 {
			title = parts[1]
		}
	} else {
		lower := strings.ToLower(prompt)
		switch {
		case strings.Contains(lower, "titled"):
			parts := strings.SplitN(prompt, "titled", 2)
			if len(parts) > 1 {
				t := strings.SplitN(parts[1], `"`, 2)[0]
				t = strings.SplitN(t, ":", 2)[0]
				title = strings.Trim(t, ` "`)
			}
		case strings.Contains(lower, "section title:"):
			parts := strings.Split(prompt, "Section Title:")
			title = strings.TrimSpace(parts[len(parts)-1])
		case strings.Contains(lower, "slide title:"):
			parts := strings.Split(prompt, "Slide Title:")
			title = strings.TrimSpace(parts[len(parts)-1])
		default:
			parts := strings.Split(prompt, ":")
			title = strings.TrimSpace(parts[len(parts)-1])
		}
	}

	title = strings.TrimSpace(strings.Trim(title, ` "`))
	if len(title) < 2 {
		title = "Topic"
	}
	return title
}

// classify 按背景与标题中的关键词归类主题
// 背景中的医疗词汇优先识别；标题中的 AI/技术词汇优先于健康词汇，
// 已判定为技术主题时不再标记健康主题。
func classify(title, context string) topics {
	var t topics
	titleLower := strings.ToLower(title)

	if context != "" {
		contextLower := strings.ToLower(context)
		if containsAny(contextLower, []string{"health", "healthcare", "medical", "patient", "clinical", "hospital", "health care"}) {
			t.healthcareContext = true
			if containsAny(titleLower, []string{"ai", "artificial intelligence", "machine learning", "technology", "application", "integration", "current", "challenge", "future", "scope", "benefit"}) {
				t.technical = true
			}
		}
		if containsAny(contextLower, []string{"devotional", "shiva", "lord", "devotion", "spiritual", "temple", "prayer"}) {
			t.devotional = true
		}
		if containsAny(contextLower, []string{"coffee", "espresso", "caffeine", "brew"}) {
			t.coffee = true
		}
		if containsAny(contextLower, []string{"technical", "technology", "code", "software", "programming"}) {
			t.technical = true
		}
		if containsAny(contextLower, []string{"business", "corporate", "marketing", "sales", "strategy"}) {
			t.business = true
		}
	}

	if containsAny(titleLower, []string{"ai", "artificial intelligence", "machine learning", "ml", "neural", "algorithm", "data science"}) {
		t.technical = true
	}
	if containsAny(titleLower, []string{"shiva", "lord", "devotion", "temple", "prayer", "spiritual", "god", "divine"}) {
		t.devotional = true
	}
	if containsAny(titleLower, []string{"espresso", "coffee", "caffeine", "brew", "latte", "cappuccino"}) {
		t.coffee = true
	}
	if containsAny(titleLower, []string{"technical", "technology", "code", "software", "programming", "computer", "digital", "integration", "system", "platform"}) {
		t.technical = true
	}
	if containsAny(titleLower, []string{"business", "corporate", "marketing", "sales", "strategy", "management"}) {
		t.business = true
	}
	if containsAny(titleLower, []string{"science", "research", "study", "experiment", "theory"}) {
		t.science = true
	}
	if !t.technical && containsAny(titleLower, []string{"health", "medical", "disease", "treatment", "medicine", "healthcare", "patient", "clinical"}) {
		t.health = true
	}
	if containsAny(titleLower, []string{"education", "learning", "teaching", "student", "school"}) {
		t.education = true
	}

	return t
}

// meaningfulWords 返回标题中长度大于 3 的词
func meaningfulWords(title string) []string {
	var words []string
	for _, w := range strings.Fields(title) {
		if len(w) > 3 {
			words = append(words, w)
		}
	}
	return words
}

// healthTitled 标题直接提及医疗领域
func healthTitled(titleLower string) bool {
	return strings.Contains(titleLower, "health") ||
		strings.Contains(titleLower, "healthcare") ||
		strings.Contains(titleLower, "medical")
}
