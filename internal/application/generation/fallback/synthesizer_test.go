package fallback

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizer_Deterministic(t *testing.T) {
	s := NewSynthesizer()
	prompt := `Generate comprehensive content for a document section titled "Market Analysis".`

	first := s.Generate(context.Background(), prompt, "business plan")
	second := s.Generate(context.Background(), prompt, "business plan")
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestSynthesizer_SlidePromptYieldsBullets(t *testing.T) {
	s := NewSynthesizer()
	prompt := `Generate content for a PowerPoint slide titled "Quarterly Goals".`

	got := s.Generate(context.Background(), prompt, "")
	assert.True(t, strings.HasPrefix(got, "•"))
}

func TestSynthesizer_SectionPromptYieldsParagraphs(t *testing.T) {
	s := NewSynthesizer()
	prompt := `Generate comprehensive content for a document section titled "Quarterly Goals".`

	got := s.Generate(context.Background(), prompt, "")
	assert.False(t, strings.HasPrefix(got, "•"))
	assert.Contains(t, got, "Quarterly Goals")
}

func TestSynthesizer_EspressoTopic(t *testing.T) {
	s := NewSynthesizer()
	prompt := `Generate comprehensive content for a document section titled "Espresso Basics".`

	got := s.Generate(context.Background(), prompt, "")
	assert.Contains(t, got, "crema")
}

func TestSynthesizer_TechnicalTitleOverridesHealthTopic(t *testing.T) {
	s := NewSynthesizer()
	prompt := `Generate content for a PowerPoint slide titled "Benefits of AI in Healthcare".`

	got := s.Generate(context.Background(), prompt, "healthcare presentation")
	assert.Contains(t, got, "diagnostic")
}

func TestExtractTitle(t *testing.T) {
	cases := []struct {
		prompt string
		want   string
	}{
		{`Write about "Cloud Migration" in detail`, "Cloud Migration"},
		{"Generate content. Section Title: Road Map", "Road Map"},
		{"Generate content. Slide Title: Team Intro", "Team Intro"},
		{"Write a summary: Final Thoughts", "Final Thoughts"},
		{"x", "Topic"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, extractTitle(tc.prompt), "prompt: %s", tc.prompt)
	}
}

func TestClassify_TechnicalSuppressesHealth(t *testing.T) {
	got := classify("AI Applications in Medicine", "")
	assert.True(t, got.technical)
	assert.False(t, got.health)
}

func TestClassify_HealthcareContext(t *testing.T) {
	got := classify("Current Applications", "a deck about healthcare systems")
	assert.True(t, got.healthcareContext)
	assert.True(t, got.technical)
}
