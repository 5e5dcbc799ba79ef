package fallback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewrite_ShortenKeepsFirstParagraph(t *testing.T) {
	original := "First paragraph with the core idea.\n\nSecond paragraph with extra detail."

	got := Rewrite(original, "make shorter please", false)
	assert.Equal(t, "First paragraph with the core idea.", got)
}

func TestRewrite_ShortenSingleParagraphUnchanged(t *testing.T) {
	original := "Only one paragraph here, nothing to trim away."

	got := Rewrite(original, "summarize", false)
	assert.Equal(t, original, got)
}

func TestRewrite_ShortenSlideTrimsBullets(t *testing.T) {
	original := "• one\n• two\n• three\n• four\n• five\n• six"

	got := Rewrite(original, "condense this", true)
	assert.Equal(t, 4, strings.Count(got, "•"))
	assert.Contains(t, got, "• one")
	assert.NotContains(t, got, "• five")
}

func TestRewrite_ExpandAppendsDetail(t *testing.T) {
	original := "A short section body."

	got := Rewrite(original, "expand with more detail", false)
	assert.True(t, strings.HasPrefix(got, original))
	assert.Greater(t, len(got), len(original))
}

func TestRewrite_SimplifySubstitutes(t *testing.T) {
	original := "This topic encompasses comprehensive and fundamental ideas."

	got := Rewrite(original, "make it simpler", false)
	assert.Contains(t, got, "includes")
	assert.Contains(t, got, "complete")
	assert.Contains(t, got, "basic")
	assert.NotContains(t, got, "encompasses")
}

func TestRewrite_UnknownInstructionReturnsContent(t *testing.T) {
	original := "Body text that should survive untouched."

	got := Rewrite(original, "translate to french", false)
	assert.Equal(t, original, got)
}

func TestRewrite_StripsLeakedInstructionText(t *testing.T) {
	original := "Actual body.\n\nPlease provide the refined content that addresses the request."

	got := Rewrite(original, "translate to french", false)
	assert.Equal(t, "Actual body.", got)
}

func TestRewrite_ImproveSlideConvertsSentencesToBullets(t *testing.T) {
	original := "First point. Second point. Third point."

	got := Rewrite(original, "improve the quality", true)
	assert.True(t, strings.HasPrefix(got, "•"))
	assert.Contains(t, got, "• First point")
}

func TestRewrite_DeterministicForSameInput(t *testing.T) {
	original := "Stable content for refinement."
	first := Rewrite(original, "make longer", false)
	second := Rewrite(original, "make longer", false)
	assert.Equal(t, first, second)
}
