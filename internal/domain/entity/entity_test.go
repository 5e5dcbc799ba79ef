package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_PasswordRoundTrip(t *testing.T) {
	user := NewUser("alice", "alice@example.com")
	require.NoError(t, user.SetPassword("s3cret-pass"))

	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.True(t, user.CheckPassword("s3cret-pass"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestProject_Lifecycle(t *testing.T) {
	project := NewProject("u1", "Annual Report", ProjectKindWord)

	assert.Equal(t, ProjectStatusDraft, project.Status)
	assert.True(t, project.IsWord())
	assert.True(t, project.IsEditable())
	assert.True(t, project.OwnedBy("u1"))
	assert.False(t, project.OwnedBy("u2"))

	project.Status = ProjectStatusArchived
	assert.False(t, project.IsEditable())
}

func TestSection_ContentTransitions(t *testing.T) {
	section := NewSection("p1", "Intro", 0)
	assert.Equal(t, "", section.ContentText())
	assert.False(t, section.IsGenerated)

	section.SetGeneratedContent("generated body")
	assert.Equal(t, "generated body", section.ContentText())
	assert.True(t, section.IsGenerated)

	// 润色不改动生成标记
	section.ApplyRefinement("refined body")
	assert.Equal(t, "refined body", section.ContentText())
	assert.True(t, section.IsGenerated)
}

func TestSlide_ManualEditKeepsFlag(t *testing.T) {
	slide := NewSlide("p1", "Opening", 0)
	slide.ApplyRefinement("hand written")

	assert.Equal(t, "hand written", slide.ContentText())
	assert.False(t, slide.IsGenerated)
}

func TestRefinement_TargetExclusivity(t *testing.T) {
	sectionRecord := NewSectionRefinement("s1", nil, "content")
	require.NotNil(t, sectionRecord.SectionID)
	assert.Nil(t, sectionRecord.SlideID)

	slideRecord := NewSlideRefinement("sl1", nil, "content")
	require.NotNil(t, slideRecord.SlideID)
	assert.Nil(t, slideRecord.SectionID)
}
