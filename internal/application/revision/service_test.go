package revision

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docgen-ai-api/internal/domain/entity"
	"docgen-ai-api/internal/domain/repository"
	"docgen-ai-api/pkg/errors"
)

type stubTx struct{}

func (stubTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memRevisions struct {
	byNumber map[int]*entity.Revision
}

func (r *memRevisions) Create(_ context.Context, revision *entity.Revision) error {
	if r.byNumber == nil {
		r.byNumber = make(map[int]*entity.Revision)
	}
	r.byNumber[revision.RevisionNumber] = revision
	return nil
}

func (r *memRevisions) GetByID(_ context.Context, _ string) (*entity.Revision, error) {
	return nil, nil
}

func (r *memRevisions) GetByNumber(_ context.Context, _ string, number int) (*entity.Revision, error) {
	return r.byNumber[number], nil
}

func (r *memRevisions) ListByProject(_ context.Context, _ string, pagination repository.Pagination) (*repository.PagedResult[*entity.Revision], error) {
	items := make([]*entity.Revision, 0, len(r.byNumber))
	for _, revision := range r.byNumber {
		items = append(items, revision)
	}
	return repository.NewPagedResult(items, int64(len(items)), pagination), nil
}

func (r *memRevisions) NextNumber(_ context.Context, _ string) (int, error) {
	return len(r.byNumber) + 1, nil
}

type memConfigs struct {
	config *entity.ProjectConfig
}

func (c *memConfigs) Upsert(_ context.Context, config *entity.ProjectConfig) error {
	c.config = config
	return nil
}

func (c *memConfigs) GetByProject(_ context.Context, _ string) (*entity.ProjectConfig, error) {
	return c.config, nil
}

func (c *memConfigs) DeleteByProject(_ context.Context, _ string) error {
	c.config = nil
	return nil
}

type memSections struct {
	sections []*entity.Section
}

func (s *memSections) Create(_ context.Context, section *entity.Section) error {
	s.sections = append(s.sections, section)
	return nil
}

func (s *memSections) CreateBatch(_ context.Context, sections []*entity.Section) error {
	s.sections = append(s.sections, sections...)
	return nil
}

func (s *memSections) GetByID(_ context.Context, id string) (*entity.Section, error) {
	for _, section := range s.sections {
		if section.ID == id {
			return section, nil
		}
	}
	return nil, nil
}

func (s *memSections) Update(_ context.Context, _ *entity.Section) error { return nil }
func (s *memSections) Delete(_ context.Context, _ string) error          { return nil }

func (s *memSections) ListByProject(_ context.Context, _ string) ([]*entity.Section, error) {
	return s.sections, nil
}

func (s *memSections) UpdateContent(_ context.Context, id, content string, isGenerated bool) error {
	for _, section := range s.sections {
		if section.ID == id {
			section.Content = &content
			section.IsGenerated = isGenerated
		}
	}
	return nil
}

func (s *memSections) UpdateContentOnly(_ context.Context, id, content string) error {
	for _, section := range s.sections {
		if section.ID == id {
			section.Content = &content
		}
	}
	return nil
}

func (s *memSections) DeleteByProject(_ context.Context, _ string) error {
	s.sections = nil
	return nil
}

type memSlides struct {
	slides []*entity.Slide
}

func (s *memSlides) Create(_ context.Context, slide *entity.Slide) error {
	s.slides = append(s.slides, slide)
	return nil
}

func (s *memSlides) CreateBatch(_ context.Context, slides []*entity.Slide) error {
	s.slides = append(s.slides, slides...)
	return nil
}

func (s *memSlides) GetByID(_ context.Context, id string) (*entity.Slide, error) {
	for _, slide := range s.slides {
		if slide.ID == id {
			return slide, nil
		}
	}
	return nil, nil
}

func (s *memSlides) Update(_ context.Context, _ *entity.Slide) error { return nil }
func (s *memSlides) Delete(_ context.Context, _ string) error        { return nil }

func (s *memSlides) ListByProject(_ context.Context, _ string) ([]*entity.Slide, error) {
	return s.slides, nil
}

func (s *memSlides) UpdateContent(_ context.Context, id, content string, isGenerated bool) error {
	for _, slide := range s.slides {
		if slide.ID == id {
			slide.Content = &content
			slide.IsGenerated = isGenerated
		}
	}
	return nil
}

func (s *memSlides) UpdateContentOnly(_ context.Context, id, content string) error {
	for _, slide := range s.slides {
		if slide.ID == id {
			slide.Content = &content
		}
	}
	return nil
}

func (s *memSlides) DeleteByProject(_ context.Context, _ string) error {
	s.slides = nil
	return nil
}

func strPtr(s string) *string { return &s }

func wordProject() *entity.Project {
	return &entity.Project{ID: "p1", OwnerID: "u1", Kind: entity.ProjectKindWord}
}

func testSection(id, title, content string, order int) *entity.Section {
	return &entity.Section{
		ID:          id,
		ProjectID:   "p1",
		Title:       title,
		Content:     strPtr(content),
		OrderIndex:  order,
		IsGenerated: true,
	}
}

func TestSnapshot_CollectsOrderedItems(t *testing.T) {
	sections := &memSections{sections: []*entity.Section{
		testSection("s1", "Intro", "intro body", 0),
		testSection("s2", "Details", "details body", 1),
	}}
	configs := &memConfigs{config: entity.NewProjectConfig("p1", []string{"Intro", "Details"}, "annual report")}
	svc := NewService(stubTx{}, &memRevisions{}, configs, sections, &memSlides{})

	revision, err := svc.Snapshot(context.Background(), wordProject(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 1, revision.RevisionNumber)
	assert.Equal(t, "u1", revision.CreatedBy)
	require.NotNil(t, revision.Snapshot)
	assert.Equal(t, "annual report", revision.Snapshot.Context)
	require.Len(t, revision.Snapshot.Items, 2)
	assert.Equal(t, "intro body", revision.Snapshot.Items[0].Content)
	assert.Equal(t, "Details", revision.Snapshot.Items[1].Title)
}

func TestSnapshot_NumbersIncrease(t *testing.T) {
	revisions := &memRevisions{}
	svc := NewService(stubTx{}, revisions, &memConfigs{}, &memSections{}, &memSlides{})

	first, err := svc.Snapshot(context.Background(), wordProject(), "u1")
	require.NoError(t, err)
	second, err := svc.Snapshot(context.Background(), wordProject(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 1, first.RevisionNumber)
	assert.Equal(t, 2, second.RevisionNumber)
}

func TestDiff_MergePatch(t *testing.T) {
	revisions := &memRevisions{byNumber: map[int]*entity.Revision{
		1: entity.NewRevision("p1", 1, &entity.RevisionSnapshot{
			Kind:  entity.ProjectKindWord,
			Items: []entity.RevisionItem{{ID: "s1", Title: "Intro", Content: "old body"}},
		}, "u1"),
		2: entity.NewRevision("p1", 2, &entity.RevisionSnapshot{
			Kind:  entity.ProjectKindWord,
			Items: []entity.RevisionItem{{ID: "s1", Title: "Intro", Content: "new body"}},
		}, "u1"),
	}}
	svc := NewService(stubTx{}, revisions, &memConfigs{}, &memSections{}, &memSlides{})

	patch, err := svc.Diff(context.Background(), "p1", 1, 2)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(patch, &decoded))
	assert.Contains(t, string(patch), "new body")
}

func TestDiff_IdenticalSnapshotsYieldEmptyPatch(t *testing.T) {
	snapshot := &entity.RevisionSnapshot{Kind: entity.ProjectKindWord}
	revisions := &memRevisions{byNumber: map[int]*entity.Revision{
		1: entity.NewRevision("p1", 1, snapshot, "u1"),
	}}
	svc := NewService(stubTx{}, revisions, &memConfigs{}, &memSections{}, &memSlides{})

	patch, err := svc.Diff(context.Background(), "p1", 1, 1)
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(patch))
}

func TestDiff_MissingRevision(t *testing.T) {
	svc := NewService(stubTx{}, &memRevisions{}, &memConfigs{}, &memSections{}, &memSlides{})

	_, err := svc.Diff(context.Background(), "p1", 1, 2)
	assert.ErrorIs(t, err, errors.ErrRevisionNotFound)
}

func TestRestore_SkipsDeletedItems(t *testing.T) {
	sections := &memSections{sections: []*entity.Section{
		testSection("s1", "Intro", "current body", 0),
	}}
	revisions := &memRevisions{byNumber: map[int]*entity.Revision{
		1: entity.NewRevision("p1", 1, &entity.RevisionSnapshot{
			Kind: entity.ProjectKindWord,
			Items: []entity.RevisionItem{
				{ID: "s1", Title: "Intro", Content: "snapshot body", IsGenerated: true},
				{ID: "gone", Title: "Removed", Content: "orphan body"},
			},
		}, "u1"),
	}}
	svc := NewService(stubTx{}, revisions, &memConfigs{}, sections, &memSlides{})

	restored, err := svc.Restore(context.Background(), wordProject(), 1)
	require.NoError(t, err)

	// 快照之后被删除的条目跳过
	assert.Equal(t, 1, restored)
	assert.Equal(t, "snapshot body", *sections.sections[0].Content)
}

func TestRestore_MissingRevision(t *testing.T) {
	svc := NewService(stubTx{}, &memRevisions{}, &memConfigs{}, &memSections{}, &memSlides{})

	_, err := svc.Restore(context.Background(), wordProject(), 7)
	assert.ErrorIs(t, err, errors.ErrRevisionNotFound)
}
