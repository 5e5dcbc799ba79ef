package outline

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docgen-ai-api/internal/domain/entity"
)

type stubTx struct{}

func (stubTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
	deletes  int
}

func (s *memSections) Create(_ context.Context, section *entity.Section) error {
	s.sections = append(s.sections, section)
	return nil
}

func (s *memSections) CreateBatch(_ context.Context, sections []*entity.Section) error {
	s.sections = append(s.sections, sections...)
	return nil
}

func (s *memSections) GetByID(_ context.Context, _ string) (*entity.Section, error) {
	return nil, nil
}

func (s *memSections) Update(_ context.Context, _ *entity.Section) error { return nil }
func (s *memSections) Delete(_ context.Context, _ string) error          { return nil }

func (s *memSections) ListByProject(_ context.Context, _ string) ([]*entity.Section, error) {
	return s.sections, nil
}

func (s *memSections) UpdateContent(_ context.Context, _, _ string, _ bool) error { return nil }
func (s *memSections) UpdateContentOnly(_ context.Context, _, _ string) error     { return nil }

func (s *memSections) DeleteByProject(_ context.Context, _ string) error {
	s.deletes++
	s.sections = nil
	return nil
}

type memSlides struct {
	slides  []*entity.Slide
	deletes int
}

func (s *memSlides) Create(_ context.Context, slide *entity.Slide) error {
	s.slides = append(s.slides, slide)
	return nil
}

func (s *memSlides) CreateBatch(_ context.Context, slides []*entity.Slide) error {
	s.slides = append(s.slides, slides...)
	return nil
}

func (s *memSlides) GetByID(_ context.Context, _ string) (*entity.Slide, error) {
	return nil, nil
}

func (s *memSlides) Update(_ context.Context, _ *entity.Slide) error { return nil }
func (s *memSlides) Delete(_ context.Context, _ string) error        { return nil }

func (s *memSlides) ListByProject(_ context.Context, _ string) ([]*entity.Slide, error) {
	return s.slides, nil
}

func (s *memSlides) UpdateContent(_ context.Context, _, _ string, _ bool) error { return nil }
func (s *memSlides) UpdateContentOnly(_ context.Context, _, _ string) error     { return nil }

func (s *memSlides) DeleteByProject(_ context.Context, _ string) error {
	s.deletes++
	s.slides = nil
	return nil
}

type stubCache struct {
	err   error
	calls int
}

func (c *stubCache) InvalidateProject(_ context.Context, _ string) error {
	c.calls++
	return c.err
}

func newTestService(configs *memConfigs, sections *memSections, slides *memSlides, cache *stubCache) *Service {
	return NewService(stubTx{}, configs, sections, slides, cache)
}

func TestApplyConfig_RebuildsSections(t *testing.T) {
	sections := &memSections{sections: []*entity.Section{
		{ID: "old", ProjectID: "p1", Title: "Stale", OrderIndex: 0},
	}}
	configs := &memConfigs{}
	cache := &stubCache{}
	svc := newTestService(configs, sections, &memSlides{}, cache)

	project := &entity.Project{ID: "p1", Kind: entity.ProjectKindWord}
	config, err := svc.ApplyConfig(context.Background(), project, []string{"Intro", "Details"}, "annual report")
	require.NoError(t, err)

	assert.Equal(t, []string{"Intro", "Details"}, []string(config.Titles))
	assert.Equal(t, "annual report", config.Context)

	// 旧章节连同内容一并删除，按新标题顺序重建
	assert.Equal(t, 1, sections.deletes)
	require.Len(t, sections.sections, 2)
	assert.Equal(t, "Intro", sections.sections[0].Title)
	assert.Equal(t, 0, sections.sections[0].OrderIndex)
	assert.Equal(t, "Details", sections.sections[1].Title)
	assert.Equal(t, 1, sections.sections[1].OrderIndex)

	assert.Equal(t, 1, cache.calls)
}

func TestApplyConfig_PowerPointRebuildsSlides(t *testing.T) {
	sections := &memSections{}
	slides := &memSlides{}
	svc := newTestService(&memConfigs{}, sections, slides, &stubCache{})

	project := &entity.Project{ID: "p1", Kind: entity.ProjectKindPowerPoint}
	_, err := svc.ApplyConfig(context.Background(), project, []string{"Opening", "Closing"}, "")
	require.NoError(t, err)

	require.Len(t, slides.slides, 2)
	assert.Empty(t, sections.sections)
}

func TestApplyConfig_EmptyTitlesRejected(t *testing.T) {
	svc := newTestService(&memConfigs{}, &memSections{}, &memSlides{}, &stubCache{})

	project := &entity.Project{ID: "p1", Kind: entity.ProjectKindWord}
	_, err := svc.ApplyConfig(context.Background(), project, nil, "")
	assert.Error(t, err)

	_, err = svc.ApplyConfig(context.Background(), project, []string{"Intro", ""}, "")
	assert.Error(t, err)
}

func TestApplyConfig_CacheFailureIgnored(t *testing.T) {
	cache := &stubCache{err: stderrors.New("redis down")}
	svc := newTestService(&memConfigs{}, &memSections{}, &memSlides{}, cache)

	project := &entity.Project{ID: "p1", Kind: entity.ProjectKindWord}
	_, err := svc.ApplyConfig(context.Background(), project, []string{"Intro"}, "")
	assert.NoError(t, err)
}

func TestGetConfig_PassesThrough(t *testing.T) {
	configs := &memConfigs{config: entity.NewProjectConfig("p1", []string{"Intro"}, "")}
	svc := newTestService(configs, &memSections{}, &memSlides{}, &stubCache{})

	config, err := svc.GetConfig(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, configs.config, config)
}
