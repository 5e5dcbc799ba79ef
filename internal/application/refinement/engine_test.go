package refinement

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docgen-ai-api/internal/application/generation"
	"docgen-ai-api/internal/config"
	"docgen-ai-api/internal/domain/entity"
)

type stubRefiner struct {
	out   string
	err   error
	calls int
}

func (r *stubRefiner) TryGenerate(_ context.Context, _, _ string) (string, error) {
	r.calls++
	return r.out, r.err
}

type memContentStore struct {
	saved map[string]string
	err   error
}

func (s *memContentStore) UpdateContentOnly(_ context.Context, id, content string) error {
	if s.err != nil {
		return s.err
	}
	if s.saved == nil {
		s.saved = make(map[string]string)
	}
	s.saved[id] = content
	return nil
}

type memRecords struct {
	records []*entity.Refinement
	err     error
}

func (r *memRecords) Append(_ context.Context, refinement *entity.Refinement) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, refinement)
	return nil
}

func (r *memRecords) ListBySection(_ context.Context, _ string) ([]*entity.Refinement, error) {
	return r.records, nil
}

func (r *memRecords) ListBySlide(_ context.Context, _ string) ([]*entity.Refinement, error) {
	return r.records, nil
}

func strPtr(s string) *string { return &s }

func newTestEngine(cfg *config.LLMConfig, refiner *stubRefiner, sections, slides *memContentStore, records *memRecords) *Engine {
	if cfg == nil {
		cfg = &config.LLMConfig{}
	}
	return NewEngine(cfg, refiner, sections, slides, records)
}

func TestRefine_PassthroughSavesVerbatim(t *testing.T) {
	refiner := &stubRefiner{}
	sections := &memContentStore{}
	records := &memRecords{}
	engine := newTestEngine(nil, refiner, sections, &memContentStore{}, records)

	result, err := engine.Refine(context.Background(), Input{
		TargetID: "s1",
		Kind:     generation.KindSection,
		Content:  "edited by hand",
	})
	require.NoError(t, err)

	assert.Equal(t, modePassthrough, result.Mode)
	assert.Equal(t, "edited by hand", result.Content)
	assert.Equal(t, "edited by hand", sections.saved["s1"])
	assert.Equal(t, 0, refiner.calls)

	// 直接保存同样留下审计记录
	require.Len(t, records.records, 1)
	assert.Nil(t, records.records[0].Prompt)
}

func TestRefine_ProviderRefinesContent(t *testing.T) {
	refiner := &stubRefiner{out: "polished text"}
	sections := &memContentStore{}
	records := &memRecords{}
	engine := newTestEngine(nil, refiner, sections, &memContentStore{}, records)

	result, err := engine.Refine(context.Background(), Input{
		TargetID: "s1",
		Kind:     generation.KindSection,
		Content:  "rough text",
		Prompt:   strPtr("tighten this up"),
	})
	require.NoError(t, err)

	assert.Equal(t, modeProvider, result.Mode)
	assert.Equal(t, "polished text", result.Content)
	assert.Equal(t, "polished text", sections.saved["s1"])
	assert.Equal(t, 1, refiner.calls)
}

func TestRefine_ProviderFailureFallsBackToOriginal(t *testing.T) {
	refiner := &stubRefiner{err: stderrors.New("provider down")}
	sections := &memContentStore{}
	records := &memRecords{}
	engine := newTestEngine(nil, refiner, sections, &memContentStore{}, records)

	result, err := engine.Refine(context.Background(), Input{
		TargetID: "s1",
		Kind:     generation.KindSection,
		Content:  "original text",
		Prompt:   strPtr("tighten this up"),
	})
	require.NoError(t, err)

	// 提供商失败不阻塞保存
	assert.Equal(t, modePassthrough, result.Mode)
	assert.Equal(t, "original text", sections.saved["s1"])
	require.Len(t, records.records, 1)
}

func TestRefine_OfflineUsesRewriter(t *testing.T) {
	cfg := &config.LLMConfig{Offline: true}
	refiner := &stubRefiner{out: "should not be used"}
	sections := &memContentStore{}
	engine := newTestEngine(cfg, refiner, sections, &memContentStore{}, &memRecords{})

	result, err := engine.Refine(context.Background(), Input{
		TargetID: "s1",
		Kind:     generation.KindSection,
		Content:  "This encompasses several ideas.",
		Prompt:   strPtr("make it simpler"),
	})
	require.NoError(t, err)

	assert.Equal(t, modeOffline, result.Mode)
	assert.Contains(t, result.Content, "includes")
	assert.Equal(t, 0, refiner.calls)
}

func TestRefine_SlideRoutesToSlideStore(t *testing.T) {
	sections := &memContentStore{}
	slides := &memContentStore{}
	engine := newTestEngine(nil, &stubRefiner{}, sections, slides, &memRecords{})

	_, err := engine.Refine(context.Background(), Input{
		TargetID: "sl1",
		Kind:     generation.KindSlide,
		Content:  "bullet points",
	})
	require.NoError(t, err)

	assert.Equal(t, "bullet points", slides.saved["sl1"])
	assert.Empty(t, sections.saved)
}

func TestRefine_RecordAppendFailure(t *testing.T) {
	sections := &memContentStore{}
	records := &memRecords{err: stderrors.New("db down")}
	engine := newTestEngine(nil, &stubRefiner{}, sections, &memContentStore{}, records)

	_, err := engine.Refine(context.Background(), Input{
		TargetID: "s1",
		Kind:     generation.KindSection,
		Content:  "text",
	})
	assert.Error(t, err)
	assert.Empty(t, sections.saved)
}

func TestRefine_FeedbackRecorded(t *testing.T) {
	records := &memRecords{}
	engine := newTestEngine(nil, &stubRefiner{}, &memContentStore{}, &memContentStore{}, records)

	feedback := entity.RefinementFeedbackLike
	_, err := engine.Refine(context.Background(), Input{
		TargetID: "s1",
		Kind:     generation.KindSection,
		Content:  "text",
		Feedback: &feedback,
		Comments: strPtr("reads well"),
	})
	require.NoError(t, err)

	require.Len(t, records.records, 1)
	require.NotNil(t, records.records[0].Feedback)
	assert.Equal(t, entity.RefinementFeedbackLike, *records.records[0].Feedback)
}
