package export

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docgen-ai-api/internal/domain/entity"
)

type memStore struct {
	files map[string][]byte
	err   error
}

func (s *memStore) Save(_ context.Context, name string, data []byte) error {
	if s.err != nil {
		return s.err
	}
	if s.files == nil {
		s.files = make(map[string][]byte)
	}
	s.files[name] = data
	return nil
}

func (s *memStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	data, ok := s.files[name]
	if !ok {
		return nil, stderrors.New("not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func strPtr(s string) *string { return &s }

func TestExport_WordRendersMarkdown(t *testing.T) {
	sections := &memSections{sections: []*entity.Section{
		{ID: "s1", Title: "Intro", Content: strPtr("intro body"), OrderIndex: 0},
		{ID: "s2", Title: "Empty", OrderIndex: 1},
	}}
	store := &memStore{}
	svc := NewService(sections, &memSlides{}, store)

	project := &entity.Project{ID: "p1", Name: "Annual Report", Description: "FY26 summary", Kind: entity.ProjectKindWord}
	name, err := svc.Export(context.Background(), project)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, "p1-"))
	assert.True(t, strings.HasSuffix(name, ".md"))

	rendered := string(store.files[name])
	assert.Contains(t, rendered, "# Annual Report")
	assert.Contains(t, rendered, "FY26 summary")
	assert.Contains(t, rendered, "## Intro")
	assert.Contains(t, rendered, "intro body")
	assert.Contains(t, rendered, "## Empty")
}

func TestExport_PowerPointRendersSlideText(t *testing.T) {
	slides := &memSlides{slides: []*entity.Slide{
		{ID: "sl1", Title: "Opening", Content: strPtr("• welcome"), OrderIndex: 0},
		{ID: "sl2", Title: "Closing", OrderIndex: 1},
	}}
	store := &memStore{}
	svc := NewService(&memSections{}, slides, store)

	project := &entity.Project{ID: "p1", Name: "Pitch Deck", Kind: entity.ProjectKindPowerPoint}
	name, err := svc.Export(context.Background(), project)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, ".txt"))

	rendered := string(store.files[name])
	assert.Contains(t, rendered, "--- Slide 1: Opening ---")
	assert.Contains(t, rendered, "• welcome")
	assert.Contains(t, rendered, "--- Slide 2: Closing ---")
}

func TestExport_StoreFailure(t *testing.T) {
	store := &memStore{err: stderrors.New("disk full")}
	svc := NewService(&memSections{}, &memSlides{}, store)

	project := &entity.Project{ID: "p1", Name: "Doc", Kind: entity.ProjectKindWord}
	_, err := svc.Export(context.Background(), project)
	assert.Error(t, err)
}

func TestOpen_RoundTrip(t *testing.T) {
	store := &memStore{}
	svc := NewService(&memSections{}, &memSlides{}, store)

	project := &entity.Project{ID: "p1", Name: "Doc", Kind: entity.ProjectKindWord}
	name, err := svc.Export(context.Background(), project)
	require.NoError(t, err)

	rc, err := svc.Open(context.Background(), name)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Doc")
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
func (s *memSections) DeleteByProject(_ context.Context, _ string) error          { return nil }

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
func (s *memSlides) DeleteByProject(_ context.Context, _ string) error          { return nil }
