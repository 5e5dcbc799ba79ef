package generation

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memOutlineStore struct {
	items   []*OutlineItem
	updates map[string]string
	fail    map[string]bool
}

func (s *memOutlineStore) ListByProject(_ context.Context, _ string) ([]*OutlineItem, error) {
	return s.items, nil
}

func (s *memOutlineStore) UpdateContent(_ context.Context, id, content string, _ bool) error {
	if s.fail[id] {
		return stderrors.New("write failed")
	}
	if s.updates == nil {
		s.updates = make(map[string]string)
	}
	s.updates[id] = content
	return nil
}

type recordingGenerator struct {
	extras []string
}

func (g *recordingGenerator) Generate(_ context.Context, _, extra string) string {
	g.extras = append(g.extras, extra)
	return "generated body"
}

type staticContextProvider struct {
	text string
	err  error
}

func (p *staticContextProvider) ProjectContext(_ context.Context, _ string) (string, error) {
	return p.text, p.err
}

func outlineItems(titles ...string) []*OutlineItem {
	items := make([]*OutlineItem, 0, len(titles))
	for i, title := range titles {
		items = append(items, &OutlineItem{ID: title, Title: title, OrderIndex: i})
	}
	return items
}

func TestGenerateSequence_AllInOrder(t *testing.T) {
	store := &memOutlineStore{items: outlineItems("One", "Two", "Three")}
	gen := &recordingGenerator{}
	o := NewOrchestrator(gen, &staticContextProvider{text: "annual report"}, store, &memOutlineStore{})

	result, err := o.GenerateSequence(context.Background(), "p1", KindSection, Selection{All: true})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Generated)
	assert.Equal(t, 3, result.Requested)
	assert.Len(t, store.updates, 3)

	// 每条都带项目背景，已生成条目的标题依次累积
	require.Len(t, gen.extras, 3)
	assert.Equal(t, "Project context: annual report", gen.extras[0])
	assert.Equal(t, "Project context: annual report\nPrevious sections: One", gen.extras[1])
	assert.Equal(t, "Project context: annual report\nPrevious sections: One, Two", gen.extras[2])
}

func TestGenerateSequence_SubsetCarriesPriorTitles(t *testing.T) {
	store := &memOutlineStore{items: outlineItems("One", "Two", "Three")}
	gen := &recordingGenerator{}
	o := NewOrchestrator(gen, &staticContextProvider{}, store, &memOutlineStore{})

	result, err := o.GenerateSequence(context.Background(), "p1", KindSection, Selection{IDs: []string{"Three"}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Generated)
	assert.Equal(t, 1, result.Requested)

	// 首个选中条目之前的标题进入背景
	require.Len(t, gen.extras, 1)
	assert.Equal(t, "Previous sections: One, Two", gen.extras[0])

	_, ok := store.updates["One"]
	assert.False(t, ok)
	assert.Contains(t, store.updates, "Three")
}

func TestGenerateSequence_SkippedMiddleItemLeftOutOfContext(t *testing.T) {
	store := &memOutlineStore{items: outlineItems("One", "Two", "Three")}
	gen := &recordingGenerator{}
	o := NewOrchestrator(gen, &staticContextProvider{}, store, &memOutlineStore{})

	result, err := o.GenerateSequence(context.Background(), "p1", KindSection, Selection{IDs: []string{"One", "Three"}})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Generated)
	assert.Equal(t, 2, result.Requested)

	// 选中范围内未选中的 Two 不进入后续背景
	require.Len(t, gen.extras, 2)
	assert.Equal(t, "", gen.extras[0])
	assert.Equal(t, "Previous sections: One", gen.extras[1])

	_, ok := store.updates["Two"]
	assert.False(t, ok)
}

func TestGenerateSequence_StoreFailureSkipsItem(t *testing.T) {
	store := &memOutlineStore{
		items: outlineItems("One", "Two", "Three"),
		fail:  map[string]bool{"Two": true},
	}
	gen := &recordingGenerator{}
	o := NewOrchestrator(gen, &staticContextProvider{}, store, &memOutlineStore{})

	result, err := o.GenerateSequence(context.Background(), "p1", KindSection, Selection{All: true})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Generated)
	assert.Equal(t, 3, result.Requested)

	// 持久化失败的条目不计入背景
	assert.Equal(t, "Previous sections: One", gen.extras[2])
}

func TestGenerateSequence_EmptySelection(t *testing.T) {
	o := NewOrchestrator(&recordingGenerator{}, &staticContextProvider{}, &memOutlineStore{}, &memOutlineStore{})

	result, err := o.GenerateSequence(context.Background(), "p1", KindSection, Selection{})
	assert.Error(t, err)
	assert.Zero(t, result.Generated)
}

func TestGenerateSequence_ContextLookupFailureProceeds(t *testing.T) {
	store := &memOutlineStore{items: outlineItems("One")}
	gen := &recordingGenerator{}
	o := NewOrchestrator(gen, &staticContextProvider{err: stderrors.New("cache down")}, store, &memOutlineStore{})

	result, err := o.GenerateSequence(context.Background(), "p1", KindSection, Selection{All: true})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Generated)
	assert.Equal(t, "", gen.extras[0])
}

func TestGenerateSequence_SlidesUseSlideStore(t *testing.T) {
	sections := &memOutlineStore{items: outlineItems("Doc")}
	slides := &memOutlineStore{items: outlineItems("Deck")}
	gen := &recordingGenerator{}
	o := NewOrchestrator(gen, &staticContextProvider{text: "pitch"}, sections, slides)

	result, err := o.GenerateSequence(context.Background(), "p1", KindSlide, Selection{All: true})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Generated)
	assert.Contains(t, slides.updates, "Deck")
	assert.Empty(t, sections.updates)
	assert.Equal(t, "Presentation context: pitch", gen.extras[0])
}
