package generation

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docgen-ai-api/internal/config"
	"docgen-ai-api/pkg/errors"
)

type stubChatModel struct {
	content string
	err     error
	calls   int
}

func (m *stubChatModel) Generate(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return schema.AssistantMessage(m.content, nil), nil
}

func (m *stubChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, stderrors.New("stream not supported")
}

type stubFactory struct {
	primary   *Provider
	secondary *Provider
}

func (f *stubFactory) Primary() (*Provider, bool)   { return f.primary, f.primary != nil }
func (f *stubFactory) Secondary() (*Provider, bool) { return f.secondary, f.secondary != nil }

type stubSynth struct {
	calls int
}

func (s *stubSynth) Generate(_ context.Context, _, _ string) string {
	s.calls++
	return "offline content"
}

func newProvider(name string, m model.BaseChatModel) *Provider {
	return &Provider{Name: name, Model: "test-model", Chat: m}
}

func chainConfig() *config.LLMConfig {
	return &config.LLMConfig{
		RetryAttempts:  2,
		RetryBaseDelay: time.Millisecond,
	}
}

func TestChain_OfflineUsesSynthesizer(t *testing.T) {
	cfg := chainConfig()
	cfg.Offline = true
	primary := &stubChatModel{content: "from provider"}
	synth := &stubSynth{}

	chain := NewChain(cfg, &stubFactory{primary: newProvider("primary", primary)}, NewRateLimiter(10), synth)

	got := chain.Generate(context.Background(), "prompt", "")
	assert.Equal(t, "offline content", got)
	assert.Equal(t, 0, primary.calls)
	assert.Equal(t, 1, synth.calls)
}

func TestChain_SecondaryPreferred(t *testing.T) {
	primary := &stubChatModel{content: "from primary"}
	secondary := &stubChatModel{content: "from secondary"}

	chain := NewChain(chainConfig(), &stubFactory{
		primary:   newProvider("primary", primary),
		secondary: newProvider("secondary", secondary),
	}, NewRateLimiter(10), &stubSynth{})

	got := chain.Generate(context.Background(), "prompt", "")
	assert.Equal(t, "from secondary", got)
	assert.Equal(t, 0, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestChain_SecondaryFailureFallsToPrimary(t *testing.T) {
	primary := &stubChatModel{content: "from primary"}
	secondary := &stubChatModel{err: stderrors.New("boom")}

	chain := NewChain(chainConfig(), &stubFactory{
		primary:   newProvider("primary", primary),
		secondary: newProvider("secondary", secondary),
	}, NewRateLimiter(10), &stubSynth{})

	got := chain.Generate(context.Background(), "prompt", "")
	assert.Equal(t, "from primary", got)
	assert.Equal(t, 1, secondary.calls)
	assert.Equal(t, 1, primary.calls)
}

func TestChain_RetryExhaustedFallsBack(t *testing.T) {
	primary := &stubChatModel{err: stderrors.New("boom")}
	synth := &stubSynth{}

	chain := NewChain(chainConfig(), &stubFactory{primary: newProvider("primary", primary)}, NewRateLimiter(10), synth)

	got := chain.Generate(context.Background(), "prompt", "")
	assert.Equal(t, "offline content", got)
	assert.Equal(t, 2, primary.calls)
	assert.Equal(t, 1, synth.calls)
}

func TestChain_RateLimitedAttemptsCount(t *testing.T) {
	primary := &stubChatModel{content: "from primary"}
	synth := &stubSynth{}

	// 上限为 0，每次尝试都被限流拒绝且不触达提供商
	chain := NewChain(chainConfig(), &stubFactory{primary: newProvider("primary", primary)}, NewRateLimiter(0), synth)

	got := chain.Generate(context.Background(), "prompt", "")
	assert.Equal(t, "offline content", got)
	assert.Equal(t, 0, primary.calls)
	assert.Equal(t, 1, synth.calls)
}

func TestChain_EmptyCompletionIsFailure(t *testing.T) {
	primary := &stubChatModel{content: "   "}
	synth := &stubSynth{}

	chain := NewChain(chainConfig(), &stubFactory{primary: newProvider("primary", primary)}, NewRateLimiter(10), synth)

	got := chain.Generate(context.Background(), "prompt", "")
	assert.Equal(t, "offline content", got)
	assert.Equal(t, 2, primary.calls)
}

func TestChain_TryGenerateDoesNotFallBack(t *testing.T) {
	synth := &stubSynth{}
	chain := NewChain(chainConfig(), &stubFactory{}, NewRateLimiter(10), synth)

	_, err := chain.TryGenerate(context.Background(), "prompt", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrProviderUnavailable)
	assert.Equal(t, 0, synth.calls)
}

func TestChain_TryGenerateOfflineErrors(t *testing.T) {
	cfg := chainConfig()
	cfg.Offline = true
	chain := NewChain(cfg, &stubFactory{}, NewRateLimiter(10), &stubSynth{})

	_, err := chain.TryGenerate(context.Background(), "prompt", "")
	assert.ErrorIs(t, err, errors.ErrProviderUnavailable)
}

func TestChain_ContextPrependedToPrompt(t *testing.T) {
	var captured []*schema.Message
	secondary := &capturingChatModel{content: "ok", captured: &captured}

	chain := NewChain(chainConfig(), &stubFactory{secondary: newProvider("secondary", secondary)}, NewRateLimiter(10), &stubSynth{})

	_, err := chain.TryGenerate(context.Background(), "write it", "some background")
	require.NoError(t, err)
	require.Len(t, captured, 2)
	assert.Equal(t, schema.System, captured[0].Role)
	assert.Equal(t, "Context: some background\n\nwrite it", captured[1].Content)
}

type capturingChatModel struct {
	content  string
	captured *[]*schema.Message
}

func (m *capturingChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	*m.captured = input
	return schema.AssistantMessage(m.content, nil), nil
}

func (m *capturingChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, stderrors.New("stream not supported")
}
