package stylist

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	mu      sync.Mutex
	reply   string
	err     error
	nilResp bool
	panics  bool
	block   chan struct{}
	started chan struct{}
	prompts []string
	options llms.CallOptions
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.mu.Lock()
	for _, m := range messages {
		for _, part := range m.Parts {
			if tc, ok := part.(llms.TextContent); ok {
				f.prompts = append(f.prompts, tc.Text)
			}
		}
	}
	for _, opt := range options {
		opt(&f.options)
	}
	f.mu.Unlock()

	if f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.panics {
		panic("client exploded")
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.nilResp {
		return nil, nil
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.reply}}}, nil
}

func TestStartSeedsWelcome(t *testing.T) {
	r := NewConversations(&fakeModel{}, "", 0)
	id, c := r.Start()

	assert.NotEmpty(t, id)
	assert.Equal(t, []Message{{Role: RoleBot, Text: Welcome}}, c.Transcript())

	got, err := r.Get(id)
	require.NoError(t, err)
	assert.Same(t, c, got)

	_, err = r.Get("missing")
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestSendAppendsReply(t *testing.T) {
	model := &fakeModel{reply: "Pair the ivory karandi with gold accents."}
	_, c := NewConversations(model, "gemini-3-flash-preview", 0).Start()

	reply, err := c.Send(context.Background(), "What should I wear to a winter wedding?")
	require.NoError(t, err)
	assert.Equal(t, Message{Role: RoleBot, Text: "Pair the ivory karandi with gold accents."}, reply)

	assert.Equal(t, []Message{
		{Role: RoleBot, Text: Welcome},
		{Role: RoleUser, Text: "What should I wear to a winter wedding?"},
		reply,
	}, c.Transcript())
	assert.False(t, c.Busy())

	require.Len(t, model.prompts, 1)
	assert.Equal(t, Prompt("What should I wear to a winter wedding?"), model.prompts[0])
	assert.Contains(t, model.prompts[0], "Trendy ND Modern")
	assert.Equal(t, "gemini-3-flash-preview", model.options.Model)
}

func TestSendDoesNotResendHistory(t *testing.T) {
	model := &fakeModel{reply: "ok"}
	_, c := NewConversations(model, "", 0).Start()

	_, err := c.Send(context.Background(), "first")
	require.NoError(t, err)
	_, err = c.Send(context.Background(), "second")
	require.NoError(t, err)

	require.Len(t, model.prompts, 2)
	assert.Equal(t, Prompt("second"), model.prompts[1])
	assert.NotContains(t, model.prompts[1], "first")
}

func TestSendFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		model *fakeModel
		want  string
	}{
		{"error", &fakeModel{err: errors.New("connection refused")}, FallbackOffline},
		{"empty text", &fakeModel{reply: "  "}, FallbackEmpty},
		{"no response", &fakeModel{nilResp: true}, FallbackEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c := NewConversations(tt.model, "", 0).Start()

			reply, err := c.Send(context.Background(), "hello")
			require.NoError(t, err)
			assert.Equal(t, tt.want, reply.Text)

			transcript := c.Transcript()
			require.Len(t, transcript, 3)
			assert.Equal(t, Message{Role: RoleBot, Text: tt.want}, transcript[2])
			assert.False(t, c.Busy())
		})
	}
}

func TestSendRejectsBlank(t *testing.T) {
	model := &fakeModel{reply: "x"}
	_, c := NewConversations(model, "", 0).Start()

	_, err := c.Send(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Len(t, c.Transcript(), 1)
	assert.Empty(t, model.prompts)
}

func TestSendWhileBusy(t *testing.T) {
	model := &fakeModel{reply: "done", block: make(chan struct{}), started: make(chan struct{})}
	_, c := NewConversations(model, "", 0).Start()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := c.Send(context.Background(), "first")
		assert.NoError(t, err)
	}()

	<-model.started
	assert.True(t, c.Busy())
	assert.Len(t, c.Transcript(), 2)

	_, err := c.Send(context.Background(), "second")
	assert.ErrorIs(t, err, ErrBusy)

	close(model.block)
	wg.Wait()

	assert.False(t, c.Busy())
	assert.Equal(t, "done", c.Transcript()[2].Text)
}

func TestSendRecoversFromModelPanic(t *testing.T) {
	model := &fakeModel{panics: true}
	_, c := NewConversations(model, "", 0).Start()

	reply, err := c.Send(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, FallbackOffline, reply.Text)
	assert.False(t, c.Busy())
	require.Len(t, c.Transcript(), 3)
	assert.Equal(t, Message{Role: RoleBot, Text: FallbackOffline}, c.Transcript()[2])

	model.panics = false
	model.reply = "back online"
	reply, err = c.Send(context.Background(), "again")
	require.NoError(t, err)
	assert.Equal(t, "back online", reply.Text)
}

func TestSendTimeoutFallsBack(t *testing.T) {
	model := &fakeModel{block: make(chan struct{})}
	_, c := NewConversations(model, "", 10*time.Millisecond).Start()

	reply, err := c.Send(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, FallbackOffline, reply.Text)
	assert.False(t, c.Busy())
}

func TestNewOpenAIModel(t *testing.T) {
	m, err := NewOpenAIModel("http://127.0.0.1:1/v1", "test-model", "")
	require.NoError(t, err)
	assert.NotNil(t, m)
}
