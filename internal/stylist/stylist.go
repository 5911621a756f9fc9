// Package stylist is the chat styling assistant. Each user message is sent
// once, with a fixed persona instruction, to a text generation model; the
// reply, or a fallback line when the call fails, is appended to the
// conversation transcript.
package stylist

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

const (
	Welcome = "Welcome to the Maison. I am your personal sartorial consultant. How may I refine your selection today?"

	// FallbackOffline replaces the reply when the model call fails
	FallbackOffline = "Service temporarily offline. Please try again shortly."
	// FallbackEmpty replaces the reply when the model returns no text
	FallbackEmpty = "I apologize, my creative processors are currently refreshing."

	persona = `You are a professional high-end South Asian fashion stylist for "Trendy ND Modern". ` +
		`Provide elegant, concise style advice for young professionals. User says: `
)

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrBusy         = errors.New("a reply is still pending")

	ErrConversationNotFound = errors.New("conversation not found")
)

// Role is who wrote a transcript message
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Message is one transcript line
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Model is the part of a langchaingo model the stylist uses
type Model interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// Prompt is the single prompt sent for a user message
func Prompt(userMessage string) string {
	return persona + userMessage
}

// Conversation is one chat transcript
type Conversation struct {
	mu         sync.Mutex
	model      Model
	modelName  string
	timeout    time.Duration
	transcript []Message
	busy       bool
}

// Transcript returns a copy of the messages so far
func (c *Conversation) Transcript() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Message, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// Busy reports whether a reply is outstanding
func (c *Conversation) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Send appends text as a user message, asks the model, and appends the bot
// reply. Model failures never surface as errors: they become a fallback
// reply. Only blank input and sending while busy are rejected.
func (c *Conversation) Send(ctx context.Context, text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return Message{}, ErrBusy
	}
	c.busy = true
	c.transcript = append(c.transcript, Message{Role: RoleUser, Text: text})
	c.mu.Unlock()

	reply := Message{Role: RoleBot, Text: FallbackOffline}
	defer func() {
		c.mu.Lock()
		c.transcript = append(c.transcript, reply)
		c.busy = false
		c.mu.Unlock()
	}()

	// the lock is not held during the call so the transcript stays readable
	reply.Text = c.ask(ctx, text)
	return reply, nil
}

func (c *Conversation) ask(ctx context.Context, text string) (reply string) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error("Stylist model panicked", zap.Any("panic", r))
			prometheus.RecordStylistReply("error")
			reply = FallbackOffline
		}
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var opts []llms.CallOption
	if c.modelName != "" {
		opts = append(opts, llms.WithModel(c.modelName))
	}

	resp, err := c.model.GenerateContent(ctx,
		[]llms.MessageContent{llms.TextParts(schema.ChatMessageTypeHuman, Prompt(text))},
		opts...,
	)
	if err != nil {
		log.Warn("Stylist request failed", zap.Error(err))
		prometheus.RecordStylistReply("error")
		return FallbackOffline
	}

	reply = firstChoice(resp)
	if strings.TrimSpace(reply) == "" {
		prometheus.RecordStylistReply("empty")
		return FallbackEmpty
	}
	prometheus.RecordStylistReply("reply")
	return reply
}

func firstChoice(resp *llms.ContentResponse) string {
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return ""
	}
	return resp.Choices[0].Content
}
