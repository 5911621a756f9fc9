package stylist

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Conversations holds live transcripts by id. They are not persisted.
type Conversations struct {
	mu        sync.RWMutex
	model     Model
	modelName string
	timeout   time.Duration
	byID      map[string]*Conversation
	newID     func() string
}

// NewConversations creates a registry whose conversations use model.
// timeout bounds each model call; zero means no bound.
func NewConversations(model Model, modelName string, timeout time.Duration) *Conversations {
	return &Conversations{
		model:     model,
		modelName: modelName,
		timeout:   timeout,
		byID:      make(map[string]*Conversation),
		newID:     func() string { return uuid.New().String() },
	}
}

// Start opens a conversation seeded with the welcome message
func (r *Conversations) Start() (string, *Conversation) {
	c := &Conversation{
		model:      r.model,
		modelName:  r.modelName,
		timeout:    r.timeout,
		transcript: []Message{{Role: RoleBot, Text: Welcome}},
	}
	id := r.newID()

	r.mu.Lock()
	r.byID[id] = c
	r.mu.Unlock()
	return id, c
}

// Get returns the conversation with id
func (r *Conversations) Get(id string) (*Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, ErrConversationNotFound
	}
	return c, nil
}
