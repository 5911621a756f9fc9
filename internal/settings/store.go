package settings

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"

	"storefront-service/internal/model"
	"storefront-service/internal/storage"
)

var (
	ErrPhoneRequired = errors.New("whatsapp number is required")
	ErrEmailRequired = errors.New("admin email is required")
)

// Hook receives the settings after every update
type Hook func(ctx context.Context, s model.Settings)

// Store holds the store contact settings
type Store struct {
	mu       sync.RWMutex
	current  model.Settings
	onChange Hook
}

// NewStore creates a settings store holding initial
func NewStore(initial model.Settings, onChange Hook) *Store {
	return &Store{current: initial, onChange: onChange}
}

// Open loads settings from s, falling back to defaults when absent or
// unparsable, and persists every later update back to s.
func Open(ctx context.Context, s storage.Storage, defaults model.Settings) *Store {
	p := storage.NewPersister[model.Settings](s, storage.KeySettings)
	return NewStore(p.Load(ctx, defaults), Hook(p.Hook()))
}

// Get returns the current settings
func (s *Store) Get() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update replaces both fields
func (s *Store) Update(ctx context.Context, next model.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = next
	if s.onChange != nil {
		s.onChange(ctx, next)
	}
}

// Validate applies the settings form's required-field rules
func Validate(s model.Settings) error {
	if strings.TrimSpace(s.WhatsAppNumber) == "" {
		return ErrPhoneRequired
	}
	if strings.TrimSpace(s.AdminEmail) == "" {
		return ErrEmailRequired
	}
	return nil
}

// Links are the outbound contact links built from the settings
type Links struct {
	WhatsApp string `json:"whatsapp"`
	Mailto   string `json:"mailto"`
}

// LinksFor builds the outbound links for s
func LinksFor(s model.Settings) Links {
	return Links{
		WhatsApp: WhatsAppLink(s.WhatsAppNumber),
		Mailto:   MailtoLink(s.AdminEmail),
	}
}

// WhatsAppLink is the messaging deep-link for phone
func WhatsAppLink(phone string) string {
	return "https://wa.me/" + phone
}

// InquiryLink is the messaging deep-link with a product inquiry prefilled
func InquiryLink(phone, productName string) string {
	q := url.Values{}
	q.Set("text", "Inquiry: "+productName)
	return WhatsAppLink(phone) + "?" + q.Encode()
}

// MailtoLink is the mail link for email
func MailtoLink(email string) string {
	return "mailto:" + email
}
