// Package admin implements the catalog management console: the unlock
// gate, console sessions, inventory statistics and the product form.
package admin

import (
	"errors"
	"sync"

	"storefront-service/prometheus"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAccessDenied         = errors.New("access denied: credential mismatch")
	ErrSessionNotFound      = errors.New("admin session not found")
	ErrConfirmationRequired = errors.New("deletion must be confirmed")
)

// Verifier decides whether user input grants console access
type Verifier interface {
	Verify(input string) bool
}

// SecretVerifier grants access when the input equals a shared secret
// exactly. It is a demo gate, not authentication.
type SecretVerifier struct {
	Secret string
}

func (v SecretVerifier) Verify(input string) bool {
	return v.Secret != "" && input == v.Secret
}

// BcryptVerifier grants access when the input matches a bcrypt hash of the
// secret, so the plain secret need not sit in the environment.
type BcryptVerifier struct {
	Hash string
}

func (v BcryptVerifier) Verify(input string) bool {
	if v.Hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(v.Hash), []byte(input)) == nil
}

// HashSecret returns the bcrypt hash BcryptVerifier expects
func HashSecret(secret string) (string, error) {
	if secret == "" {
		return "", errors.New("secret must not be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// State is the console lock state
type State int

const (
	Locked State = iota
	Unlocked
)

func (s State) String() string {
	if s == Unlocked {
		return "unlocked"
	}
	return "locked"
}

// Console is the LOCKED -> UNLOCKED -> LOCKED state machine
type Console struct {
	mu       sync.Mutex
	state    State
	verifier Verifier
}

// NewConsole creates a locked console
func NewConsole(v Verifier) *Console {
	return &Console{verifier: v}
}

// Unlock transitions to UNLOCKED when input verifies. A mismatch returns
// ErrAccessDenied and leaves the state unchanged.
func (c *Console) Unlock(input string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.verifier.Verify(input) {
		prometheus.RecordAdminUnlock(false)
		return ErrAccessDenied
	}
	prometheus.RecordAdminUnlock(true)
	c.state = Unlocked
	return nil
}

// Lock exits the console
func (c *Console) Lock() {
	c.mu.Lock()
	c.state = Locked
	c.mu.Unlock()
}

// State returns the current state
func (c *Console) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Sessions tracks unlocked consoles by session id
type Sessions struct {
	mu       sync.RWMutex
	verifier Verifier
	consoles map[string]*Console
	newID    func() string
}

// NewSessions creates a session table gated by v
func NewSessions(v Verifier) *Sessions {
	return &Sessions{
		verifier: v,
		consoles: make(map[string]*Console),
		newID:    func() string { return uuid.New().String() },
	}
}

// Open unlocks a fresh console with input and returns its session id
func (s *Sessions) Open(input string) (string, error) {
	c := NewConsole(s.verifier)
	if err := c.Unlock(input); err != nil {
		return "", err
	}

	id := s.newID()
	s.mu.Lock()
	s.consoles[id] = c
	s.mu.Unlock()
	return id, nil
}

// Close locks the console and forgets the session
func (s *Sessions) Close(id string) error {
	s.mu.Lock()
	c, ok := s.consoles[id]
	delete(s.consoles, id)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	c.Lock()
	return nil
}

// Active reports whether id names an unlocked console
func (s *Sessions) Active(id string) bool {
	s.mu.RLock()
	c, ok := s.consoles[id]
	s.mu.RUnlock()
	return ok && c.State() == Unlocked
}
