package session

import (
	"context"
	"sync"
	"time"

	apperr "github.com/characterforge/characterforge/internal/errors"
	"github.com/characterforge/characterforge/internal/uuid"
)

type inMemorySession struct {
	userID    string
	expiresAt time.Time
}

// inMemoryStore implements Store with an in-process map. Expired entries are
// dropped lazily on resolve.
type inMemoryStore struct {
	mu          sync.Mutex
	sessions    map[string]inMemorySession
	idGenerator uuid.Generator
	ttl         time.Duration
	now         func() time.Time
}

type InMemoryConfig struct {
	IDGenerator uuid.Generator
	TTL         time.Duration

	// Now overrides the clock in tests
	Now func() time.Time
}

// NewInMemory creates an in-memory session store
func NewInMemory(cfg *InMemoryConfig) Store {
	if cfg == nil {
		panic("session config cannot be nil")
	}
	if cfg.IDGenerator == nil {
		panic("session store requires an ID generator")
	}
	if cfg.TTL <= 0 {
		panic("session TTL must be positive")
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &inMemoryStore{
		sessions:    make(map[string]inMemorySession),
		idGenerator: cfg.IDGenerator,
		ttl:         cfg.TTL,
		now:         now,
	}
}

func (s *inMemoryStore) Create(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", apperr.InvalidArgument("user ID is required")
	}

	token := s.idGenerator.New()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = inMemorySession{
		userID:    userID,
		expiresAt: s.now().Add(s.ttl),
	}
	return token, nil
}

func (s *inMemoryStore) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", apperr.Unauthenticated("no session token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return "", apperr.Unauthenticated("session expired or unknown")
	}
	if s.now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return "", apperr.Unauthenticated("session expired or unknown")
	}

	return sess.userID, nil
}

func (s *inMemoryStore) Destroy(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

func (s *inMemoryStore) DestroyAllForUser(ctx context.Context, userID string) error {
	if userID == "" {
		return apperr.InvalidArgument("user ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for token, sess := range s.sessions {
		if sess.userID == userID {
			delete(s.sessions, token)
		}
	}
	return nil
}
