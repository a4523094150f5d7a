package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/Darlene250/amazon-explorer/internal/domain"
)

// SessionService handles login, logout and session restore.
type SessionService struct {
	sessions   domain.SessionRepository
	explorer   *ExplorerService
	defaultKey string
}

// NewSessionService creates the service. defaultKey is substituted when a
// user logs in without supplying an API key.
func NewSessionService(sessions domain.SessionRepository, explorer *ExplorerService, defaultKey string) *SessionService {
	return &SessionService{
		sessions:   sessions,
		explorer:   explorer,
		defaultKey: defaultKey,
	}
}

// Login creates and persists a session. An empty API key falls back to the
// configured default key.
func (s *SessionService) Login(ctx context.Context, name, apiKey string) (domain.Session, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		apiKey = s.defaultKey
	}

	sess := domain.Session{
		Name:   strings.TrimSpace(name),
		APIKey: apiKey,
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return domain.Session{}, err
	}

	log.Printf("[SESSION] Logged in: %q", sess.Name)
	return sess, nil
}

// Restore returns the persisted session, or domain.ErrNoSession.
func (s *SessionService) Restore(ctx context.Context) (domain.Session, error) {
	return s.sessions.Load(ctx)
}

// Logout clears the persisted session and any rendered results, returning
// the UI to the unauthenticated view.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	if s.explorer != nil {
		s.explorer.Reset()
	}
	log.Printf("[SESSION] Logged out")
	return nil
}
