// Package session persists the single active user session in the key-value
// store under a fixed application-namespaced key.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Darlene250/amazon-explorer/internal/domain"
)

// storageKey matches the single slot the app owns for its session record.
const storageKey = "amazon_app_user"

// Store reads and writes the persisted session.
type Store struct {
	kv domain.KeyValueStore
}

// NewStore creates a session store over the given key-value store.
func NewStore(kv domain.KeyValueStore) *Store {
	return &Store{kv: kv}
}

// Save persists session, replacing any previous one.
func (s *Store) Save(ctx context.Context, sess domain.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.kv.Set(ctx, storageKey, raw); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Load returns the persisted session, or domain.ErrNoSession when none is
// stored or the record is unreadable.
func (s *Store) Load(ctx context.Context) (domain.Session, error) {
	raw, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		return domain.Session{}, domain.ErrNoSession
	}
	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return domain.Session{}, domain.ErrNoSession
	}
	return sess, nil
}

// Clear removes the persisted session.
func (s *Store) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, storageKey)
}
