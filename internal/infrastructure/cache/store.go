// Package cache provides a TTL cache layered over the persistent key-value
// store, plus deterministic cache-key derivation.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Darlene250/amazon-explorer/internal/domain"
)

// envelope wraps a cached payload with its storage timestamp.
type envelope struct {
	StoredAt time.Time       `json:"storedAt"`
	Payload  json.RawMessage `json:"payload"`
}

// Store is a TTL cache over a persistent key-value store. Entries are valid
// while now - storedAt <= TTL; expired entries are purged on the read that
// finds them. There is no eviction beyond expiry.
type Store struct {
	kv  domain.KeyValueStore
	ttl time.Duration
	now func() time.Time
}

// NewStore creates a cache with the given TTL. A zero TTL falls back to 24h.
func NewStore(kv domain.KeyValueStore, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{
		kv:  kv,
		ttl: ttl,
		now: time.Now,
	}
}

// Save writes payload under key. Caching is best-effort: failures are logged
// and swallowed so they never block the primary flow.
func (s *Store) Save(ctx context.Context, key string, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[CACHE] Marshal failed for key %q: %v", key, err)
		return
	}
	entry, err := json.Marshal(envelope{StoredAt: s.now(), Payload: raw})
	if err != nil {
		log.Printf("[CACHE] Marshal failed for key %q: %v", key, err)
		return
	}
	if err := s.kv.Set(ctx, key, entry); err != nil {
		log.Printf("[CACHE] Write failed for key %q: %v", key, err)
	}
}

// Get unmarshals the cached payload for key into out. It returns
// domain.ErrCacheMiss when the entry is absent, expired, or unreadable;
// expired and corrupt entries are deleted on the way out.
func (s *Store) Get(ctx context.Context, key string, out interface{}) error {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		return domain.ErrCacheMiss
	}

	var entry envelope
	if err := json.Unmarshal(raw, &entry); err != nil {
		// Corrupt entry: drop it and fall through to a live fetch.
		_ = s.kv.Delete(ctx, key)
		return domain.ErrCacheMiss
	}

	if s.now().Sub(entry.StoredAt) > s.ttl {
		_ = s.kv.Delete(ctx, key)
		return domain.ErrCacheMiss
	}

	if err := json.Unmarshal(entry.Payload, out); err != nil {
		_ = s.kv.Delete(ctx, key)
		return domain.ErrCacheMiss
	}
	return nil
}

// Delete removes the entry for key.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.kv.Delete(ctx, key)
}

// PurgeExpired walks every stored entry and removes the expired ones. It is
// an operator utility; nothing schedules it.
func (s *Store) PurgeExpired(ctx context.Context) (int, error) {
	keys, err := s.kv.Keys(ctx, "")
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, key := range keys {
		raw, err := s.kv.Get(ctx, key)
		if err != nil {
			continue
		}
		var entry envelope
		if err := json.Unmarshal(raw, &entry); err != nil || entry.StoredAt.IsZero() {
			// Not a cache envelope (e.g. the session record); leave it.
			continue
		}
		if s.now().Sub(entry.StoredAt) > s.ttl {
			if err := s.kv.Delete(ctx, key); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
