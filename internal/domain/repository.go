package domain

import "context"

// KeyValueStore is the persistent string-keyed store backing both the cache
// and the session record. Values survive process restarts.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// CacheRepository defines the interface for TTL-bounded caching operations.
// Save is best-effort: a failed write is logged, never surfaced.
type CacheRepository interface {
	Save(ctx context.Context, key string, payload interface{})
	Get(ctx context.Context, key string, out interface{}) error
	Delete(ctx context.Context, key string) error
}

// AmazonClient defines the interface for the two Amazon API operations.
type AmazonClient interface {
	Search(ctx context.Context, query SearchQuery, apiKey string) ([]Product, error)
	GetDetails(ctx context.Context, asin, country, apiKey string) (ProductDetail, error)
}

// SessionRepository persists the single active session.
type SessionRepository interface {
	Save(ctx context.Context, session Session) error
	Load(ctx context.Context) (Session, error)
	Clear(ctx context.Context) error
}
