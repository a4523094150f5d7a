package domain

import "errors"

var (
	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrKeyNotFound is returned when a key is absent from the key-value store
	ErrKeyNotFound = errors.New("key not found")

	// ErrEmptyQuery is returned when a search is submitted with a blank query
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrAmazonAPIFailure is returned when the Amazon API request fails at
	// the transport level or returns an unusable body
	ErrAmazonAPIFailure = errors.New("Amazon API request failed")

	// ErrDetailsNotFound is returned when the details endpoint responds
	// without a data object for the requested ASIN
	ErrDetailsNotFound = errors.New("product details not available")

	// ErrNoSession is returned when no session record is persisted
	ErrNoSession = errors.New("no session stored")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)

// APIError carries an application-level failure message supplied by the
// Amazon API (status != OK). It unwraps to ErrAmazonAPIFailure so callers
// can match the whole failure class with errors.Is.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return ErrAmazonAPIFailure.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return ErrAmazonAPIFailure
}
