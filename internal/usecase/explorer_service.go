package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/Darlene250/amazon-explorer/internal/domain"
	"github.com/Darlene250/amazon-explorer/internal/infrastructure/cache"
)

// GenericErrorMessage is shown when the API supplies no failure message.
const GenericErrorMessage = "Failed to fetch data. Check your API Key or try again."

const (
	searchNamespace  = "search"
	detailsNamespace = "details"
)

// SearchOutcome is the result of one search submission: the view state it
// settled in plus whatever that state displays.
type SearchOutcome struct {
	State     domain.ViewState
	Products  []domain.Product
	Message   string
	FromCache bool
	// Stale is set when a newer submission superseded this one while its
	// response was in flight; the displayed state was left untouched.
	Stale bool
}

// ExplorerService orchestrates search and detail lookups: cache first, then
// the Amazon API, with every outcome projected onto the view state machine.
type ExplorerService struct {
	cache  domain.CacheRepository
	client domain.AmazonClient
	state  *ViewStateMachine

	mu           sync.Mutex
	generation   uint64
	lastProducts []domain.Product
	lastMessage  string
}

// NewExplorerService creates the service with its dependencies.
func NewExplorerService(cacheRepo domain.CacheRepository, client domain.AmazonClient) *ExplorerService {
	return &ExplorerService{
		cache:  cacheRepo,
		client: client,
		state:  NewViewStateMachine(),
	}
}

// Search runs one search submission. A blank query is silently ignored: no
// request is issued and the displayed state does not change. Otherwise the
// flow is loading -> cache check -> (on miss) API call -> results/empty/error.
// The cache check always completes before any network call for the same
// submission. Each submission is stamped with a generation; a response whose
// generation has been superseded by a newer submission is discarded instead
// of overwriting newer state.
func (s *ExplorerService) Search(ctx context.Context, query domain.SearchQuery, apiKey string) *SearchOutcome {
	if strings.TrimSpace(query.Query) == "" {
		return &SearchOutcome{State: s.state.Current()}
	}

	gen := s.beginSearch()
	key := cache.GenerateKey(searchNamespace, query.CacheParams())

	var products []domain.Product
	if err := s.cache.Get(ctx, key, &products); err == nil {
		log.Printf("[EXPLORER] Serving search from cache: %q", query.Query)
		return s.completeSearch(gen, products, "", true)
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		log.Printf("[EXPLORER] Cache read error: %v", err)
	}

	products, err := s.client.Search(ctx, query, apiKey)
	if err != nil {
		return s.failSearch(gen, displayMessage(err))
	}

	s.cache.Save(ctx, key, products)
	return s.completeSearch(gen, products, "", false)
}

// GetDetails looks up one product, cache first. Failures do not touch the
// results view state; the detail overlay reports them on its own.
func (s *ExplorerService) GetDetails(ctx context.Context, asin, country, apiKey string) (domain.ProductDetail, bool, error) {
	if strings.TrimSpace(asin) == "" {
		return nil, false, domain.ErrInvalidRequest
	}

	key := cache.GenerateKey(detailsNamespace, map[string]string{
		"asin":    asin,
		"country": country,
	})

	var detail domain.ProductDetail
	if err := s.cache.Get(ctx, key, &detail); err == nil {
		log.Printf("[EXPLORER] Serving details from cache: %s", asin)
		return detail, true, nil
	}

	detail, err := s.client.GetDetails(ctx, asin, country, apiKey)
	if err != nil {
		return nil, false, err
	}

	s.cache.Save(ctx, key, detail)
	return detail, false, nil
}

// State returns the currently displayed view state.
func (s *ExplorerService) State() domain.ViewState {
	return s.state.Current()
}

// LastResults returns what the current state displays: the rendered product
// list and the error message, either of which may be empty.
func (s *ExplorerService) LastResults() ([]domain.Product, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastProducts, s.lastMessage
}

// Reset clears the rendered results and returns the view to idle. Called on
// logout.
func (s *ExplorerService) Reset() {
	s.mu.Lock()
	s.lastProducts = nil
	s.lastMessage = ""
	s.generation++
	s.mu.Unlock()
	s.state.Reset()
}

func (s *ExplorerService) beginSearch() uint64 {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state.Set(domain.ViewLoading)
	s.mu.Unlock()
	return gen
}

func (s *ExplorerService) completeSearch(gen uint64, products []domain.Product, message string, fromCache bool) *SearchOutcome {
	state := domain.ViewResults
	if len(products) == 0 {
		state = domain.ViewEmpty
	}

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return &SearchOutcome{State: s.state.Current(), Stale: true}
	}
	s.lastProducts = products
	s.lastMessage = message
	s.state.Set(state)
	s.mu.Unlock()

	return &SearchOutcome{State: state, Products: products, FromCache: fromCache}
}

func (s *ExplorerService) failSearch(gen uint64, message string) *SearchOutcome {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return &SearchOutcome{State: s.state.Current(), Stale: true}
	}
	s.lastProducts = nil
	s.lastMessage = message
	s.state.Set(domain.ViewError)
	s.mu.Unlock()

	return &SearchOutcome{State: domain.ViewError, Message: message}
}

// displayMessage prefers the server-supplied failure message and falls back
// to the generic one for transport errors and silent failures.
func displayMessage(err error) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return GenericErrorMessage
}
