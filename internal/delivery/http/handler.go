package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Darlene250/amazon-explorer/config"
	"github.com/Darlene250/amazon-explorer/internal/domain"
	"github.com/Darlene250/amazon-explorer/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	explorer *usecase.ExplorerService
	sessions *usecase.SessionService
}

// NewHandler creates a new HTTP handler
func NewHandler(explorer *usecase.ExplorerService, sessions *usecase.SessionService) *Handler {
	return &Handler{
		explorer: explorer,
		sessions: sessions,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "amazon-explorer",
		"version": "1.0.0",
	})
}

// Meta returns the dropdown data the search form is populated with.
func (h *Handler) Meta(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"countries":   config.Countries,
		"sortOptions": config.SortOptions,
	})
}

type loginRequest struct {
	Name   string `json:"name"`
	APIKey string `json:"apiKey"`
}

// Login creates the session. An empty API key falls back to the configured
// default key.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sess, err := h.sessions.Login(c.Request.Context(), req.Name, req.APIKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": sess.Name})
}

// GetSession restores the persisted session, deciding whether the client
// shows the authenticated view or the login view.
func (h *Handler) GetSession(c *gin.Context) {
	sess, err := h.sessions.Restore(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": sess.Name})
}

// Logout clears the session and any rendered results.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear session"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Search runs one search submission for the logged-in user and returns the
// resulting view state with its card list.
func (h *Handler) Search(c *gin.Context) {
	sess, err := h.sessions.Restore(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	var query domain.SearchQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if query.Country == "" {
		query.Country = "US"
	}
	if query.SortBy == "" {
		query.SortBy = "RELEVANCE"
	}
	if !config.IsSupportedCountry(query.Country) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported country: " + query.Country})
		return
	}
	if !config.IsSupportedSort(query.SortBy) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported sort option: " + query.SortBy})
		return
	}

	outcome := h.explorer.Search(c.Request.Context(), query, sess.APIKey)

	resp := gin.H{"state": outcome.State}
	if outcome.Message != "" {
		resp["message"] = outcome.Message
	}
	if outcome.State == domain.ViewResults || outcome.State == domain.ViewEmpty {
		resp["products"] = RenderCards(outcome.Products)
		resp["fromCache"] = outcome.FromCache
	}
	c.JSON(http.StatusOK, resp)
}

// GetDetails returns the detail overlay representation for one ASIN.
func (h *Handler) GetDetails(c *gin.Context) {
	sess, err := h.sessions.Restore(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	asin := c.Param("asin")
	country := c.DefaultQuery("country", "US")

	detail, fromCache, err := h.explorer.GetDetails(c.Request.Context(), asin, country, sess.APIKey)
	if err != nil {
		if errors.Is(err, domain.ErrDetailsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Details not available."})
			return
		}
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ASIN"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error loading details."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"detail":    RenderDetail(detail),
		"fromCache": fromCache,
	})
}

// GetState reports the current view state and what it displays, letting a
// reloading client repaint without a new search.
func (h *Handler) GetState(c *gin.Context) {
	products, message := h.explorer.LastResults()

	resp := gin.H{"state": h.explorer.State()}
	if message != "" {
		resp["message"] = message
	}
	if len(products) > 0 {
		resp["products"] = RenderCards(products)
	}
	c.JSON(http.StatusOK, resp)
}
