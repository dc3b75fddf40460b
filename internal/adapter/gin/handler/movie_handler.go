package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cinewise-api/internal/domain/movie"
)

// Catalog is the slice of the movie catalog the HTTP surface exposes.
type Catalog interface {
	Trending(ctx context.Context) (*movie.Page, error)
	Upcoming(ctx context.Context) (*movie.Page, error)
	RecentReleases(ctx context.Context, windowDays int) (*movie.Page, error)
	Search(ctx context.Context, query string) (*movie.Page, error)
}

const defaultRecentWindowDays = 7

// MovieHandler proxies catalog browsing and search requests
type MovieHandler struct {
	catalog Catalog
	log     *zap.Logger
}

// NewMovieHandler creates a new MovieHandler instance
func NewMovieHandler(catalog Catalog, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		catalog: catalog,
		log:     log,
	}
}

// catalogError reports an upstream catalog failure as a 502
func (h *MovieHandler) catalogError(c *gin.Context) {
	c.JSON(http.StatusBadGateway, ErrorResponse{
		Error:   "upstream_error",
		Message: "movie catalog is unavailable",
	})
}

// Trending handles GET /v1/movies/trending
func (h *MovieHandler) Trending(c *gin.Context) {
	page, err := h.catalog.Trending(c.Request.Context())
	if err != nil {
		h.log.Error("Trending lookup failed", zap.Error(err))
		h.catalogError(c)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Upcoming handles GET /v1/movies/upcoming
func (h *MovieHandler) Upcoming(c *gin.Context) {
	page, err := h.catalog.Upcoming(c.Request.Context())
	if err != nil {
		h.log.Error("Upcoming lookup failed", zap.Error(err))
		h.catalogError(c)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Recent handles GET /v1/movies/recent
func (h *MovieHandler) Recent(c *gin.Context) {
	days := defaultRecentWindowDays
	if s := c.Query("days"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed < 1 || parsed > 365 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_input",
				Message: "days must be between 1 and 365",
			})
			return
		}
		days = parsed
	}

	page, err := h.catalog.RecentReleases(c.Request.Context(), days)
	if err != nil {
		h.log.Error("Recent releases lookup failed", zap.Error(err))
		h.catalogError(c)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Search handles GET /v1/movies/search
func (h *MovieHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_input",
			Message: "query parameter is required",
		})
		return
	}

	h.log.Info("Movie search request", zap.String("query", query))

	page, err := h.catalog.Search(c.Request.Context(), query)
	if err != nil {
		h.log.Error("Movie search failed", zap.String("query", query), zap.Error(err))
		h.catalogError(c)
		return
	}

	c.JSON(http.StatusOK, page)
}
