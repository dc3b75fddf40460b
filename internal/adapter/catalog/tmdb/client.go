package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"cinewise-api/internal/domain/movie"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	imageBaseURL   = "https://image.tmdb.org/t/p/"

	// Placeholders returned for catalog items without artwork
	posterPlaceholder   = "https://picsum.photos/500/750?grayscale"
	backdropPlaceholder = "https://picsum.photos/1920/1080?blur=10"

	defaultPosterSize   = "w500"
	defaultBackdropSize = "original"
)

// Config holds TMDB client configuration.
type Config struct {
	APIKey  string // Bearer token for TMDB API v4
	BaseURL string // Defaults to the public TMDB endpoint
}

// Client is an HTTP client for the TMDB movie catalog API.
// Only the first page of any listing is ever consumed.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a new TMDB catalog client.
func NewClient(cfg Config, log *zap.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// Trending returns this week's trending movies.
func (c *Client) Trending(ctx context.Context) (*movie.Page, error) {
	return c.getPage(ctx, "/trending/movie/week", nil)
}

// Upcoming returns movies with upcoming releases.
func (c *Client) Upcoming(ctx context.Context) (*movie.Page, error) {
	return c.getPage(ctx, "/movie/upcoming", nil)
}

// RecentReleases returns movies released within the last windowDays days,
// newest release first.
func (c *Client) RecentReleases(ctx context.Context, windowDays int) (*movie.Page, error) {
	if windowDays <= 0 {
		windowDays = 7
	}

	today := time.Now()
	from := today.AddDate(0, 0, -windowDays)

	q := url.Values{}
	q.Set("primary_release_date.gte", from.Format("2006-01-02"))
	q.Set("primary_release_date.lte", today.Format("2006-01-02"))
	q.Set("sort_by", "primary_release_date.desc")

	return c.getPage(ctx, "/discover/movie", q)
}

// Search returns the first page of movies matching the query.
func (c *Client) Search(ctx context.Context, query string) (*movie.Page, error) {
	q := url.Values{}
	q.Set("query", query)
	return c.getPage(ctx, "/search/movie", q)
}

// PosterURL maps a relative poster path to a fully qualified image URL.
// An empty path yields a fixed placeholder image.
func (c *Client) PosterURL(path, size string) string {
	if path == "" {
		return posterPlaceholder
	}
	if size == "" {
		size = defaultPosterSize
	}
	return imageBaseURL + size + path
}

// BackdropURL maps a relative backdrop path to a fully qualified image URL.
// An empty path yields a fixed placeholder image.
func (c *Client) BackdropURL(path, size string) string {
	if path == "" {
		return backdropPlaceholder
	}
	if size == "" {
		size = defaultBackdropSize
	}
	return imageBaseURL + size + path
}

// getPage performs an authenticated GET and decodes the standard TMDB listing
// response. Failures are returned uninterpreted; there is no retry.
func (c *Client) getPage(ctx context.Context, path string, query url.Values) (*movie.Page, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn("tmdb request failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return nil, fmt.Errorf("tmdb request failed: %s", resp.Status)
	}

	var page movie.Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode tmdb response: %w", err)
	}

	return &page, nil
}
