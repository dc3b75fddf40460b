package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"cinewise-api/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client, mr
}

func setupLimitedRouter(cfg config.RateLimitConfig, client *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(RateLimiter(cfg, client))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func ping(r http.Handler) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_WithinBurst(t *testing.T) {
	client, _ := setupTestRedis(t)

	r := setupLimitedRouter(config.RateLimitConfig{
		RequestsPerSecond: 10,
		BurstCapacity:     10,
		Enabled:           true,
	}, client)

	// 5 requests, all within the burst of 10
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, ping(r))
	}
}

func TestRateLimiter_ExceedBurst(t *testing.T) {
	client, _ := setupTestRedis(t)

	r := setupLimitedRouter(config.RateLimitConfig{
		RequestsPerSecond: 1,
		BurstCapacity:     3,
		Enabled:           true,
	}, client)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, ping(r))
	}

	// Bucket drained and no time has passed, so the next request is rejected
	assert.Equal(t, http.StatusTooManyRequests, ping(r))
}

func TestRateLimiter_Disabled(t *testing.T) {
	client, _ := setupTestRedis(t)

	r := setupLimitedRouter(config.RateLimitConfig{
		RequestsPerSecond: 1,
		BurstCapacity:     1,
		Enabled:           false,
	}, client)

	// Disabled limiter never rejects
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, ping(r))
	}
}

func TestRateLimiter_FailOpenOnRedisError(t *testing.T) {
	client, mr := setupTestRedis(t)

	r := setupLimitedRouter(config.RateLimitConfig{
		RequestsPerSecond: 1,
		BurstCapacity:     1,
		Enabled:           true,
	}, client)

	mr.Close()

	// A broken limiter must not take the API down
	assert.Equal(t, http.StatusOK, ping(r))
}
