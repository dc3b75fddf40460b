package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"cinewise-api/internal/adapter/cache"
	"cinewise-api/internal/adapter/db/postgres"
	ginhandler "cinewise-api/internal/adapter/gin/handler"
	ginrouter "cinewise-api/internal/adapter/gin/router"
	"cinewise-api/internal/adapter/recommend/gemini"
	"cinewise-api/internal/adapter/repository/cached"
	"cinewise-api/internal/config"
	"cinewise-api/internal/usecase/recommend"
	"cinewise-api/internal/usecase/user"
)

// APIIntegrationTestSuite exercises the full HTTP stack against an in-memory
// SQLite store, a miniredis-backed cache and a stubbed recommendation backend.
type APIIntegrationTestSuite struct {
	suite.Suite
	server      *httptest.Server
	geminiStub  *httptest.Server
	redisServer *miniredis.Miniredis
	httpClient  *http.Client
}

func (suite *APIIntegrationTestSuite) SetupSuite() {
	logger := zaptest.NewLogger(suite.T())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)
	suite.Require().NoError(db.AutoMigrate(&postgres.UserSchema{}))

	suite.redisServer = miniredis.RunT(suite.T())
	redisClient := goredis.NewClient(&goredis.Options{Addr: suite.redisServer.Addr()})
	userCache := cache.NewRedisUserCache(redisClient, time.Minute, logger)

	repo := cached.NewCachedUserRepository(postgres.NewUserRepoPG(db, logger), userCache, logger)
	userUC := user.New(repo, logger)

	// Stubbed recommendation backend returning a fixed suggestion list
	suite.geminiStub = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		text := `[{"title":"Blade Runner","reason":"Moody sci-fi noir","year":"1982"}]`
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]interface{}{{"text": text}},
				}},
			},
		})
	}))

	generator := gemini.NewClient(gemini.Config{APIKey: "test", BaseURL: suite.geminiStub.URL}, logger)
	recommendUC := recommend.New(generator, logger)

	handlers := ginrouter.Handlers{
		Account:   ginhandler.NewAccountHandler(userUC, logger),
		Watchlist: ginhandler.NewWatchlistHandler(userUC, logger),
		History:   ginhandler.NewHistoryHandler(userUC, logger),
		Movie:     ginhandler.NewMovieHandler(nil, logger),
		Recommend: ginhandler.NewRecommendHandler(userUC, recommendUC, logger),
	}
	router := ginrouter.SetupRouter(handlers, config.RateLimitConfig{}, nil, logger)

	suite.server = httptest.NewServer(router)
	suite.httpClient = &http.Client{Timeout: 10 * time.Second}
}

func (suite *APIIntegrationTestSuite) TearDownSuite() {
	suite.server.Close()
	suite.geminiStub.Close()
}

func (suite *APIIntegrationTestSuite) makeRequest(method, endpoint string, body interface{}) (*http.Response, error) {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, suite.server.URL+endpoint, reqBody)
	suite.Require().NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return suite.httpClient.Do(req)
}

func (suite *APIIntegrationTestSuite) decode(resp *http.Response) map[string]interface{} {
	defer func() { _ = resp.Body.Close() }()
	var out map[string]interface{}
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// signup registers a fresh account and returns its ID.
func (suite *APIIntegrationTestSuite) signup(email, name, password string) string {
	resp, err := suite.makeRequest("POST", "/v1/signup", map[string]interface{}{
		"email":    email,
		"name":     name,
		"password": password,
	})
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusCreated, resp.StatusCode)

	body := suite.decode(resp)
	id, ok := body["id"].(string)
	suite.Require().True(ok)
	return id
}

func (suite *APIIntegrationTestSuite) TestSignupAndLogin() {
	suite.signup("marge@example.com", "Marge", "donuts")

	// Duplicate signup is rejected
	resp, err := suite.makeRequest("POST", "/v1/signup", map[string]interface{}{
		"email":    "marge@example.com",
		"name":     "Marge Again",
		"password": "other",
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	// Login with the right password echoes the stored record
	resp, err = suite.makeRequest("POST", "/v1/login", map[string]interface{}{
		"email":    "marge@example.com",
		"password": "donuts",
	})
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, resp.StatusCode)
	body := suite.decode(resp)
	assert.Equal(suite.T(), "donuts", body["password"])

	// Wrong password
	resp, err = suite.makeRequest("POST", "/v1/login", map[string]interface{}{
		"email":    "marge@example.com",
		"password": "wrong",
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()

	// Unknown account
	resp, err = suite.makeRequest("POST", "/v1/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "donuts",
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func (suite *APIIntegrationTestSuite) TestWatchlistLifecycle() {
	id := suite.signup("homer@example.com", "Homer", "doh")

	movie := map[string]interface{}{
		"id":           603,
		"title":        "The Matrix",
		"overview":     "A hacker discovers reality is a simulation",
		"poster_path":  "/matrix.jpg",
		"release_date": "1999-03-31",
		"vote_average": 8.2,
	}

	// Add, then add the same movie again: the second call is a no-op
	for range 2 {
		resp, err := suite.makeRequest("POST", "/v1/watchlist/"+id, map[string]interface{}{"movie": movie})
		suite.Require().NoError(err)
		suite.Require().Equal(http.StatusOK, resp.StatusCode)
		body := suite.decode(resp)
		assert.Len(suite.T(), body["watchlist"], 1)
	}

	// Read it back
	resp, err := suite.makeRequest("GET", "/v1/watchlist/"+id, nil)
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, resp.StatusCode)
	body := suite.decode(resp)
	entries := body["watchlist"].([]interface{})
	suite.Require().Len(entries, 1)
	entry := entries[0].(map[string]interface{})
	assert.Equal(suite.T(), "The Matrix", entry["title"])
	assert.NotZero(suite.T(), entry["savedAt"])

	// Remove it
	resp, err = suite.makeRequest("DELETE", fmt.Sprintf("/v1/watchlist/%s/603", id), nil)
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, resp.StatusCode)
	body = suite.decode(resp)
	assert.Empty(suite.T(), body["watchlist"])

	// Mutating an unknown account fails
	resp, err = suite.makeRequest("POST", "/v1/watchlist/missing-id", map[string]interface{}{"movie": movie})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	// Reading an unknown account degrades to an empty list
	resp, err = suite.makeRequest("GET", "/v1/watchlist/missing-id", nil)
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, resp.StatusCode)
	body = suite.decode(resp)
	assert.Empty(suite.T(), body["watchlist"])
}

func (suite *APIIntegrationTestSuite) TestSearchHistory() {
	id := suite.signup("lisa@example.com", "Lisa", "sax")

	for i := 1; i <= 12; i++ {
		resp, err := suite.makeRequest("POST", "/v1/search/"+id, map[string]interface{}{
			"query": fmt.Sprintf("movie %02d", i),
		})
		suite.Require().NoError(err)
		suite.Require().Equal(http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	}

	resp, err := suite.makeRequest("GET", "/v1/search/"+id, nil)
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, resp.StatusCode)
	body := suite.decode(resp)

	history := body["history"].([]interface{})
	// Capped at the ten most recent, newest first
	suite.Require().Len(history, 10)
	first := history[0].(map[string]interface{})
	assert.Equal(suite.T(), "movie 12", first["query"])
}

func (suite *APIIntegrationTestSuite) TestRecommendations() {
	id := suite.signup("bart@example.com", "Bart", "caramba")

	// Too few movies saved
	resp, err := suite.makeRequest("POST", "/v1/recommendations/"+id, map[string]interface{}{"mood": "adventurous"})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	for i, title := range []string{"Akira", "Alien", "Aliens"} {
		resp, err := suite.makeRequest("POST", "/v1/watchlist/"+id, map[string]interface{}{
			"movie": map[string]interface{}{"id": i + 1, "title": title},
		})
		suite.Require().NoError(err)
		suite.Require().Equal(http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	}

	resp, err = suite.makeRequest("POST", "/v1/recommendations/"+id, map[string]interface{}{"mood": "adventurous"})
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, resp.StatusCode)
	body := suite.decode(resp)

	recommendations := body["recommendations"].([]interface{})
	suite.Require().Len(recommendations, 1)
	rec := recommendations[0].(map[string]interface{})
	assert.Equal(suite.T(), "Blade Runner", rec["title"])
}

func (suite *APIIntegrationTestSuite) TestHealthEndpoint() {
	resp, err := suite.makeRequest("GET", "/health", nil)
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, resp.StatusCode)
	body := suite.decode(resp)
	assert.Equal(suite.T(), "healthy", body["status"])
}

func TestAPIIntegrationSuite(t *testing.T) {
	suite.Run(t, new(APIIntegrationTestSuite))
}
