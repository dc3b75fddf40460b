package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"cinewise-api/internal/adapter/gin/handler"
	"cinewise-api/internal/adapter/gin/middleware"
	"cinewise-api/internal/config"
	"cinewise-api/pkg/logger"
	redisclient "cinewise-api/pkg/redis"
)

// Handlers bundles the HTTP handlers wired into the router.
type Handlers struct {
	Account   *handler.AccountHandler
	Watchlist *handler.WatchlistHandler
	History   *handler.HistoryHandler
	Movie     *handler.MovieHandler
	Recommend *handler.RecommendHandler
}

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	h Handlers,
	rateLimitCfg config.RateLimitConfig,
	redisClient *redisclient.Client,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(logger.RequestID())
	router.Use(middleware.Logging(log))
	if redisClient != nil {
		router.Use(middleware.RateLimiter(rateLimitCfg, redisClient.Client))
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "cinewise-api",
		})
	})

	// API documentation
	router.StaticFile("/openapi.json", "api/swagger/cinewise.swagger.json")
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL("/openapi.json"),
	)))

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.POST("/signup", h.Account.Signup)
		v1.POST("/login", h.Account.Login)

		watchlist := v1.Group("/watchlist")
		{
			watchlist.GET("/:userId", h.Watchlist.GetWatchlist)
			watchlist.POST("/:userId", h.Watchlist.AddToWatchlist)
			watchlist.DELETE("/:userId/:movieId", h.Watchlist.RemoveFromWatchlist)
		}

		search := v1.Group("/search")
		{
			search.GET("/:userId", h.History.GetSearchHistory)
			search.POST("/:userId", h.History.SaveSearch)
		}

		movies := v1.Group("/movies")
		{
			movies.GET("/trending", h.Movie.Trending)
			movies.GET("/upcoming", h.Movie.Upcoming)
			movies.GET("/recent", h.Movie.Recent)
			movies.GET("/search", h.Movie.Search)
		}

		v1.POST("/recommendations/:userId", h.Recommend.Recommend)
	}

	return router
}
