package di

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cinewise-api/cmd/api/infrastructure"
	"cinewise-api/internal/adapter/cache"
	"cinewise-api/internal/adapter/catalog/tmdb"
	"cinewise-api/internal/adapter/db/postgres"
	ginhandler "cinewise-api/internal/adapter/gin/handler"
	ginrouter "cinewise-api/internal/adapter/gin/router"
	"cinewise-api/internal/adapter/recommend/gemini"
	"cinewise-api/internal/adapter/repository/cached"
	"cinewise-api/internal/config"
	"cinewise-api/internal/usecase/recommend"
	"cinewise-api/internal/usecase/user"
	redisclient "cinewise-api/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	UserUC      user.Service
	RecommendUC *recommend.Usecase
	Catalog     *tmdb.Client
	Router      *gin.Engine
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize database
	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repository, optionally fronted by the Redis cache
	var (
		rdb  *redisclient.Client
		repo user.Repository = postgres.NewUserRepoPG(db, l)
	)
	if cfg.Redis.Enabled {
		rdb, err = infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}

		userCache := cache.NewRedisUserCache(
			rdb.Client,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			l,
		)
		repo = cached.NewCachedUserRepository(repo, userCache, l)
	}

	// Initialize use cases
	userUC := user.New(repo, l)

	catalog := tmdb.NewClient(tmdb.Config{
		APIKey:  cfg.TMDB.APIKey,
		BaseURL: cfg.TMDB.BaseURL,
	}, l)

	generator := gemini.NewClient(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
	}, l)
	recommendUC := recommend.New(generator, l)

	// Initialize HTTP surface
	handlers := ginrouter.Handlers{
		Account:   ginhandler.NewAccountHandler(userUC, l),
		Watchlist: ginhandler.NewWatchlistHandler(userUC, l),
		History:   ginhandler.NewHistoryHandler(userUC, l),
		Movie:     ginhandler.NewMovieHandler(catalog, l),
		Recommend: ginhandler.NewRecommendHandler(userUC, recommendUC, l),
	}
	router := ginrouter.SetupRouter(handlers, cfg.RateLimit, rdb, l)

	return &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		RedisClient: rdb,
		UserUC:      userUC,
		RecommendUC: recommendUC,
		Catalog:     catalog,
		Router:      router,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
