package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cinewise-api/internal/domain/movie"
	domain "cinewise-api/internal/domain/user"
	"cinewise-api/internal/usecase/user"
)

// Recommender generates suggestions from a watchlist and a mood.
type Recommender interface {
	Generate(ctx context.Context, watchlist []domain.WatchlistEntry, mood string) ([]movie.Suggestion, error)
}

// Watchlists with fewer saved movies than this give the model too little
// signal, so the request is rejected before anything is sent upstream.
const minWatchlistForRecommendations = 3

// RecommendHandler handles HTTP requests for AI recommendations
type RecommendHandler struct {
	userUC      user.Service
	recommender Recommender
	log         *zap.Logger
}

// NewRecommendHandler creates a new RecommendHandler instance
func NewRecommendHandler(userUC user.Service, recommender Recommender, log *zap.Logger) *RecommendHandler {
	return &RecommendHandler{
		userUC:      userUC,
		recommender: recommender,
		log:         log,
	}
}

// RecommendRequest represents the HTTP request body for generating recommendations
type RecommendRequest struct {
	Mood string `json:"mood" binding:"omitempty,max=200"`
}

// Recommend handles POST /v1/recommendations/:userId
func (h *RecommendHandler) Recommend(c *gin.Context) {
	userID := c.Param("userId")

	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid recommendation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	watchlist := h.userUC.GetWatchlist(c.Request.Context(), user.GetWatchlistRequest{UserID: userID})
	if len(watchlist) < minWatchlistForRecommendations {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "watchlist_too_small",
			Message: "Add at least 3 movies to your watchlist to get recommendations",
		})
		return
	}

	h.log.Info("Recommend request",
		zap.String("user_id", userID),
		zap.String("mood", req.Mood),
		zap.Int("watchlist_size", len(watchlist)),
	)

	suggestions, err := h.recommender.Generate(c.Request.Context(), watchlist, req.Mood)
	if err != nil {
		h.log.Warn("Recommendation failed", zap.String("user_id", userID), zap.Error(err))
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": suggestions})
}
