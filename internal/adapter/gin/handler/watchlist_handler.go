package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cinewise-api/internal/usecase/user"
)

// WatchlistHandler handles HTTP requests for watchlist operations
type WatchlistHandler struct {
	uc  user.Service
	log *zap.Logger
}

// NewWatchlistHandler creates a new WatchlistHandler instance
func NewWatchlistHandler(uc user.Service, log *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		uc:  uc,
		log: log,
	}
}

// MovieSnapshot represents the catalog data sent when saving a movie
type MovieSnapshot struct {
	ID           int64   `json:"id" binding:"required"`
	Title        string  `json:"title" binding:"required"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
}

// AddToWatchlistRequest represents the HTTP request body for saving a movie
type AddToWatchlistRequest struct {
	Movie MovieSnapshot `json:"movie" binding:"required"`
}

// GetWatchlist handles GET /v1/watchlist/:userId
func (h *WatchlistHandler) GetWatchlist(c *gin.Context) {
	userID := c.Param("userId")

	h.log.Info("GetWatchlist request", zap.String("user_id", userID))

	entries := h.uc.GetWatchlist(c.Request.Context(), user.GetWatchlistRequest{UserID: userID})

	c.JSON(http.StatusOK, gin.H{"watchlist": entries})
}

// AddToWatchlist handles POST /v1/watchlist/:userId
func (h *WatchlistHandler) AddToWatchlist(c *gin.Context) {
	userID := c.Param("userId")

	var req AddToWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid add to watchlist request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("AddToWatchlist request",
		zap.String("user_id", userID),
		zap.Int64("movie_id", req.Movie.ID),
	)

	entries, err := h.uc.AddToWatchlist(c.Request.Context(), user.AddToWatchlistRequest{
		UserID: userID,
		Movie: user.MovieSnapshot{
			ID:           req.Movie.ID,
			Title:        req.Movie.Title,
			Overview:     req.Movie.Overview,
			PosterPath:   req.Movie.PosterPath,
			BackdropPath: req.Movie.BackdropPath,
			ReleaseDate:  req.Movie.ReleaseDate,
			VoteAverage:  req.Movie.VoteAverage,
		},
	})
	if err != nil {
		h.log.Warn("AddToWatchlist failed", zap.String("user_id", userID), zap.Error(err))
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"watchlist": entries})
}

// RemoveFromWatchlist handles DELETE /v1/watchlist/:userId/:movieId
func (h *WatchlistHandler) RemoveFromWatchlist(c *gin.Context) {
	userID := c.Param("userId")
	movieIDStr := c.Param("movieId")

	movieID, err := strconv.ParseInt(movieIDStr, 10, 64)
	if err != nil {
		h.log.Warn("Invalid movie ID", zap.String("movie_id", movieIDStr), zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Movie ID must be a valid number",
		})
		return
	}

	h.log.Info("RemoveFromWatchlist request",
		zap.String("user_id", userID),
		zap.Int64("movie_id", movieID),
	)

	entries, err := h.uc.RemoveFromWatchlist(c.Request.Context(), user.RemoveFromWatchlistRequest{
		UserID:  userID,
		MovieID: movieID,
	})
	if err != nil {
		h.log.Warn("RemoveFromWatchlist failed", zap.String("user_id", userID), zap.Error(err))
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"watchlist": entries})
}
