package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cinewise-api/internal/usecase/user"
)

// HistoryHandler handles HTTP requests for search history operations
type HistoryHandler struct {
	uc  user.Service
	log *zap.Logger
}

// NewHistoryHandler creates a new HistoryHandler instance
func NewHistoryHandler(uc user.Service, log *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		uc:  uc,
		log: log,
	}
}

// SaveSearchRequest represents the HTTP request body for logging a search query
type SaveSearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// SaveSearch handles POST /v1/search/:userId
func (h *HistoryHandler) SaveSearch(c *gin.Context) {
	userID := c.Param("userId")

	var req SaveSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid save search request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("SaveSearch request", zap.String("user_id", userID), zap.String("query", req.Query))

	if err := h.uc.SaveSearch(c.Request.Context(), user.SaveSearchRequest{
		UserID: userID,
		Query:  req.Query,
	}); err != nil {
		h.log.Warn("SaveSearch failed", zap.String("user_id", userID), zap.Error(err))
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// GetSearchHistory handles GET /v1/search/:userId
func (h *HistoryHandler) GetSearchHistory(c *gin.Context) {
	userID := c.Param("userId")

	h.log.Info("GetSearchHistory request", zap.String("user_id", userID))

	entries := h.uc.GetSearchHistory(c.Request.Context(), user.GetSearchHistoryRequest{UserID: userID})

	c.JSON(http.StatusOK, gin.H{"history": entries})
}
