package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "cinewise-api/internal/domain/user"
	"cinewise-api/internal/usecase/user"
)

// AccountHandler handles HTTP requests for signup and login
type AccountHandler struct {
	uc  user.Service
	log *zap.Logger
}

// NewAccountHandler creates a new AccountHandler instance
func NewAccountHandler(uc user.Service, log *zap.Logger) *AccountHandler {
	return &AccountHandler{
		uc:  uc,
		log: log,
	}
}

// SignupRequest represents the HTTP request body for registering an account
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=1,max=100"`
}

// LoginRequest represents the HTTP request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AccountResponse represents the HTTP response for account data. Password is
// present only in the login response, which echoes the stored record.
type AccountResponse struct {
	ID            string                     `json:"id"`
	Email         string                     `json:"email"`
	Name          string                     `json:"name"`
	Password      string                     `json:"password,omitempty"`
	Watchlist     []domain.WatchlistEntry    `json:"watchlist"`
	SearchHistory []domain.SearchHistoryEntry `json:"searchHistory"`
}

func accountResponse(a *user.Account) AccountResponse {
	return AccountResponse{
		ID:            a.ID,
		Email:         a.Email,
		Name:          a.Name,
		Password:      a.Password,
		Watchlist:     a.Watchlist,
		SearchHistory: a.SearchHistory,
	}
}

// Signup handles POST /v1/signup
func (h *AccountHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid signup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("Signup request", zap.String("email", req.Email))

	resp, err := h.uc.Signup(c.Request.Context(), user.SignupRequest{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		h.log.Warn("Signup failed", zap.String("email", req.Email), zap.Error(err))
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, accountResponse(resp))
}

// Login handles POST /v1/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("Login request", zap.String("email", req.Email))

	resp, err := h.uc.Login(c.Request.Context(), user.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.log.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, accountResponse(resp))
}
