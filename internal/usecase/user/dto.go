package user

import domain "cinewise-api/internal/domain/user"

// SignupRequest represents the request payload for registering a new account.
type SignupRequest struct {
	Email    string `validate:"required,email"`
	Name     string `validate:"required,min=1,max=100"`
	Password string `validate:"required,min=1,max=100"`
}

// LoginRequest represents the request payload for logging in.
type LoginRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Account is the user record returned to callers. Password is populated only
// by Login, which returns the record exactly as stored; Signup strips it.
type Account struct {
	ID            string
	Email         string
	Name          string
	Password      string
	Watchlist     []domain.WatchlistEntry
	SearchHistory []domain.SearchHistoryEntry
}

// MovieSnapshot is the catalog data captured when a movie is saved to a watchlist.
type MovieSnapshot struct {
	ID           int64  `validate:"required"`
	Title        string `validate:"required"`
	Overview     string
	PosterPath   string
	BackdropPath string
	ReleaseDate  string
	VoteAverage  float64
}

// AddToWatchlistRequest represents the request payload for saving a movie.
type AddToWatchlistRequest struct {
	UserID string        `validate:"required"`
	Movie  MovieSnapshot `validate:"required"`
}

// RemoveFromWatchlistRequest represents the request payload for removing a movie.
type RemoveFromWatchlistRequest struct {
	UserID  string `validate:"required"`
	MovieID int64  `validate:"required"`
}

// GetWatchlistRequest represents the request payload for reading a watchlist.
type GetWatchlistRequest struct {
	UserID string
}

// SaveSearchRequest represents the request payload for logging a search query.
type SaveSearchRequest struct {
	UserID string `validate:"required"`
	Query  string `validate:"required"`
}

// GetSearchHistoryRequest represents the request payload for reading search history.
type GetSearchHistoryRequest struct {
	UserID string
}
