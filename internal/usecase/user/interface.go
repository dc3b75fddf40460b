package user

import (
	"context"

	domain "cinewise-api/internal/domain/user"
)

// Service defines the interface for account, watchlist and search history operations.
// The two read operations degrade to an empty slice on failure instead of
// returning an error; the mutating operations surface not-found explicitly.
type Service interface {
	Signup(ctx context.Context, in SignupRequest) (*Account, error)
	Login(ctx context.Context, in LoginRequest) (*Account, error)
	GetWatchlist(ctx context.Context, in GetWatchlistRequest) []domain.WatchlistEntry
	AddToWatchlist(ctx context.Context, in AddToWatchlistRequest) ([]domain.WatchlistEntry, error)
	RemoveFromWatchlist(ctx context.Context, in RemoveFromWatchlistRequest) ([]domain.WatchlistEntry, error)
	SaveSearch(ctx context.Context, in SaveSearchRequest) error
	GetSearchHistory(ctx context.Context, in GetSearchHistoryRequest) []domain.SearchHistoryEntry
}

var _ Service = (*Usecase)(nil)
