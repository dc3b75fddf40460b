package user

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "cinewise-api/internal/domain/user"
)

// GetWatchlist returns the user's watchlist in insertion order. Read failures
// degrade to an empty list; callers cannot distinguish a missing user from an
// empty watchlist here. The mutating operations below do surface not-found.
func (uc *Usecase) GetWatchlist(ctx context.Context, in GetWatchlistRequest) []domain.WatchlistEntry {
	u, err := uc.repo.GetByID(ctx, in.UserID)
	if err != nil {
		uc.log.Warn("failed to fetch watchlist, returning empty", zap.String("user_id", in.UserID), zap.Error(err))
		return []domain.WatchlistEntry{}
	}
	if u.Watchlist == nil {
		return []domain.WatchlistEntry{}
	}
	return u.Watchlist
}

// AddToWatchlist appends a snapshot of the movie to the user's watchlist and
// returns the full updated list. Adding a movie that is already saved leaves
// the store unchanged.
func (uc *Usecase) AddToWatchlist(ctx context.Context, in AddToWatchlistRequest) ([]domain.WatchlistEntry, error) {
	uc.log.Info("adding to watchlist", zap.String("user_id", in.UserID), zap.Int64("movie_id", in.Movie.ID))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	updated, err := uc.repo.Mutate(ctx, in.UserID, func(u *domain.User) error {
		for _, entry := range u.Watchlist {
			if entry.MovieID == in.Movie.ID {
				return nil
			}
		}
		u.Watchlist = append(u.Watchlist, domain.WatchlistEntry{
			MovieID:      in.Movie.ID,
			Title:        in.Movie.Title,
			Overview:     in.Movie.Overview,
			PosterPath:   in.Movie.PosterPath,
			BackdropPath: in.Movie.BackdropPath,
			ReleaseDate:  in.Movie.ReleaseDate,
			VoteAverage:  in.Movie.VoteAverage,
			SavedAt:      time.Now().UnixMilli(),
		})
		return nil
	})
	if err != nil {
		uc.log.Error("failed to add to watchlist", zap.String("user_id", in.UserID), zap.Int64("movie_id", in.Movie.ID), zap.Error(err))
		return nil, err
	}

	return updated.Watchlist, nil
}

// RemoveFromWatchlist removes every entry matching the catalog id and returns
// the updated list. Removing an id that is not saved is not an error.
func (uc *Usecase) RemoveFromWatchlist(ctx context.Context, in RemoveFromWatchlistRequest) ([]domain.WatchlistEntry, error) {
	uc.log.Info("removing from watchlist", zap.String("user_id", in.UserID), zap.Int64("movie_id", in.MovieID))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	updated, err := uc.repo.Mutate(ctx, in.UserID, func(u *domain.User) error {
		kept := u.Watchlist[:0]
		for _, entry := range u.Watchlist {
			if entry.MovieID != in.MovieID {
				kept = append(kept, entry)
			}
		}
		u.Watchlist = kept
		return nil
	})
	if err != nil {
		uc.log.Error("failed to remove from watchlist", zap.String("user_id", in.UserID), zap.Int64("movie_id", in.MovieID), zap.Error(err))
		return nil, err
	}

	if updated.Watchlist == nil {
		return []domain.WatchlistEntry{}, nil
	}
	return updated.Watchlist, nil
}
