package user

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	domain "cinewise-api/internal/domain/user"
	apperrors "cinewise-api/pkg/errors"
	"cinewise-api/pkg/security"
)

const (
	// historyCap bounds the number of stored history entries per user.
	// Inserting past the cap evicts the oldest entry.
	historyCap = 50
	// historyReadLimit bounds how many entries a read returns.
	historyReadLimit = 10
)

// SaveSearch appends the query with the current timestamp to the user's
// search history, evicting the oldest entry once the store exceeds its cap.
func (uc *Usecase) SaveSearch(ctx context.Context, in SaveSearchRequest) error {
	uc.log.Info("saving search", zap.String("user_id", in.UserID), zap.String("query", in.Query))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return formatValidationError(err)
	}

	query, err := security.ValidateSearchQuery(in.Query)
	if err != nil {
		uc.log.Warn("rejected search query", zap.String("user_id", in.UserID), zap.Error(err))
		return apperrors.NewValidation("query", err.Error())
	}

	_, err = uc.repo.Mutate(ctx, in.UserID, func(u *domain.User) error {
		u.SearchHistory = append(u.SearchHistory, domain.SearchHistoryEntry{
			Query:     query,
			Timestamp: time.Now().UnixMilli(),
		})
		if len(u.SearchHistory) > historyCap {
			u.SearchHistory = u.SearchHistory[len(u.SearchHistory)-historyCap:]
		}
		return nil
	})
	if err != nil {
		uc.log.Error("failed to save search", zap.String("user_id", in.UserID), zap.Error(err))
		return err
	}

	return nil
}

// GetSearchHistory returns the most recent entries, newest first. Like
// GetWatchlist, failures degrade to an empty slice. The stored order is
// never touched; sorting happens on a copy.
func (uc *Usecase) GetSearchHistory(ctx context.Context, in GetSearchHistoryRequest) []domain.SearchHistoryEntry {
	u, err := uc.repo.GetByID(ctx, in.UserID)
	if err != nil {
		uc.log.Warn("failed to fetch search history, returning empty", zap.String("user_id", in.UserID), zap.Error(err))
		return []domain.SearchHistoryEntry{}
	}

	history := make([]domain.SearchHistoryEntry, len(u.SearchHistory))
	copy(history, u.SearchHistory)

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Timestamp > history[j].Timestamp
	})

	if len(history) > historyReadLimit {
		history = history[:historyReadLimit]
	}
	return history
}
