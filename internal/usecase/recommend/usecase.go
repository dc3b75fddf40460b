package recommend

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"cinewise-api/internal/domain/movie"
	"cinewise-api/internal/domain/user"
	apperrors "cinewise-api/pkg/errors"
)

// Generator produces movie suggestions for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) ([]movie.Suggestion, error)
}

// Usecase builds the recommendation prompt from a user's watchlist and mood
// and delegates generation to the model client.
type Usecase struct {
	gen Generator
	log *zap.Logger
}

func New(gen Generator, log *zap.Logger) *Usecase {
	return &Usecase{gen: gen, log: log}
}

// Generate asks the model for suggestions based on the watchlist titles and,
// when given, the user's stated mood. Failures from the model client are
// wrapped so the transport layer maps them to a single upstream-failure
// response.
func (uc *Usecase) Generate(ctx context.Context, watchlist []user.WatchlistEntry, mood string) ([]movie.Suggestion, error) {
	titles := make([]string, 0, len(watchlist))
	for _, entry := range watchlist {
		titles = append(titles, entry.Title)
	}

	prompt := fmt.Sprintf("I love these movies: %s.", strings.Join(titles, ", "))
	if mood != "" {
		prompt += fmt.Sprintf(" My current mood is: %s.", mood)
	}
	prompt += " Based on this, suggest 5 movies I might like. Provide valid JSON."

	suggestions, err := uc.gen.Generate(ctx, prompt)
	if err != nil {
		uc.log.Warn("recommendation generation failed", zap.Error(err))
		return nil, apperrors.NewRecommendation("could not generate recommendations", err)
	}

	return suggestions, nil
}
