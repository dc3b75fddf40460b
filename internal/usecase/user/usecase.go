package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domain "cinewise-api/internal/domain/user"
	apperrors "cinewise-api/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// Repository defines the interface for user data access operations.
// Mutate must run its callback against the current stored record and persist
// the result atomically per user, so concurrent writes to the same record
// serialize at the store.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (string, error)                                  // Create a new user, returns assigned id
	GetByID(ctx context.Context, id string) (*domain.User, error)                               // Retrieve user by ID
	GetByEmail(ctx context.Context, email string) (*domain.User, error)                         // Retrieve user by email, nil when absent
	Mutate(ctx context.Context, id string, fn func(*domain.User) error) (*domain.User, error)   // Atomic read-modify-write
}

// Usecase implements the business logic for accounts, watchlists and search
// history. All shared state lives in the user record behind Repository.
type Usecase struct {
	repo     Repository          // Repository for data access
	log      *zap.Logger         // Logger for structured logging
	validate *validator.Validate // Validator for request validation
}

// New creates a new instance of Usecase with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, log: log, validate: validator.New()}
}

// formatValidationError converts validator.ValidationErrors into a human-readable error message.
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "email":
				messages = append(messages, fmt.Sprintf("%s must be a valid email", e.Field()))
			case "min":
				messages = append(messages, fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param()))
			case "max":
				messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return apperrors.NewValidation("", strings.Join(messages, ", "))
	}
	return err
}

// Signup registers a new account after validating the request and checking
// email uniqueness. The returned record never carries the password.
func (uc *Usecase) Signup(ctx context.Context, in SignupRequest) (*Account, error) {
	uc.log.Info("signing up user", zap.String("name", in.Name), zap.String("email", in.Email))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, errors.New("failed to validate email uniqueness")
	}
	if existing != nil {
		uc.log.Warn("email already exists", zap.String("email", in.Email))
		return nil, apperrors.NewDuplicateEmail(in.Email)
	}

	id, err := uc.repo.Create(ctx, &domain.User{
		Email:    in.Email,
		Name:     in.Name,
		Password: in.Password,
	})
	if err != nil {
		uc.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return &Account{
		ID:            id,
		Email:         in.Email,
		Name:          in.Name,
		Watchlist:     []domain.WatchlistEntry{},
		SearchHistory: []domain.SearchHistoryEntry{},
	}, nil
}

// Login looks an account up by email and compares the stored password
// verbatim. An unknown email surfaces as not-found rather than as a
// credentials failure. On success the full stored record is returned,
// password included, matching the original service's behavior.
func (uc *Usecase) Login(ctx context.Context, in LoginRequest) (*Account, error) {
	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	u, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to look up user for login", zap.String("email", in.Email), zap.Error(err))
		return nil, errors.New("failed to log in")
	}
	if u == nil {
		uc.log.Warn("login for unknown email", zap.String("email", in.Email))
		return nil, apperrors.NewNotFound("user", "")
	}

	if u.Password != in.Password {
		uc.log.Warn("login with wrong password", zap.String("email", in.Email))
		return nil, apperrors.NewInvalidCredentials()
	}

	uc.log.Info("user logged in", zap.String("id", u.ID), zap.String("email", u.Email))
	return accountFromDomain(u), nil
}

func accountFromDomain(u *domain.User) *Account {
	watchlist := u.Watchlist
	if watchlist == nil {
		watchlist = []domain.WatchlistEntry{}
	}
	history := u.SearchHistory
	if history == nil {
		history = []domain.SearchHistoryEntry{}
	}
	return &Account{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Password:      u.Password,
		Watchlist:     watchlist,
		SearchHistory: history,
	}
}
