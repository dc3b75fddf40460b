package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "cinewise-api/pkg/errors"

	"cinewise-api/internal/domain/user"
)

// UserRepoPG implements the user.Repository interface using PostgreSQL and GORM.
// Each user is one row; the watchlist and search history live in JSON columns so
// a read-modify-write of the row covers every embedded collection at once.
type UserRepoPG struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
type UserSchema struct {
	ID            string                    `gorm:"primaryKey;size:36"` // UUID assigned on insert
	Email         string                    `gorm:"not null;unique"`    // User's unique email address
	Name          string                    `gorm:"not null"`           // User's display name
	Password      string                    ``                          // Stored verbatim
	Watchlist     []user.WatchlistEntry     `gorm:"serializer:json"`    // Embedded watchlist collection
	SearchHistory []user.SearchHistoryEntry `gorm:"serializer:json"`    // Embedded search history collection
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

func toDomain(m *UserSchema) *user.User {
	return &user.User{
		ID:            m.ID,
		Email:         m.Email,
		Name:          m.Name,
		Password:      m.Password,
		Watchlist:     m.Watchlist,
		SearchHistory: m.SearchHistory,
	}
}

// Create inserts a new user into the database and returns its assigned id.
func (r *UserRepoPG) Create(ctx context.Context, u *user.User) (string, error) {
	if u == nil {
		return "", errors.New("user cannot be nil")
	}

	model := UserSchema{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Password:      u.Password,
		Watchlist:     []user.WatchlistEntry{},
		SearchHistory: []user.SearchHistoryEntry{},
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create user in db", zap.Error(err), zap.String("email", u.Email))
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	r.log.Info("user created in db", zap.String("id", model.ID))
	return model.ID, nil
}

// GetByID retrieves a user from the database by their unique ID.
func (r *UserRepoPG) GetByID(ctx context.Context, id string) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("user not found", zap.String("id", id))
			return nil, apperrors.NewNotFound("user", id)
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toDomain(&model), nil
}

// GetByEmail retrieves a user from the database by their email address.
// Returns (nil, nil) when no user has that email.
func (r *UserRepoPG) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found by email", zap.String("email", email))
			return nil, nil
		}
		r.log.Error("failed to get user by email from db", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return toDomain(&model), nil
}

// Mutate runs fn against the stored user inside a transaction holding a row
// lock, then writes the record back. This serializes concurrent writes to the
// same user, which is what keeps the idempotent-add and capped-history rules
// intact under concurrent access.
func (r *UserRepoPG) Mutate(ctx context.Context, id string, fn func(*user.User) error) (*user.User, error) {
	var updated *user.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx
		// SQLite (used in tests) serializes writes on its own and has no
		// SELECT ... FOR UPDATE syntax.
		if tx.Dialector.Name() == "postgres" {
			query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var model UserSchema
		if err := query.First(&model, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("user", id)
			}
			return fmt.Errorf("failed to get user: %w", err)
		}

		u := toDomain(&model)
		if err := fn(u); err != nil {
			return err
		}

		model.Name = u.Name
		model.Password = u.Password
		model.Watchlist = u.Watchlist
		model.SearchHistory = u.SearchHistory

		if err := tx.Save(&model).Error; err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		updated = u
		return nil
	})
	if err != nil {
		var notFound *apperrors.NotFoundError
		if !errors.As(err, &notFound) {
			r.log.Error("failed to mutate user in db", zap.Error(err), zap.String("id", id))
		}
		return nil, err
	}

	r.log.Debug("user updated in db", zap.String("id", id))
	return updated, nil
}
