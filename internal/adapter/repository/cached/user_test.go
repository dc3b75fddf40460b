package cached

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cinewise-api/internal/adapter/cache"
	domain "cinewise-api/internal/domain/user"
)

type MockDBRepo struct {
	mock.Mock
}

func (m *MockDBRepo) Create(ctx context.Context, u *domain.User) (string, error) {
	args := m.Called(ctx, u)
	return args.String(0), args.Error(1)
}

func (m *MockDBRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockDBRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockDBRepo) Mutate(ctx context.Context, id string, fn func(*domain.User) error) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	u := args.Get(0).(*domain.User)
	if err := fn(u); err != nil {
		return nil, err
	}
	return u, args.Error(1)
}

func setupCachedRepo(t *testing.T) (*MockDBRepo, cache.UserCache, *CachedUserRepository) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	userCache := cache.NewRedisUserCache(client, time.Minute, zap.NewNop())

	dbRepo := new(MockDBRepo)
	repo := NewCachedUserRepository(dbRepo, userCache, zap.NewNop()).(*CachedUserRepository)
	return dbRepo, userCache, repo
}

func TestGetByID_PopulatesCache(t *testing.T) {
	dbRepo, userCache, repo := setupCachedRepo(t)
	ctx := context.Background()

	stored := &domain.User{ID: "u-1", Email: "ana@example.com", Name: "Ana"}
	dbRepo.On("GetByID", mock.Anything, "u-1").Return(stored, nil).Once()

	// First read hits the DB
	got, err := repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", got.Email)

	// Entry is now cached
	cachedUser, err := userCache.Get(ctx, "u-1")
	require.NoError(t, err)
	require.NotNil(t, cachedUser)

	// Second read is served from cache; the single DB expectation still holds
	got, err = repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	dbRepo.AssertExpectations(t)
}

func TestMutate_InvalidatesCache(t *testing.T) {
	dbRepo, userCache, repo := setupCachedRepo(t)
	ctx := context.Background()

	stored := &domain.User{ID: "u-1", Email: "ana@example.com", Name: "Ana"}
	dbRepo.On("GetByID", mock.Anything, "u-1").Return(stored, nil).Once()

	_, err := repo.GetByID(ctx, "u-1")
	require.NoError(t, err)

	dbRepo.On("Mutate", mock.Anything, "u-1").Return(&domain.User{ID: "u-1", Name: "Ana"}, nil)
	_, err = repo.Mutate(ctx, "u-1", func(u *domain.User) error {
		u.Watchlist = append(u.Watchlist, domain.WatchlistEntry{MovieID: 1, Title: "Heat"})
		return nil
	})
	require.NoError(t, err)

	cachedUser, err := userCache.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Nil(t, cachedUser)
}

func TestGetByEmail_BypassesCache(t *testing.T) {
	dbRepo, _, repo := setupCachedRepo(t)
	ctx := context.Background()

	dbRepo.On("GetByEmail", mock.Anything, "ana@example.com").
		Return(&domain.User{ID: "u-1", Email: "ana@example.com"}, nil).Twice()

	for range 2 {
		got, err := repo.GetByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, "u-1", got.ID)
	}

	dbRepo.AssertExpectations(t)
}
