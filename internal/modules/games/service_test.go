package games

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gamevault/internal/cache"
	"gamevault/internal/domain"
	"gamevault/internal/rawg"
)

type MockCatalogClient struct {
	mock.Mock
}

func (m *MockCatalogClient) Search(ctx context.Context, query string) ([]rawg.GameSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]rawg.GameSummary), args.Error(1)
}

func (m *MockCatalogClient) Filter(ctx context.Context, p rawg.FilterParams) ([]rawg.GameSummary, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]rawg.GameSummary), args.Error(1)
}

func (m *MockCatalogClient) GetByID(ctx context.Context, externalID int64) (*rawg.GameDetail, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rawg.GameDetail), args.Error(1)
}

type MockGameStore struct {
	mock.Mock
}

func (m *MockGameStore) EnsureStored(ctx context.Context, g *domain.Game) (*domain.Game, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Game), args.Error(1)
}

func (m *MockGameStore) GetByExternalID(ctx context.Context, externalID int64) (*domain.Game, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Game), args.Error(1)
}

func newTestService(client catalogClient, store gameStore) (*Service, *cache.Cache) {
	c := cache.New(time.Minute)
	return NewService(client, c, store, 10*time.Minute), c
}

func TestService_Search_CachesUpstreamPayload(t *testing.T) {
	client := new(MockCatalogClient)
	store := new(MockGameStore)

	client.On("Search", mock.Anything, "zelda").
		Return([]rawg.GameSummary{{ID: 1, Name: "Zelda"}}, nil).Once()

	service, c := newTestService(client, store)
	defer c.Close()

	first, err := service.Search(context.Background(), "zelda")
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	require.Len(t, first.Games, 1)

	// Second lookup within the TTL answers from cache; the Once() above
	// fails the test if the upstream is called again.
	second, err := service.Search(context.Background(), "zelda")
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Games, second.Games)

	client.AssertExpectations(t)
}

func TestService_Search_UpstreamErrorNotCached(t *testing.T) {
	client := new(MockCatalogClient)
	store := new(MockGameStore)

	client.On("Search", mock.Anything, "down").
		Return(nil, &rawg.UpstreamError{StatusCode: 502, Reason: "Bad Gateway"}).Twice()

	service, c := newTestService(client, store)
	defer c.Close()

	_, err := service.Search(context.Background(), "down")
	require.Error(t, err)

	// Errors must not poison the cache.
	_, err = service.Search(context.Background(), "down")
	require.Error(t, err)
	client.AssertExpectations(t)
}

func TestService_Filter_DistinctParamsDistinctEntries(t *testing.T) {
	client := new(MockCatalogClient)
	store := new(MockGameStore)

	client.On("Filter", mock.Anything, rawg.FilterParams{Platform: 4}).
		Return([]rawg.GameSummary{{ID: 1}}, nil).Once()
	client.On("Filter", mock.Anything, rawg.FilterParams{Genre: 4}).
		Return([]rawg.GameSummary{{ID: 2}}, nil).Once()

	service, c := newTestService(client, store)
	defer c.Close()

	p := int64(4)
	byPlatform, err := service.Filter(context.Background(), FilterGamesRequest{Platform: &p})
	require.NoError(t, err)
	byGenre, err := service.Filter(context.Background(), FilterGamesRequest{Genre: &p})
	require.NoError(t, err)

	assert.NotEqual(t, byPlatform.Games[0].ID, byGenre.Games[0].ID)
	client.AssertExpectations(t)
}

func TestService_RetrieveDetails_FetchThenFlagHit(t *testing.T) {
	client := new(MockCatalogClient)
	store := new(MockGameStore)

	client.On("GetByID", mock.Anything, int64(123)).
		Return(&rawg.GameDetail{ID: 123, Name: "Portal", Description: "Puzzles."}, nil).Once()
	store.On("EnsureStored", mock.Anything, mock.Anything).
		Return(&domain.Game{ExternalID: 123, Title: "Portal"}, nil).Once()
	store.On("GetByExternalID", mock.Anything, int64(123)).
		Return(&domain.Game{ExternalID: 123, Title: "Portal"}, nil)

	service, c := newTestService(client, store)
	defer c.Close()

	first, err := service.RetrieveDetails(context.Background(), 123)
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.Equal(t, "Portal", first.Game.Title)

	// Flag is cached; the data comes back from the mirror, not upstream.
	second, err := service.RetrieveDetails(context.Background(), 123)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, "Portal", second.Game.Title)

	client.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestService_RetrieveDetails_StaleFlagFallsThrough(t *testing.T) {
	client := new(MockCatalogClient)
	store := new(MockGameStore)

	// Flag says fetched but the mirror row is gone: re-fetch upstream.
	store.On("GetByExternalID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)
	client.On("GetByID", mock.Anything, int64(7)).
		Return(&rawg.GameDetail{ID: 7, Name: "Recovered"}, nil).Once()
	store.On("EnsureStored", mock.Anything, mock.Anything).
		Return(&domain.Game{ExternalID: 7, Title: "Recovered"}, nil).Once()

	service, c := newTestService(client, store)
	defer c.Close()

	c.Set(cache.DetailKey(7), true, time.Minute)

	result, err := service.RetrieveDetails(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Equal(t, "Recovered", result.Game.Title)
	client.AssertExpectations(t)
}
