package games

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"gamevault/internal/cache"
	"gamevault/internal/domain"
	"gamevault/internal/rawg"
)

type catalogClient interface {
	Search(ctx context.Context, query string) ([]rawg.GameSummary, error)
	Filter(ctx context.Context, p rawg.FilterParams) ([]rawg.GameSummary, error)
	GetByID(ctx context.Context, externalID int64) (*rawg.GameDetail, error)
}

type gameStore interface {
	EnsureStored(ctx context.Context, g *domain.Game) (*domain.Game, error)
	GetByExternalID(ctx context.Context, externalID int64) (*domain.Game, error)
}

// Service serves catalog lookups through a read-through cache: search
// and filter cache the upstream payload itself, while the detail path
// caches only the fact that the mirror already holds the row.
type Service struct {
	client catalogClient
	cache  *cache.Cache
	games  gameStore
	ttl    time.Duration
}

func NewService(client catalogClient, c *cache.Cache, games gameStore, ttl time.Duration) *Service {
	return &Service{client: client, cache: c, games: games, ttl: ttl}
}

// ListResult reports where the games came from so the handler can say
// so in its message.
type ListResult struct {
	Games     []rawg.GameSummary
	FromCache bool
}

func (s *Service) Search(ctx context.Context, query string) (*ListResult, error) {
	key := cache.SearchKey(query)
	if v, ok := s.cache.Get(key); ok {
		return &ListResult{Games: v.([]rawg.GameSummary), FromCache: true}, nil
	}

	results, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, results, s.ttl)
	return &ListResult{Games: results}, nil
}

func (s *Service) Filter(ctx context.Context, req FilterGamesRequest) (*ListResult, error) {
	params := rawg.FilterParams{ReleaseDate: req.ReleaseDate}
	if req.Platform != nil {
		params.Platform = *req.Platform
	}
	if req.Genre != nil {
		params.Genre = *req.Genre
	}

	key := cache.FilterKey(params.ReleaseDate, params.Platform, params.Genre)
	if v, ok := s.cache.Get(key); ok {
		return &ListResult{Games: v.([]rawg.GameSummary), FromCache: true}, nil
	}

	results, err := s.client.Filter(ctx, params)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, results, s.ttl)
	return &ListResult{Games: results}, nil
}

// DetailResult carries a mirror row and whether the fetched-flag cache
// answered the request.
type DetailResult struct {
	Game      *domain.Game
	FromCache bool
}

// RetrieveDetails resolves one external id. On a fetched-flag hit the
// data is re-read from the mirror; otherwise the upstream detail is
// fetched, stored in the mirror, and the flag is set.
func (s *Service) RetrieveDetails(ctx context.Context, externalID int64) (*DetailResult, error) {
	key := cache.DetailKey(externalID)
	if _, ok := s.cache.Get(key); ok {
		game, err := s.games.GetByExternalID(ctx, externalID)
		if err == nil {
			return &DetailResult{Game: game, FromCache: true}, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// Flag set but the row is gone; fall through to a fresh fetch.
	}

	detail, err := s.client.GetByID(ctx, externalID)
	if err != nil {
		return nil, err
	}

	game, err := s.games.EnsureStored(ctx, &domain.Game{
		ExternalID:  detail.ID,
		Title:       detail.Name,
		Summary:     detail.Description,
		ReleaseDate: detail.Released,
		CoverURL:    detail.BackgroundImage,
	})
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, true, s.ttl)
	return &DetailResult{Game: game}, nil
}
