package favorite

import (
	"context"

	"gamevault/internal/domain"
	"gamevault/internal/rawg"
)

type favoriteStore interface {
	Add(ctx context.Context, userID, gameExternalID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, gameExternalID int64) error
	GetByUserID(ctx context.Context, userID int64) ([]domain.Favorite, error)
}

type gameStore interface {
	EnsureStored(ctx context.Context, g *domain.Game) (*domain.Game, error)
	GetByExternalID(ctx context.Context, externalID int64) (*domain.Game, error)
	GetByExternalIDs(ctx context.Context, externalIDs []int64) ([]domain.Game, error)
}

type catalogClient interface {
	GetByID(ctx context.Context, externalID int64) (*rawg.GameDetail, error)
}
