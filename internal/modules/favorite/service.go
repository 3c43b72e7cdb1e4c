package favorite

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"gamevault/internal/domain"
	"gamevault/internal/rawg"
	"gamevault/internal/repository"
)

// Service reconciles favorite rows against the catalog mirror, falling
// back to the upstream catalog for ids the mirror does not hold yet.
type Service struct {
	favorites favoriteStore
	games     gameStore
	client    catalogClient
}

func NewService(favorites favoriteStore, games gameStore, client catalogClient) *Service {
	return &Service{favorites: favorites, games: games, client: client}
}

// List returns the user's favorites in the order they were added. Ids
// missing from the mirror are fetched upstream and written back; an id
// the upstream no longer knows is skipped rather than failing the whole
// listing. ErrNoFavorites when the user has no rows at all.
func (s *Service) List(ctx context.Context, userID int64) ([]FavoriteGame, error) {
	favorites, err := s.favorites.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(favorites) == 0 {
		return nil, ErrNoFavorites
	}

	ids := make([]int64, len(favorites))
	for i, f := range favorites {
		ids[i] = f.GameExternalID
	}

	// One bulk mirror read before any upstream round-trips.
	mirrored, err := s.games.GetByExternalIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*domain.Game, len(mirrored))
	for i := range mirrored {
		byID[mirrored[i].ExternalID] = &mirrored[i]
	}

	result := make([]FavoriteGame, 0, len(favorites))
	for _, f := range favorites {
		game, ok := byID[f.GameExternalID]
		if !ok {
			game = s.fetchAndStore(ctx, f.GameExternalID)
			if game == nil {
				continue
			}
		}
		result = append(result, toFavoriteGame(game, f.Rating))
	}

	return result, nil
}

// fetchAndStore resolves one id upstream and writes it back to the
// mirror. Failures are logged and absorbed; the listing goes on without
// that favorite.
func (s *Service) fetchAndStore(ctx context.Context, externalID int64) *domain.Game {
	detail, err := s.client.GetByID(ctx, externalID)
	if err != nil {
		log.Printf("favorites: skipping game %d: %v", externalID, err)
		return nil
	}

	game, err := s.games.EnsureStored(ctx, detailToGame(detail))
	if err != nil {
		log.Printf("favorites: skipping game %d: store failed: %v", externalID, err)
		return nil
	}
	return game
}

// Add stores a (user, game) pair. The id must resolve — against the
// mirror or, failing that, the upstream catalog, which also populates
// the mirror. Duplicate pairs are rejected by the storage layer.
func (s *Service) Add(ctx context.Context, userID, gameExternalID int64) (*domain.Favorite, error) {
	if _, err := s.games.GetByExternalID(ctx, gameExternalID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		detail, err := s.client.GetByID(ctx, gameExternalID)
		if err != nil {
			if rawg.IsNotFound(err) {
				return nil, ErrGameNotFound
			}
			return nil, err
		}
		if _, err := s.games.EnsureStored(ctx, detailToGame(detail)); err != nil {
			return nil, err
		}
	}

	favorite, err := s.favorites.Add(ctx, userID, gameExternalID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteExists) {
			return nil, ErrAlreadyFavorite
		}
		return nil, err
	}
	return favorite, nil
}

func (s *Service) Remove(ctx context.Context, userID, gameExternalID int64) error {
	err := s.favorites.Remove(ctx, userID, gameExternalID)
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return ErrFavoriteNotFound
	}
	return err
}

func detailToGame(d *rawg.GameDetail) *domain.Game {
	return &domain.Game{
		ExternalID:  d.ID,
		Title:       d.Name,
		Summary:     d.Description,
		ReleaseDate: d.Released,
		CoverURL:    d.BackgroundImage,
	}
}
