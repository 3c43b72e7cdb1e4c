package rating

import (
	"context"
	"errors"

	"gamevault/internal/repository"
)

type favoriteStore interface {
	UpdateRating(ctx context.Context, userID, gameExternalID int64, rating *int16) error
}

// Service moves a favorite between unrated and rated(n). The rating
// bounds are enforced by request validation before it gets here.
type Service struct {
	favorites favoriteStore
}

func NewService(favorites favoriteStore) *Service {
	return &Service{favorites: favorites}
}

// SetRating writes the new rating; nil resets the favorite to unrated.
// Writing the value already held is an explicit no-op error, never a
// silent success.
func (s *Service) SetRating(ctx context.Context, userID, gameExternalID int64, rating *int16) error {
	err := s.favorites.UpdateRating(ctx, userID, gameExternalID, rating)
	switch {
	case errors.Is(err, repository.ErrFavoriteNotFound):
		return ErrFavoriteNotFound
	case errors.Is(err, repository.ErrRatingUnchanged):
		return ErrRatingUnchanged
	}
	return err
}

// RemoveRating is sugar for SetRating with nil.
func (s *Service) RemoveRating(ctx context.Context, userID, gameExternalID int64) error {
	return s.SetRating(ctx, userID, gameExternalID, nil)
}
