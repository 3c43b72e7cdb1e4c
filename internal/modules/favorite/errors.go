package favorite

import "errors"

var (
	ErrNoFavorites      = errors.New("user has no favorites")
	ErrAlreadyFavorite  = errors.New("game already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrGameNotFound     = errors.New("game not found in catalog")
)
