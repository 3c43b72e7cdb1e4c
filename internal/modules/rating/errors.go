package rating

import "errors"

var (
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrRatingUnchanged  = errors.New("rating unchanged")
)
