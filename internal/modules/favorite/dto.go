package favorite

import "gamevault/internal/domain"

type StoreFavoriteRequest struct {
	GameID int64 `json:"game_id" validate:"required,min=1"`
}

type DestroyFavoriteRequest struct {
	GameID int64 `json:"game_id" validate:"required,min=1"`
}

// FavoriteGame is one listed favorite: the mirrored catalog data plus
// the user's rating for it.
type FavoriteGame struct {
	ExternalID  int64  `json:"external_id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	ReleaseDate string `json:"release_date"`
	CoverURL    string `json:"cover_url"`
	Rating      *int16 `json:"rating"`
}

func toFavoriteGame(g *domain.Game, rating *int16) FavoriteGame {
	return FavoriteGame{
		ExternalID:  g.ExternalID,
		Title:       g.Title,
		Summary:     g.Summary,
		ReleaseDate: g.ReleaseDate,
		CoverURL:    g.CoverURL,
		Rating:      rating,
	}
}
