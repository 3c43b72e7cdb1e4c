package rating

type RateFavoriteRequest struct {
	GameID int64  `json:"game_id" validate:"required,min=1"`
	Rating *int16 `json:"rating" validate:"required,min=0,max=10"`
}

type RemoveRatingRequest struct {
	GameID int64 `json:"game_id" validate:"required,min=1"`
}
