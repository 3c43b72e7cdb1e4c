package domain

import "time"

// Favorite links a user to a game from the catalog mirror. The reference
// is the catalog's external id, not the mirror's surrogate key, so a
// favorite stays valid even if the mirror row is recreated. Rating is
// nil while the favorite is unrated.
type Favorite struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	UserID         int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_game"`
	GameExternalID int64     `json:"game_id" gorm:"not null;index;uniqueIndex:idx_user_game"`
	Rating         *int16    `json:"rating"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Game *Game `json:"game,omitempty" gorm:"foreignKey:GameExternalID;references:ExternalID"`
}

func (Favorite) TableName() string { return "favorite_user_games" }
