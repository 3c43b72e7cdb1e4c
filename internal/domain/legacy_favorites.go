package domain

import "time"

// LegacyFavorites is the retired one-row-per-user favorites model where
// all game ids were packed into a single JSON text column. It is read
// only by cmd/migrate_legacy; nothing writes this table anymore.
type LegacyFavorites struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"not null;uniqueIndex"`
	GameIDs   string    `gorm:"column:game_ids"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (LegacyFavorites) TableName() string { return "legacy_favorite_user_games" }
