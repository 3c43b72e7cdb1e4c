package domain

import "time"

// Game is a local mirror of one record from the external catalog.
// ExternalID is the catalog's stable identifier; the unique index keeps
// the mirror at one row per external id no matter how often the same
// game is resolved.
type Game struct {
	ID          int64     `json:"-" gorm:"primaryKey"`
	ExternalID  int64     `json:"external_id" gorm:"not null;uniqueIndex"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	ReleaseDate string    `json:"release_date"`
	CoverURL    string    `json:"cover_url"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Game) TableName() string { return "games" }
