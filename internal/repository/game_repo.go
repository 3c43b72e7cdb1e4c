package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gamevault/internal/domain"
)

// GameRepository owns the local catalog mirror. Rows are created lazily
// the first time an external id is resolved and are never deleted here.
type GameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// EnsureStored upserts one mirror row keyed on external_id. A repeated
// call with the same id never duplicates the row; changed catalog data
// refreshes the mutable fields in place.
func (r *GameRepository) EnsureStored(ctx context.Context, g *domain.Game) (*domain.Game, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "summary", "release_date", "cover_url", "updated_at"}),
		}).
		Create(g).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller always gets the row as stored, including the
	// primary key when the insert conflicted with an existing row.
	var stored domain.Game
	if err := r.db.WithContext(ctx).Where("external_id = ?", g.ExternalID).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *GameRepository) GetByExternalID(ctx context.Context, externalID int64) (*domain.Game, error) {
	var g domain.Game
	if err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// GetByExternalIDs bulk-loads mirror rows for the given ids in one
// query. Ids with no mirror row are simply absent from the result; the
// favorites service falls back to the catalog client for those.
func (r *GameRepository) GetByExternalIDs(ctx context.Context, externalIDs []int64) ([]domain.Game, error) {
	if len(externalIDs) == 0 {
		return nil, nil
	}
	var games []domain.Game
	if err := r.db.WithContext(ctx).Where("external_id IN ?", externalIDs).Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}
