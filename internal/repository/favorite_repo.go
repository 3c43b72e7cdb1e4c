package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"gamevault/internal/domain"
)

var (
	ErrFavoriteExists   = errors.New("favorite already exists")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrRatingUnchanged  = errors.New("rating unchanged")
)

// FavoriteRepository stores one row per (user, game) pair. Uniqueness is
// enforced by the composite unique index, not by a read-then-write in
// the service, so two concurrent adds of the same pair cannot both
// succeed.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, gameExternalID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, gameExternalID int64) error
	GetByUserID(ctx context.Context, userID int64) ([]domain.Favorite, error)
	UpdateRating(ctx context.Context, userID, gameExternalID int64, rating *int16) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add inserts the pair atomically; a duplicate surfaces as
// ErrFavoriteExists via the unique index rather than a pre-check.
func (r *favoriteRepository) Add(ctx context.Context, userID, gameExternalID int64) (*domain.Favorite, error) {
	favorite := &domain.Favorite{
		UserID:         userID,
		GameExternalID: gameExternalID,
	}

	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrFavoriteExists
		}
		return nil, err
	}
	return favorite, nil
}

// isDuplicateKey recognizes a unique-index violation from either
// backend. The gorm sqlite driver's error translator only understands
// mattn's error type, so with the modernc driver the raw constraint
// error arrives untranslated and has to be matched by its result code.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		code := serr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, gameExternalID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND game_external_id = ?", userID, gameExternalID).
		Delete(&domain.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *favoriteRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// UpdateRating moves the favorite between unrated (nil) and rated(n).
// Setting the value already held, including nil over nil, returns
// ErrRatingUnchanged so the caller gets explicit no-op feedback. Read
// and write happen in one transaction to keep concurrent raters from
// losing updates.
func (r *favoriteRepository) UpdateRating(ctx context.Context, userID, gameExternalID int64, rating *int16) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var favorite domain.Favorite
		err := tx.Where("user_id = ? AND game_external_id = ?", userID, gameExternalID).
			First(&favorite).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFavoriteNotFound
			}
			return err
		}

		if ratingEqual(favorite.Rating, rating) {
			return ErrRatingUnchanged
		}

		return tx.Model(&favorite).Update("rating", rating).Error
	})
}

func ratingEqual(a, b *int16) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
