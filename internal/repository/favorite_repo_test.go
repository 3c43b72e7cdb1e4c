package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int16ptr(v int16) *int16 { return &v }

func TestFavoriteRepository_AddAndDuplicate(t *testing.T) {
	db := setupDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	fav, err := repo.Add(ctx, 1, 123)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fav.UserID)
	assert.Equal(t, int64(123), fav.GameExternalID)
	assert.Nil(t, fav.Rating)

	_, err = repo.Add(ctx, 1, 123)
	assert.ErrorIs(t, err, ErrFavoriteExists)

	// The duplicate attempt wrote nothing.
	favorites, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)

	// Same game for another user is fine.
	_, err = repo.Add(ctx, 2, 123)
	assert.NoError(t, err)
}

func TestFavoriteRepository_Remove(t *testing.T) {
	db := setupDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	_, err := repo.Add(ctx, 1, 123)
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, 1, 123))
	assert.ErrorIs(t, repo.Remove(ctx, 1, 123), ErrFavoriteNotFound)
}

func TestFavoriteRepository_GetByUserID(t *testing.T) {
	db := setupDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	favorites, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	for _, id := range []int64{10, 20, 30} {
		_, err := repo.Add(ctx, 1, id)
		require.NoError(t, err)
	}
	_, err = repo.Add(ctx, 2, 40)
	require.NoError(t, err)

	favorites, err = repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, favorites, 3)

	// Insertion order holds even when rows share a created_at instant.
	for i, id := range []int64{10, 20, 30} {
		assert.Equal(t, id, favorites[i].GameExternalID)
	}
}

func TestFavoriteRepository_UpdateRating(t *testing.T) {
	db := setupDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	assert.ErrorIs(t, repo.UpdateRating(ctx, 1, 123, int16ptr(7)), ErrFavoriteNotFound)

	_, err := repo.Add(ctx, 1, 123)
	require.NoError(t, err)

	// unrated -> unrated is a no-op
	assert.ErrorIs(t, repo.UpdateRating(ctx, 1, 123, nil), ErrRatingUnchanged)

	require.NoError(t, repo.UpdateRating(ctx, 1, 123, int16ptr(7)))

	favorites, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, favorites[0].Rating)
	assert.Equal(t, int16(7), *favorites[0].Rating)

	// rated(7) -> rated(7) is a no-op
	assert.ErrorIs(t, repo.UpdateRating(ctx, 1, 123, int16ptr(7)), ErrRatingUnchanged)

	require.NoError(t, repo.UpdateRating(ctx, 1, 123, int16ptr(3)))

	// reset back to unrated
	require.NoError(t, repo.UpdateRating(ctx, 1, 123, nil))
	favorites, err = repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, favorites[0].Rating)
}
