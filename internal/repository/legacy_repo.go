package repository

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"

	"gorm.io/gorm"

	"gamevault/internal/domain"
)

// LegacyFavoritesRepository reads the retired packed-array favorites
// table so cmd/migrate_legacy can move its contents into relational
// rows. It is read-only.
type LegacyFavoritesRepository struct {
	db *gorm.DB
}

func NewLegacyFavoritesRepository(db *gorm.DB) *LegacyFavoritesRepository {
	return &LegacyFavoritesRepository{db: db}
}

func (r *LegacyFavoritesRepository) All(ctx context.Context) ([]domain.LegacyFavorites, error) {
	var rows []domain.LegacyFavorites
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DecodeGameIDs parses a packed game_ids column. The old system removed
// entries positionally and re-encoded, so a row that went through
// removals is a keyed object with holes ({"0":10,"2":30}) instead of a
// plain array. Both forms are accepted; keyed entries are ordered by
// their numeric key and duplicates keep their first occurrence.
func DecodeGameIDs(raw string) []int64 {
	if raw == "" || raw == "null" {
		return nil
	}

	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err == nil {
		return dedupe(ids)
	}

	var keyed map[string]int64
	if err := json.Unmarshal([]byte(raw), &keyed); err != nil {
		return nil
	}

	positions := make([]int, 0, len(keyed))
	byPos := make(map[int]int64, len(keyed))
	for k, id := range keyed {
		pos, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		positions = append(positions, pos)
		byPos[pos] = id
	}
	sort.Ints(positions)

	ids = make([]int64, 0, len(positions))
	for _, pos := range positions {
		ids = append(ids, byPos[pos])
	}
	return dedupe(ids)
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
