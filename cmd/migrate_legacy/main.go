// Command migrate_legacy moves favorites out of the retired packed-array
// table (one row per user, game ids json-encoded in a single column)
// into the relational favorite_user_games rows. It is idempotent: pairs
// that already exist are left alone, and re-running it is safe.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"gamevault/internal/database"
	"gamevault/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate schema failed: %v", err)
	}

	ctx := context.Background()
	legacyRepo := repository.NewLegacyFavoritesRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	rows, err := legacyRepo.All(ctx)
	if err != nil {
		log.Fatalf("read legacy favorites failed: %v", err)
	}

	var migrated, skipped int
	for _, row := range rows {
		for _, gameID := range repository.DecodeGameIDs(row.GameIDs) {
			_, err := favoriteRepo.Add(ctx, row.UserID, gameID)
			if err != nil {
				if errors.Is(err, repository.ErrFavoriteExists) {
					skipped++
					continue
				}
				log.Fatalf("migrate user %d game %d failed: %v", row.UserID, gameID, err)
			}
			migrated++
		}
	}

	log.Printf("legacy migration completed: rows=%d migrated=%d skipped=%d", len(rows), migrated, skipped)
}
