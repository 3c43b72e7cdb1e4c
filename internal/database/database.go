package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"gamevault/internal/domain"
)

// Connect opens PostgreSQL for postgres:// DSNs and falls back to SQLite
// (modernc driver) for everything else, which covers local development
// and the test suite. TranslateError is on so unique-index violations
// surface as gorm.ErrDuplicatedKey on both backends.
func Connect(dsn string) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), gormCfg)
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		gormCfg,
	)
}

// Migrate creates or updates the schema for all live models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Game{},
		&domain.Favorite{},
	)
}
