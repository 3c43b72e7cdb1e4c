package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"

	"gamevault/internal/database"
	"gamevault/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "gamevault.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Creating users...")

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	users := []domain.User{
		{Email: "demo@gamevault.dev", PasswordHash: string(hash), Name: "Demo User"},
		{Email: "second@gamevault.dev", PasswordHash: string(hash), Name: "Second User"},
	}

	for i := range users {
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&users[i])
		if res.Error != nil {
			log.Fatal("seed user failed:", res.Error)
		}
	}

	log.Println("Seed completed.")
}
