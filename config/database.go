package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/MERN-ing-the-midnight-oil/shelf-elf/models"
)

// DB is the shared database handle
var DB *gorm.DB

// InitDB connects to the database and runs migrations
func InitDB() {
	var err error
	DB, err = gorm.Open(postgres.Open(App.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
}

// Migrate creates or updates the schema. Exported so tests can run it
// against their own database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Offer{},
		&models.Community{},
		&models.CommunityMember{},
		&models.BorrowRequest{},
		&models.Message{},
	)
}
