package database

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sevasetu/config"
	"sevasetu/models"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb opens the local sqlite session store. This service keeps no
// business data; the only table is the session record.
func ConnectDb() {
	db, err := gorm.Open(sqlite.Open(config.AppConfig.SessionDBName), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
		os.Exit(2)
	}

	runMigrations(db)

	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	if err := db.AutoMigrate(&models.Session{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
