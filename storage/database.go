package storage

import (
	"log"

	"booking-clone-server/config"
	"booking-clone-server/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the connection pool, opened once at startup.
var DB *gorm.DB

func connectToDB(cfg *config.Config) *gorm.DB {
	db, dbError := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if dbError != nil {
		log.Panic("error connecting to db: " + dbError.Error())
	}

	DB = db
	return db
}

func performMigrations(db *gorm.DB) {
	db.AutoMigrate(
		&models.User{},
		&models.Place{},
		&models.Booking{},
	)
}

func InitializeDB(cfg *config.Config) *gorm.DB {
	db := connectToDB(cfg)
	performMigrations(db)
	return db
}
