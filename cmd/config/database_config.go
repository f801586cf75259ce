package config

import (
	"fmt"
	"freshtrack/internal/utils"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectDB(driver string) (*gorm.DB, error) {
	switch driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("Database connection failed: %v", err)
			return nil, err
		}
		return db, nil
	default:
		path := utils.GetConfigDefault("DB_PATH", "data/freshtrack.db")
		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			log.Fatalf("Database connection failed: %v", err)
			return nil, err
		}
		return db, nil
	}
}
