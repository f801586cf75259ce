package main

import (
	"context"
	"log"

	"freshtrack/cmd/config"
	migration "freshtrack/cmd/database/migrate"
	"freshtrack/internal/utils"
	"freshtrack/pkg/state"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on config.yaml and environment")
	}
	utils.LoadConfig()

	logger := utils.NewLogger()

	var gateway state.Gateway
	switch utils.GetConfigDefault("STORAGE_DRIVER", "file") {
	case "sqlite", "postgres":
		db, err := config.ConnectDB(utils.GetConfig("STORAGE_DRIVER"))
		if err != nil {
			logger.Fatal().Err(err).Msg("database connection failed")
		}
		if err := migration.Migrate(db); err != nil {
			logger.Fatal().Err(err).Msg("database migration failed")
		}
		gateway = state.NewDatabaseGateway(db)
	default:
		gateway = state.NewFileGateway(utils.GetConfigDefault("STATE_PATH", "data/freshtrack.json"))
	}

	store := state.NewStore(gateway, logger)
	store.Load(context.Background())

	app, err := config.NewApp(store, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("app setup failed")
	}

	port := utils.GetConfigDefault("APP_PORT", "8080")
	if err := app.Listen(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
