package config

import (
	"freshtrack/internal/api/handlers"
	"freshtrack/internal/api/routes"
	"freshtrack/internal/middleware"
	"freshtrack/internal/utils"
	"freshtrack/pkg/archive"
	"freshtrack/pkg/inventory"
	"freshtrack/pkg/recipe"
	"freshtrack/pkg/scan"
	"freshtrack/pkg/state"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
)

func NewApp(store *state.Store, appLogger zerolog.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Service
	inventoryService := inventory.NewInventoryService(store, appLogger)
	archiveService := archive.NewArchiveService(store, appLogger)
	recipeService := recipe.NewRecipeService(store, appLogger)
	scanService := scan.NewScanService(inventoryService, appLogger)

	// Handler
	productHandler := handlers.NewProductHandler(inventoryService, validator)
	archiveHandler := handlers.NewArchiveHandler(archiveService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	scanHandler := handlers.NewScanHandler(scanService, validator)
	settingsHandler := handlers.NewSettingsHandler(store)

	// routes
	routesConfig := routes.Config{
		App:             app,
		ProductHandler:  productHandler,
		ArchiveHandler:  archiveHandler,
		RecipeHandler:   recipeHandler,
		ScanHandler:     scanHandler,
		SettingsHandler: settingsHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
