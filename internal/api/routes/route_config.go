package routes

import (
	"freshtrack/internal/api/handlers"
	"freshtrack/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	ProductHandler  handlers.ProductHandler
	ArchiveHandler  handlers.ArchiveHandler
	RecipeHandler   handlers.RecipeHandler
	ScanHandler     handlers.ScanHandler
	SettingsHandler handlers.SettingsHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Products()
	c.History()
	c.Recipes()
	c.ReceiptScan()
	c.Settings()
	c.GuestRoute()
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products")
	// static paths before the :id matchers
	{
		products.Get("/dashboard", c.ProductHandler.GetDashboard)
		products.Get("/export", c.ProductHandler.ExportProducts)
		products.Post("/import", c.ProductHandler.ImportProducts)
		products.Post("/archive-expired", c.ArchiveHandler.ArchiveAllExpired)

		products.Post("", c.ProductHandler.AddProduct)
		products.Get("", c.ProductHandler.GetProducts)
		products.Get("/:id", c.ProductHandler.GetProductDetails)
		products.Delete("/:id", c.ProductHandler.DeleteProduct)
		products.Post("/:id/used", c.ArchiveHandler.MarkUsed)
		products.Post("/:id/expired", c.ArchiveHandler.ArchiveExpired)
	}
}

func (c *Config) History() {
	history := c.App.Group("/api/v1/history")
	{
		history.Get("/stats", c.ArchiveHandler.GetStats)
		history.Get("/trend", c.ArchiveHandler.GetTrend)
		history.Get("/current-month", c.ArchiveHandler.GetCurrentMonth)
		history.Get("/expired-by-category", c.ArchiveHandler.GetExpiredByCategory)

		history.Get("", c.ArchiveHandler.GetHistory)
		history.Delete("", c.ArchiveHandler.ClearHistory)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/suggestions/:productId", c.RecipeHandler.GetSuggestions)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	}
}

func (c *Config) ReceiptScan() {
	scan := c.App.Group("/api/v1/receipt-scan")
	{
		scan.Post("", c.ScanHandler.ScanReceipt)
		scan.Post("/confirm", c.ScanHandler.ConfirmScan)
	}
}

func (c *Config) Settings() {
	settings := c.App.Group("/api/v1/settings")
	{
		settings.Get("/onboarding", c.SettingsHandler.GetOnboarding)
		settings.Post("/onboarding/complete", c.SettingsHandler.CompleteOnboarding)
		settings.Get("/categories", c.SettingsHandler.GetCategories)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
