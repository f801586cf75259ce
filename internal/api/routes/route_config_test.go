package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshtrack/entities"
	"freshtrack/internal/api/handlers"
	"freshtrack/internal/middleware"
	"freshtrack/internal/utils"
	"freshtrack/pkg/archive"
	"freshtrack/pkg/inventory"
	"freshtrack/pkg/recipe"
	"freshtrack/pkg/scan"
	"freshtrack/pkg/state"
)

func setupTestApp(t *testing.T) (*fiber.App, *state.Store) {
	t.Helper()
	utils.InitValidator()

	store := state.NewStore(nil, zerolog.Nop())
	logger := zerolog.Nop()

	inventoryService := inventory.NewInventoryService(store, logger)
	archiveService := archive.NewArchiveService(store, logger)
	recipeService := recipe.NewRecipeService(store, logger)
	scanService := scan.NewScanService(inventoryService, logger)

	app := fiber.New()
	cfg := Config{
		App:             app,
		ProductHandler:  handlers.NewProductHandler(inventoryService, utils.Validate),
		ArchiveHandler:  handlers.NewArchiveHandler(archiveService),
		RecipeHandler:   handlers.NewRecipeHandler(recipeService),
		ScanHandler:     handlers.NewScanHandler(scanService, utils.Validate),
		SettingsHandler: handlers.NewSettingsHandler(store),
		Middleware:      middleware.NewMiddleware(),
	}
	cfg.Setup()
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := app.Test(req, -1)
	require.NoError(t, err)

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var envelope map[string]interface{}
	if len(data) > 0 && data[0] == '{' {
		require.NoError(t, json.Unmarshal(data, &envelope))
	}
	return res, envelope
}

func TestPing(t *testing.T) {
	app, _ := setupTestApp(t)

	res, body := doJSON(t, app, http.MethodGet, "/api/ping", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "pong", body["message"])
}

func TestProductLifecycle(t *testing.T) {
	app, store := setupTestApp(t)
	today := entities.Today()

	res, body := doJSON(t, app, http.MethodPost, "/api/v1/products", fiber.Map{
		"name":            "Milk 3.2%",
		"category":        "Dairy",
		"expiration_date": today.AddDays(5).String(),
		"price":           89.50,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	created := body["data"].(map[string]interface{})
	productID := created["id"].(string)
	assert.Equal(t, "fresh", created["status"])

	res, body = doJSON(t, app, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	listed := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), listed["total"])

	res, _ = doJSON(t, app, http.MethodGet, "/api/v1/products/"+productID, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/products/%s/used", productID), nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, store.Products())
	assert.Len(t, store.Archived(), 1)

	res, _ = doJSON(t, app, http.MethodGet, "/api/v1/products/"+productID, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// archiving the same product again conflicts instead of 404ing
	res, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/products/%s/used", productID), nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestAddProductRejectsBadPayload(t *testing.T) {
	app, _ := setupTestApp(t)

	res, _ := doJSON(t, app, http.MethodPost, "/api/v1/products", fiber.Map{
		"name": "No expiration",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = doJSON(t, app, http.MethodPost, "/api/v1/products", fiber.Map{
		"name":            "Bad date",
		"category":        "Dairy",
		"expiration_date": "15/03/2026",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestDashboardRoute(t *testing.T) {
	app, _ := setupTestApp(t)
	today := entities.Today()

	for _, p := range []struct {
		name string
		days int
	}{
		{"Fresh", 10},
		{"Expiring", 2},
	} {
		res, _ := doJSON(t, app, http.MethodPost, "/api/v1/products", fiber.Map{
			"name":            p.name,
			"category":        "Other",
			"expiration_date": today.AddDays(p.days).String(),
		})
		require.Equal(t, http.StatusCreated, res.StatusCode)
	}

	res, body := doJSON(t, app, http.MethodGet, "/api/v1/products/dashboard", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	data := body["data"].(map[string]interface{})
	counts := data["counts"].(map[string]interface{})
	assert.Equal(t, float64(1), counts["fresh"])
	assert.Equal(t, float64(1), counts["expiring"])
	assert.Equal(t, float64(2), counts["total"])
}

func TestHistoryRoutes(t *testing.T) {
	app, store := setupTestApp(t)
	today := entities.Today()

	res, body := doJSON(t, app, http.MethodPost, "/api/v1/products", fiber.Map{
		"name":            "Old Bread",
		"category":        "Bakery",
		"expiration_date": today.AddDays(-2).String(),
		"price":           45.0,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body = doJSON(t, app, http.MethodPost, "/api/v1/products/archive-expired", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	archivedCount := body["data"].(map[string]interface{})["archived_count"]
	assert.Equal(t, float64(1), archivedCount)

	res, body = doJSON(t, app, http.MethodGet, "/api/v1/history/stats", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	stats := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["expired_count"])

	res, body = doJSON(t, app, http.MethodGet, "/api/v1/history/trend", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = doJSON(t, app, http.MethodDelete, "/api/v1/history", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, store.Archived())
}

func TestExportImportRoutes(t *testing.T) {
	app, _ := setupTestApp(t)
	today := entities.Today()

	res, _ := doJSON(t, app, http.MethodPost, "/api/v1/products", fiber.Map{
		"name":            "Milk",
		"category":        "Dairy",
		"expiration_date": today.AddDays(5).String(),
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/export", nil)
	exportRes, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, exportRes.StatusCode)

	data, err := io.ReadAll(exportRes.Body)
	require.NoError(t, err)

	var exported []entities.Product
	require.NoError(t, json.Unmarshal(data, &exported))
	require.Len(t, exported, 1)
	assert.Equal(t, "Milk", exported[0].Name)

	res, body := doJSON(t, app, http.MethodPost, "/api/v1/products/import", []fiber.Map{
		{"name": "Imported", "category": "Other", "expirationDate": today.AddDays(3).String()},
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, float64(1), body["data"].(map[string]interface{})["imported"])

	res, body = doJSON(t, app, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, float64(1), body["data"].(map[string]interface{})["total"])
}

func TestOnboardingRoutes(t *testing.T) {
	app, _ := setupTestApp(t)

	res, body := doJSON(t, app, http.MethodGet, "/api/v1/settings/onboarding", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, false, body["data"].(map[string]interface{})["has_completed_onboarding"])

	res, _ = doJSON(t, app, http.MethodPost, "/api/v1/settings/onboarding/complete", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = doJSON(t, app, http.MethodGet, "/api/v1/settings/onboarding", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, true, body["data"].(map[string]interface{})["has_completed_onboarding"])
}

func TestReceiptScanRoutes(t *testing.T) {
	app, store := setupTestApp(t)

	res, body := doJSON(t, app, http.MethodPost, "/api/v1/receipt-scan", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	scanned := body["data"].(map[string]interface{})
	scanID := scanned["scan_id"].(string)
	items := scanned["items"].([]interface{})
	require.Len(t, items, 3)

	first := items[0].(map[string]interface{})
	res, _ = doJSON(t, app, http.MethodPost, "/api/v1/receipt-scan/confirm", fiber.Map{
		"scan_id": scanID,
		"items": []fiber.Map{{
			"name":            first["name"],
			"category":        first["category"],
			"expiration_date": first["expiration_date"],
		}},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Len(t, store.Products(), 1)
}

func TestRecipeRoutes(t *testing.T) {
	app, _ := setupTestApp(t)

	res, body := doJSON(t, app, http.MethodGet, "/api/v1/recipes?category=Dairy", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	recipes := body["data"].(map[string]interface{})["recipes"].([]interface{})
	assert.NotEmpty(t, recipes)

	res, _ = doJSON(t, app, http.MethodGet, "/api/v1/recipes/dairy-pancakes", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = doJSON(t, app, http.MethodGet, "/api/v1/recipes/no-such-recipe", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
