package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"freshtrack/domain"
	"freshtrack/entities"
	"freshtrack/internal/api/presenters"
	"freshtrack/pkg/inventory"
)

type (
	ProductHandler interface {
		AddProduct(c *fiber.Ctx) error
		DeleteProduct(c *fiber.Ctx) error
		GetProducts(c *fiber.Ctx) error
		GetProductDetails(c *fiber.Ctx) error
		GetDashboard(c *fiber.Ctx) error
		ImportProducts(c *fiber.Ctx) error
		ExportProducts(c *fiber.Ctx) error
	}

	productHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewProductHandler(inventoryService inventory.InventoryService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *productHandler) AddProduct(c *fiber.Ctx) error {
	req := new(domain.AddProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProduct, err)
	}

	res, err := h.inventoryService.Add(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddProduct)
}

func (h *productHandler) DeleteProduct(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.inventoryService.Delete(c.Context(), itemID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteProduct, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProduct)
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	query := domain.ListProductsQuery{
		Search:   c.Query("search"),
		Category: c.Query("category", entities.CategoryAll),
		Status:   c.Query("status", string(entities.StatusAll)),
	}

	items, err := h.inventoryService.List(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"total": len(items),
	}, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) GetProductDetails(c *fiber.Ctx) error {
	itemID := c.Params("id")

	item, err := h.inventoryService.Get(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetProducts, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) GetDashboard(c *fiber.Ctx) error {
	dashboard, err := h.inventoryService.Dashboard(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, dashboard, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

// ImportProducts replaces the inventory with the posted product array.
// Products arriving without ids get freshly generated ones.
func (h *productHandler) ImportProducts(c *fiber.Ctx) error {
	var products []entities.Product
	if err := c.BodyParser(&products); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	count, err := h.inventoryService.Import(c.Context(), products)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportProducts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"imported": count,
	}, fiber.StatusOK, domain.MessageSuccessImportProducts)
}

// ExportProducts emits the products array verbatim.
func (h *productHandler) ExportProducts(c *fiber.Ctx) error {
	products, err := h.inventoryService.Export(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportProducts, err)
	}

	return c.Status(fiber.StatusOK).JSON(products)
}
