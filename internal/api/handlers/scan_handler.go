package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"freshtrack/domain"
	"freshtrack/internal/api/presenters"
	"freshtrack/pkg/scan"
)

type (
	ScanHandler interface {
		ScanReceipt(c *fiber.Ctx) error
		ConfirmScan(c *fiber.Ctx) error
	}

	scanHandler struct {
		scanService scan.ScanService
		validator   *validator.Validate
	}
)

func NewScanHandler(scanService scan.ScanService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		scanService: scanService,
		validator:   validator,
	}
}

func (h *scanHandler) ScanReceipt(c *fiber.Ctx) error {
	res, err := h.scanService.Scan(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScanReceipt)
}

func (h *scanHandler) ConfirmScan(c *fiber.Ctx) error {
	req := new(domain.ConfirmScanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmScan, err)
	}

	added, err := h.scanService.Confirm(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrScanNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedConfirmScan, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmScan, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": added,
		"saved": len(added),
	}, fiber.StatusCreated, domain.MessageSuccessConfirmScan)
}
