package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"freshtrack/domain"
	"freshtrack/internal/api/presenters"
	"freshtrack/pkg/archive"
)

type (
	ArchiveHandler interface {
		MarkUsed(c *fiber.Ctx) error
		ArchiveExpired(c *fiber.Ctx) error
		ArchiveAllExpired(c *fiber.Ctx) error
		GetHistory(c *fiber.Ctx) error
		ClearHistory(c *fiber.Ctx) error
		GetStats(c *fiber.Ctx) error
		GetTrend(c *fiber.Ctx) error
		GetCurrentMonth(c *fiber.Ctx) error
		GetExpiredByCategory(c *fiber.Ctx) error
	}

	archiveHandler struct {
		archiveService archive.ArchiveService
	}
)

func NewArchiveHandler(archiveService archive.ArchiveService) ArchiveHandler {
	return &archiveHandler{archiveService: archiveService}
}

func (h *archiveHandler) MarkUsed(c *fiber.Ctx) error {
	itemID := c.Params("id")

	res, err := h.archiveService.MarkUsed(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedMarkUsed, err)
		}
		if errors.Is(err, domain.ErrAlreadyArchived) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedMarkUsed, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkUsed, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessMarkUsed)
}

func (h *archiveHandler) ArchiveExpired(c *fiber.Ctx) error {
	itemID := c.Params("id")

	res, err := h.archiveService.ArchiveExpired(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedArchiveExpired, err)
		}
		if errors.Is(err, domain.ErrAlreadyArchived) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedArchiveExpired, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedArchiveExpired, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessArchiveExpired)
}

func (h *archiveHandler) ArchiveAllExpired(c *fiber.Ctx) error {
	count, err := h.archiveService.ArchiveAllExpired(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedArchiveAll, err)
	}

	return presenters.SuccessResponse(c, domain.ArchiveAllResponse{
		ArchivedCount: count,
	}, fiber.StatusOK, domain.MessageSuccessArchiveAll)
}

func (h *archiveHandler) GetHistory(c *fiber.Ctx) error {
	items, err := h.archiveService.List(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"total": len(items),
	}, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func (h *archiveHandler) ClearHistory(c *fiber.Ctx) error {
	if err := h.archiveService.ClearHistory(c.Context()); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearHistory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearHistory)
}

func (h *archiveHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.archiveService.Stats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetArchiveStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetArchiveStats)
}

func (h *archiveHandler) GetTrend(c *fiber.Ctx) error {
	months, err := strconv.Atoi(c.Query("months", "6"))
	if err != nil || months < 1 {
		months = 6
	}

	trend, err := h.archiveService.MonthlyExpiredTrend(c.Context(), months)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTrend, err)
	}

	totalCost, err := h.archiveService.TotalExpiredCost(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTrend, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"points":             trend,
		"total_expired_cost": totalCost,
	}, fiber.StatusOK, domain.MessageSuccessGetTrend)
}

func (h *archiveHandler) GetCurrentMonth(c *fiber.Ctx) error {
	res, err := h.archiveService.CurrentMonthExpired(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetArchiveStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetArchiveStats)
}

func (h *archiveHandler) GetExpiredByCategory(c *fiber.Ctx) error {
	counts, err := h.archiveService.ExpiredByCategory(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetArchiveStats, err)
	}

	return presenters.SuccessResponse(c, counts, fiber.StatusOK, domain.MessageSuccessGetArchiveStats)
}
