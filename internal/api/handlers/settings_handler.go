package handlers

import (
	"github.com/gofiber/fiber/v2"

	"freshtrack/domain"
	"freshtrack/entities"
	"freshtrack/internal/api/presenters"
	"freshtrack/pkg/state"
)

type (
	SettingsHandler interface {
		GetOnboarding(c *fiber.Ctx) error
		CompleteOnboarding(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
	}

	settingsHandler struct {
		store *state.Store
	}
)

func NewSettingsHandler(store *state.Store) SettingsHandler {
	return &settingsHandler{store: store}
}

func (h *settingsHandler) GetOnboarding(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, domain.OnboardingResponse{
		HasCompletedOnboarding: h.store.Onboarded(),
	}, fiber.StatusOK, domain.MessageSuccessGetOnboarding)
}

func (h *settingsHandler) CompleteOnboarding(c *fiber.Ctx) error {
	h.store.CompleteOnboarding()
	h.store.Persist(c.Context())

	return presenters.SuccessResponse(c, domain.OnboardingResponse{
		HasCompletedOnboarding: true,
	}, fiber.StatusOK, domain.MessageSuccessCompleteOnboarding)
}

func (h *settingsHandler) GetCategories(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.Map{
		"categories": entities.Categories,
	}, fiber.StatusOK, domain.MessageSuccessGetCategories)
}
