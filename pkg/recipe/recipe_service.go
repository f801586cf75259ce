package recipe

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"freshtrack/domain"
	"freshtrack/entities"
	"freshtrack/pkg/expiry"
	"freshtrack/pkg/state"
)

type (
	RecipeService interface {
		ListByCategory(ctx context.Context, category string) ([]domain.RecipeResponse, error)
		Get(ctx context.Context, id string) (domain.RecipeResponse, error)
		SuggestForProduct(ctx context.Context, productID string) (domain.RecipeSuggestionsResponse, error)
	}

	recipeService struct {
		store  *state.Store
		logger zerolog.Logger
		now    func() entities.Date
	}
)

func NewRecipeService(store *state.Store, logger zerolog.Logger) RecipeService {
	return &recipeService{
		store:  store,
		logger: logger.With().Str("component", "recipe").Logger(),
		now:    entities.Today,
	}
}

func (s *recipeService) ListByCategory(_ context.Context, category string) ([]domain.RecipeResponse, error) {
	return toResponses(ForCategory(category)), nil
}

func (s *recipeService) Get(_ context.Context, id string) (domain.RecipeResponse, error) {
	found, ok := ByID(id)
	if !ok {
		return domain.RecipeResponse{}, domain.ErrRecipeNotFound
	}
	return toResponse(found), nil
}

// SuggestForProduct returns recipes for a product's category, but only while
// the product is expiring: fresh products don't need rescuing and expired
// ones are past it.
func (s *recipeService) SuggestForProduct(_ context.Context, productID string) (domain.RecipeSuggestionsResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return domain.RecipeSuggestionsResponse{}, domain.ErrParseUUID
	}

	product, ok := s.store.FindProduct(id)
	if !ok {
		return domain.RecipeSuggestionsResponse{}, domain.ErrProductNotFound
	}

	status := expiry.StatusOf(product.ExpirationDate, s.now())
	res := domain.RecipeSuggestionsResponse{
		ProductID:   product.ID.String(),
		ProductName: product.Name,
		Status:      string(status),
		Recipes:     []domain.RecipeResponse{},
	}
	if status == entities.StatusExpiring {
		res.Recipes = toResponses(ForCategory(product.Category))
	}
	return res, nil
}

func toResponses(recipes []entities.Recipe) []domain.RecipeResponse {
	responses := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		responses = append(responses, toResponse(r))
	}
	return responses
}

func toResponse(r entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:                 r.ID,
		Name:               r.Name,
		Description:        r.Description,
		Category:           r.Category,
		CookingTimeMinutes: r.CookingTimeMinutes,
		Servings:           r.Servings,
		Difficulty:         r.Difficulty,
		Ingredients:        r.Ingredients,
		Instructions:       r.Instructions,
	}
}
