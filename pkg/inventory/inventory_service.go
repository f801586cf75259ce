package inventory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"freshtrack/domain"
	"freshtrack/entities"
	"freshtrack/pkg/expiry"
	"freshtrack/pkg/state"
)

// upcomingLimit caps the dashboard's "expires soon" list.
const upcomingLimit = 5

type (
	InventoryService interface {
		Add(ctx context.Context, req domain.AddProductRequest) (domain.ProductResponse, error)
		AddBatch(ctx context.Context, reqs []domain.AddProductRequest) ([]domain.ProductResponse, error)
		Delete(ctx context.Context, id string) error
		Get(ctx context.Context, id string) (domain.ProductResponse, error)
		List(ctx context.Context, query domain.ListProductsQuery) ([]domain.ProductResponse, error)
		Dashboard(ctx context.Context) (domain.DashboardResponse, error)
		Import(ctx context.Context, products []entities.Product) (int, error)
		Export(ctx context.Context) ([]entities.Product, error)
	}

	inventoryService struct {
		store  *state.Store
		logger zerolog.Logger
		now    func() entities.Date
	}
)

func NewInventoryService(store *state.Store, logger zerolog.Logger) InventoryService {
	return &inventoryService{
		store:  store,
		logger: logger.With().Str("component", "inventory").Logger(),
		now:    entities.Today,
	}
}

func (s *inventoryService) Add(ctx context.Context, req domain.AddProductRequest) (domain.ProductResponse, error) {
	product, err := s.buildProduct(req)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	s.store.Append(product)
	s.store.Persist(ctx)

	s.logger.Info().Str("product_id", product.ID.String()).Str("name", product.Name).Msg("product added")
	return s.toResponse(product), nil
}

func (s *inventoryService) AddBatch(ctx context.Context, reqs []domain.AddProductRequest) ([]domain.ProductResponse, error) {
	products := make([]entities.Product, 0, len(reqs))
	for _, req := range reqs {
		product, err := s.buildProduct(req)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	s.store.Append(products...)
	s.store.Persist(ctx)

	responses := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, s.toResponse(p))
	}
	s.logger.Info().Int("count", len(products)).Msg("products added")
	return responses, nil
}

func (s *inventoryService) Delete(ctx context.Context, id string) error {
	productID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	removed, ok := s.store.RemoveProduct(productID)
	if !ok {
		return domain.ErrProductNotFound
	}
	s.store.Persist(ctx)

	s.logger.Info().Str("product_id", removed.ID.String()).Msg("product deleted")
	return nil
}

func (s *inventoryService) Get(ctx context.Context, id string) (domain.ProductResponse, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return domain.ProductResponse{}, domain.ErrParseUUID
	}

	product, ok := s.store.FindProduct(productID)
	if !ok {
		return domain.ProductResponse{}, domain.ErrProductNotFound
	}
	return s.toResponse(product), nil
}

func (s *inventoryService) List(_ context.Context, query domain.ListProductsQuery) ([]domain.ProductResponse, error) {
	today := s.now()
	filtered := Filter(s.store.Products(), FilterOptions{
		Search:   query.Search,
		Category: query.Category,
		Status:   entities.Status(query.Status),
	}, today)
	sorted := SortByUrgency(filtered, today)

	responses := make([]domain.ProductResponse, 0, len(sorted))
	for _, p := range sorted {
		responses = append(responses, s.toResponse(p))
	}
	return responses, nil
}

func (s *inventoryService) Dashboard(_ context.Context) (domain.DashboardResponse, error) {
	today := s.now()
	products := s.store.Products()

	counts := Classify(products, today)
	upcoming := Upcoming(products, upcomingLimit, today)

	categories := make([]domain.CategoryCount, 0)
	for category, count := range CategoryCounts(products) {
		categories = append(categories, domain.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Count != categories[j].Count {
			return categories[i].Count > categories[j].Count
		}
		return categories[i].Category < categories[j].Category
	})

	upcomingResponses := make([]domain.ProductResponse, 0, len(upcoming))
	for _, p := range upcoming {
		upcomingResponses = append(upcomingResponses, s.toResponse(p))
	}

	return domain.DashboardResponse{
		Counts: domain.StatusCountsResponse{
			Fresh:    counts.Fresh,
			Expiring: counts.Expiring,
			Expired:  counts.Expired,
			Total:    counts.Total(),
		},
		Categories: categories,
		Upcoming:   upcomingResponses,
	}, nil
}

// Import replaces the inventory wholesale. Every product gets a fresh id and
// any stray archive fields are stripped so the active/archived invariant
// holds. The archive is untouched.
func (s *inventoryService) Import(ctx context.Context, products []entities.Product) (int, error) {
	if len(products) == 0 {
		return 0, domain.ErrEmptyImport
	}

	imported := make([]entities.Product, 0, len(products))
	for _, p := range products {
		if strings.TrimSpace(p.Name) == "" || p.ExpirationDate.IsZero() {
			return 0, domain.ErrMissingRequiredFields
		}
		p.ID = uuid.New()
		p.ArchivedDate = nil
		p.ArchiveReason = ""
		imported = append(imported, p)
	}

	s.store.ReplaceProducts(imported)
	s.store.Persist(ctx)

	s.logger.Info().Int("count", len(imported)).Msg("inventory imported")
	return len(imported), nil
}

// Export returns the active inventory verbatim, in insertion order.
func (s *inventoryService) Export(_ context.Context) ([]entities.Product, error) {
	return s.store.Products(), nil
}

func (s *inventoryService) buildProduct(req domain.AddProductRequest) (entities.Product, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Category) == "" || req.ExpirationDate == "" {
		return entities.Product{}, domain.ErrMissingRequiredFields
	}

	expiration, err := entities.ParseDate(req.ExpirationDate)
	if err != nil {
		return entities.Product{}, domain.ErrInvalidDate
	}

	if req.Price != nil && *req.Price < 0 {
		return entities.Product{}, domain.ErrNegativePrice
	}

	product := entities.Product{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(req.Name),
		Category:       req.Category,
		ExpirationDate: expiration,
		Price:          req.Price,
	}

	if req.PurchaseDate != "" {
		purchase, err := entities.ParseDate(req.PurchaseDate)
		if err != nil {
			return entities.Product{}, domain.ErrInvalidDate
		}
		product.PurchaseDate = &purchase
	}

	return product, nil
}

func (s *inventoryService) toResponse(p entities.Product) domain.ProductResponse {
	info := expiry.ForProduct(p, s.now())

	res := domain.ProductResponse{
		ID:             p.ID.String(),
		Name:           p.Name,
		Category:       p.Category,
		ExpirationDate: p.ExpirationDate.String(),
		Price:          p.Price,
		Status:         string(info.Status),
		RemainingDays:  info.RemainingDays,
		TotalDays:      info.TotalDays,
		ElapsedDays:    info.ElapsedDays,
		Progress:       info.Progress,
		ExpiryLabel:    info.Label(),
	}
	if p.PurchaseDate != nil {
		res.PurchaseDate = p.PurchaseDate.String()
	}
	return res
}
