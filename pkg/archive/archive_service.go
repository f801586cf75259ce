package archive

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"freshtrack/domain"
	"freshtrack/entities"
	"freshtrack/pkg/expiry"
	"freshtrack/pkg/state"
)

// trendMonths is the default rolling window of the expiration trend.
const trendMonths = 6

// expiredCategoryLimit caps the "what spoils most often" breakdown.
const expiredCategoryLimit = 6

type (
	ArchiveService interface {
		MarkUsed(ctx context.Context, id string) (domain.ArchivedProductResponse, error)
		ArchiveExpired(ctx context.Context, id string) (domain.ArchivedProductResponse, error)
		ArchiveAllExpired(ctx context.Context) (int, error)
		ClearHistory(ctx context.Context) error
		List(ctx context.Context) ([]domain.ArchivedProductResponse, error)
		Stats(ctx context.Context) (domain.ArchiveStatsResponse, error)
		MonthlyExpiredTrend(ctx context.Context, monthsBack int) ([]domain.TrendPointResponse, error)
		CurrentMonthExpired(ctx context.Context) (domain.MonthExpiredResponse, error)
		TotalExpiredCost(ctx context.Context) (float64, error)
		ExpiredByCategory(ctx context.Context) ([]domain.CategoryCount, error)
	}

	archiveService struct {
		store  *state.Store
		logger zerolog.Logger
		now    func() entities.Date
	}
)

func NewArchiveService(store *state.Store, logger zerolog.Logger) ArchiveService {
	return &archiveService{
		store:  store,
		logger: logger.With().Str("component", "archive").Logger(),
		now:    entities.Today,
	}
}

func (s *archiveService) MarkUsed(ctx context.Context, id string) (domain.ArchivedProductResponse, error) {
	return s.archive(ctx, id, entities.ReasonUsed)
}

func (s *archiveService) ArchiveExpired(ctx context.Context, id string) (domain.ArchivedProductResponse, error) {
	return s.archive(ctx, id, entities.ReasonExpired)
}

func (s *archiveService) archive(ctx context.Context, id string, reason entities.ArchiveReason) (domain.ArchivedProductResponse, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return domain.ArchivedProductResponse{}, domain.ErrParseUUID
	}

	archived, ok := s.store.ArchiveProduct(productID, reason, s.now())
	if !ok {
		if s.inArchive(productID) {
			return domain.ArchivedProductResponse{}, domain.ErrAlreadyArchived
		}
		return domain.ArchivedProductResponse{}, domain.ErrProductNotFound
	}
	s.store.Persist(ctx)

	s.logger.Info().
		Str("product_id", archived.ID.String()).
		Str("reason", string(reason)).
		Msg("product archived")
	return toArchivedResponse(archived), nil
}

func (s *archiveService) inArchive(id uuid.UUID) bool {
	for _, p := range s.store.Archived() {
		if p.ID == id {
			return true
		}
	}
	return false
}

// ArchiveAllExpired moves every currently expired product into the archive
// with the expired reason. This backs the "delete expired" quick action.
func (s *archiveService) ArchiveAllExpired(ctx context.Context) (int, error) {
	today := s.now()

	var expired []uuid.UUID
	for _, p := range s.store.Products() {
		if expiry.StatusOf(p.ExpirationDate, today) == entities.StatusExpired {
			expired = append(expired, p.ID)
		}
	}

	for _, id := range expired {
		s.store.ArchiveProduct(id, entities.ReasonExpired, today)
	}
	if len(expired) > 0 {
		s.store.Persist(ctx)
	}

	s.logger.Info().Int("count", len(expired)).Msg("expired products archived")
	return len(expired), nil
}

func (s *archiveService) ClearHistory(ctx context.Context) error {
	cleared := s.store.ClearArchive()
	s.store.Persist(ctx)

	s.logger.Info().Int("count", cleared).Msg("history cleared")
	return nil
}

// List returns the archive newest first by archive date.
func (s *archiveService) List(_ context.Context) ([]domain.ArchivedProductResponse, error) {
	archived := s.store.Archived()
	sort.SliceStable(archived, func(i, j int) bool {
		a, b := archived[i], archived[j]
		if a.ArchivedDate == nil || b.ArchivedDate == nil {
			return b.ArchivedDate == nil && a.ArchivedDate != nil
		}
		return b.ArchivedDate.Before(a.ArchivedDate.Time)
	})

	responses := make([]domain.ArchivedProductResponse, 0, len(archived))
	for _, p := range archived {
		responses = append(responses, toArchivedResponse(p))
	}
	return responses, nil
}

func (s *archiveService) Stats(_ context.Context) (domain.ArchiveStatsResponse, error) {
	stats := ComputeStats(s.store.Archived())
	return domain.ArchiveStatsResponse{
		Total:        stats.Total,
		UsedCount:    stats.Used,
		ExpiredCount: stats.Expired,
	}, nil
}

func (s *archiveService) MonthlyExpiredTrend(_ context.Context, monthsBack int) ([]domain.TrendPointResponse, error) {
	if monthsBack <= 0 {
		monthsBack = trendMonths
	}

	points := MonthlyExpiredTrend(s.store.Archived(), monthsBack, s.now())
	responses := make([]domain.TrendPointResponse, 0, len(points))
	for _, point := range points {
		responses = append(responses, domain.TrendPointResponse{
			Month:        point.Month.Format("Jan 2006"),
			ExpiredCount: point.ExpiredCount,
			ExpiredCost:  point.ExpiredCost,
		})
	}
	return responses, nil
}

func (s *archiveService) CurrentMonthExpired(_ context.Context) (domain.MonthExpiredResponse, error) {
	count, cost := CurrentMonthExpired(s.store.Archived(), s.now())
	return domain.MonthExpiredResponse{Count: count, Cost: cost}, nil
}

func (s *archiveService) TotalExpiredCost(_ context.Context) (float64, error) {
	return TotalExpiredCost(s.store.Archived()), nil
}

func (s *archiveService) ExpiredByCategory(_ context.Context) ([]domain.CategoryCount, error) {
	counts := ExpiredByCategory(s.store.Archived(), expiredCategoryLimit)
	responses := make([]domain.CategoryCount, 0, len(counts))
	for _, c := range counts {
		responses = append(responses, domain.CategoryCount{Category: c.Category, Count: c.Count})
	}
	return responses, nil
}

func toArchivedResponse(p entities.Product) domain.ArchivedProductResponse {
	res := domain.ArchivedProductResponse{
		ID:             p.ID.String(),
		Name:           p.Name,
		Category:       p.Category,
		ExpirationDate: p.ExpirationDate.String(),
		Price:          p.Price,
		ArchiveReason:  string(p.ArchiveReason),
	}
	if p.PurchaseDate != nil {
		res.PurchaseDate = p.PurchaseDate.String()
	}
	if p.ArchivedDate != nil {
		res.ArchivedDate = p.ArchivedDate.String()
	}
	return res
}
