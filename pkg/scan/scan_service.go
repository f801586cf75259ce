package scan

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"freshtrack/domain"
	"freshtrack/entities"
	"freshtrack/pkg/inventory"
)

type (
	// ScanService simulates the QR-receipt scanner: a scan immediately
	// resolves to a canned set of line items which the user edits and then
	// confirms into the inventory.
	ScanService interface {
		Scan(ctx context.Context) (domain.ScanResponse, error)
		Confirm(ctx context.Context, req domain.ConfirmScanRequest) ([]domain.ProductResponse, error)
	}

	scanService struct {
		inventory inventory.InventoryService
		logger    zerolog.Logger
		now       func() entities.Date

		mu    sync.Mutex
		scans map[uuid.UUID]*entities.ReceiptScan
	}
)

func NewScanService(inventoryService inventory.InventoryService, logger zerolog.Logger) ScanService {
	return &scanService{
		inventory: inventoryService,
		logger:    logger.With().Str("component", "scan").Logger(),
		now:       entities.Today,
		scans:     make(map[uuid.UUID]*entities.ReceiptScan),
	}
}

// mockReceiptItems is what every scan "recognises" until a real OCR backend
// exists.
func mockReceiptItems(today entities.Date) []entities.ScannedItem {
	purchase := today
	price := func(v float64) *float64 { return &v }
	return []entities.ScannedItem{
		{
			Name:           "Milk 3.2%",
			Category:       "Dairy",
			PurchaseDate:   &purchase,
			ExpirationDate: today.AddDays(5),
			Price:          price(89.50),
		},
		{
			Name:           "Dark Bread",
			Category:       "Bakery",
			PurchaseDate:   &purchase,
			ExpirationDate: today.AddDays(3),
			Price:          price(45.00),
		},
		{
			Name:           "Red Apples",
			Category:       "Fruits",
			PurchaseDate:   &purchase,
			ExpirationDate: today.AddDays(7),
			Price:          price(125.30),
		},
	}
}

func (s *scanService) Scan(_ context.Context) (domain.ScanResponse, error) {
	receiptScan := &entities.ReceiptScan{
		ID:        uuid.New(),
		Status:    entities.ScanStatusProcessed,
		Items:     mockReceiptItems(s.now()),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.scans[receiptScan.ID] = receiptScan
	s.mu.Unlock()

	s.logger.Info().Str("scan_id", receiptScan.ID.String()).Int("items", len(receiptScan.Items)).Msg("receipt scanned")
	return toScanResponse(receiptScan), nil
}

func (s *scanService) Confirm(ctx context.Context, req domain.ConfirmScanRequest) ([]domain.ProductResponse, error) {
	scanID, err := uuid.Parse(req.ScanID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	if len(req.Items) == 0 {
		return nil, domain.ErrScanWithoutItems
	}

	s.mu.Lock()
	_, ok := s.scans[scanID]
	s.mu.Unlock()
	if !ok {
		return nil, domain.ErrScanNotFound
	}

	requests := make([]domain.AddProductRequest, 0, len(req.Items))
	for _, item := range req.Items {
		requests = append(requests, domain.AddProductRequest{
			Name:           item.Name,
			Category:       item.Category,
			PurchaseDate:   item.PurchaseDate,
			ExpirationDate: item.ExpirationDate,
			Price:          item.Price,
		})
	}

	added, err := s.inventory.AddBatch(ctx, requests)
	if err != nil {
		return nil, err
	}

	// the scan is spent once its items land in the inventory; drop it so
	// the map does not grow for the lifetime of the process
	s.mu.Lock()
	delete(s.scans, scanID)
	s.mu.Unlock()

	s.logger.Info().Str("scan_id", scanID.String()).Int("saved", len(added)).Msg("scanned items saved")
	return added, nil
}

func toScanResponse(scan *entities.ReceiptScan) domain.ScanResponse {
	items := make([]domain.ScannedItemResponse, 0, len(scan.Items))
	for _, item := range scan.Items {
		res := domain.ScannedItemResponse{
			Name:           item.Name,
			Category:       item.Category,
			ExpirationDate: item.ExpirationDate.String(),
			Price:          item.Price,
		}
		if item.PurchaseDate != nil {
			res.PurchaseDate = item.PurchaseDate.String()
		}
		items = append(items, res)
	}
	return domain.ScanResponse{
		ScanID: scan.ID.String(),
		Status: scan.Status,
		Items:  items,
	}
}
