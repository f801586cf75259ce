package domain

import "errors"

var (
	MessageSuccessMarkUsed        = "product marked as used"
	MessageSuccessArchiveExpired  = "product archived as expired"
	MessageSuccessArchiveAll      = "expired products archived"
	MessageSuccessClearHistory    = "history cleared successfully"
	MessageSuccessGetHistory      = "history retrieved successfully"
	MessageSuccessGetArchiveStats = "archive statistics retrieved successfully"
	MessageSuccessGetTrend        = "expiration trend retrieved successfully"

	MessageFailedMarkUsed        = "failed to mark product as used"
	MessageFailedArchiveExpired  = "failed to archive product as expired"
	MessageFailedArchiveAll      = "failed to archive expired products"
	MessageFailedClearHistory    = "failed to clear history"
	MessageFailedGetHistory      = "failed to retrieve history"
	MessageFailedGetArchiveStats = "failed to retrieve archive statistics"
	MessageFailedGetTrend        = "failed to retrieve expiration trend"

	ErrAlreadyArchived = errors.New("product is already archived")
)

type (
	ArchivedProductResponse struct {
		ID             string   `json:"id"`
		Name           string   `json:"name"`
		Category       string   `json:"category"`
		PurchaseDate   string   `json:"purchase_date,omitempty"`
		ExpirationDate string   `json:"expiration_date"`
		Price          *float64 `json:"price,omitempty"`
		ArchivedDate   string   `json:"archived_date"`
		ArchiveReason  string   `json:"archive_reason"`
	}

	ArchiveStatsResponse struct {
		Total        int `json:"total"`
		UsedCount    int `json:"used_count"`
		ExpiredCount int `json:"expired_count"`
	}

	TrendPointResponse struct {
		Month        string  `json:"month"`
		ExpiredCount int     `json:"expired_count"`
		ExpiredCost  float64 `json:"expired_cost"`
	}

	MonthExpiredResponse struct {
		Count int     `json:"count"`
		Cost  float64 `json:"cost"`
	}

	ArchiveAllResponse struct {
		ArchivedCount int `json:"archived_count"`
	}
)
