package domain

import "errors"

var (
	MessageSuccessScanReceipt  = "receipt scanned successfully"
	MessageSuccessConfirmScan  = "scanned items saved successfully"
	MessageFailedScanReceipt   = "failed to scan receipt"
	MessageFailedConfirmScan   = "failed to save scanned items"

	ErrScanNotFound     = errors.New("receipt scan not found")
	ErrScanWithoutItems = errors.New("no items to save from scan")
)

type (
	ScannedItemRequest struct {
		Name           string   `json:"name" validate:"required"`
		Category       string   `json:"category" validate:"required"`
		PurchaseDate   string   `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
		ExpirationDate string   `json:"expiration_date" validate:"required,datetime=2006-01-02"`
		Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	}

	ConfirmScanRequest struct {
		ScanID string               `json:"scan_id" validate:"required,uuid"`
		Items  []ScannedItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	ScannedItemResponse struct {
		Name           string   `json:"name"`
		Category       string   `json:"category"`
		PurchaseDate   string   `json:"purchase_date,omitempty"`
		ExpirationDate string   `json:"expiration_date"`
		Price          *float64 `json:"price,omitempty"`
	}

	ScanResponse struct {
		ScanID string                `json:"scan_id"`
		Status string                `json:"status"`
		Items  []ScannedItemResponse `json:"items"`
	}
)
