package entities

import (
	"time"

	"github.com/google/uuid"
)

// ScanStatusProcessed marks a scan whose items await confirmation. Confirmed
// scans are discarded rather than kept around in a terminal state.
const ScanStatusProcessed = "processed"

// ScannedItem is a single line item recognised from a receipt.
type ScannedItem struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	PurchaseDate   *Date    `json:"purchaseDate,omitempty"`
	ExpirationDate Date     `json:"expirationDate"`
	Price          *float64 `json:"price,omitempty"`
}

// ReceiptScan holds the result of one QR-receipt scan until the user confirms
// which items to keep.
type ReceiptScan struct {
	ID        uuid.UUID     `json:"id"`
	Status    string        `json:"status"`
	Items     []ScannedItem `json:"items"`
	CreatedAt time.Time     `json:"created_at"`
}
