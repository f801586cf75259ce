package entities

import (
	"github.com/google/uuid"
)

// Status is the freshness classification of an active product.
type Status string

const (
	StatusFresh    Status = "fresh"
	StatusExpiring Status = "expiring"
	StatusExpired  Status = "expired"

	// StatusAll is the filter sentinel matching every status.
	StatusAll Status = "all"
)

func (s Status) Valid() bool {
	return s == StatusFresh || s == StatusExpiring || s == StatusExpired
}

// ArchiveReason records why a product left the inventory.
type ArchiveReason string

const (
	ReasonUsed    ArchiveReason = "used"
	ReasonExpired ArchiveReason = "expired"
)

func (r ArchiveReason) Valid() bool {
	return r == ReasonUsed || r == ReasonExpired
}

// Categories is the closed set offered by the add-product form. Products
// carrying other category strings are preserved as-is; the list only gates
// what the form suggests.
var Categories = []string{
	"Dairy",
	"Meat & Fish",
	"Vegetables",
	"Fruits",
	"Bakery",
	"Canned",
	"Beverages",
	"Frozen",
	"Ready Meals",
	"Sauces & Spices",
	"Other",
}

// CategoryAll is the filter sentinel matching every category.
const CategoryAll = "all"

func KnownCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type Product struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Category       string        `json:"category"`
	PurchaseDate   *Date         `json:"purchaseDate,omitempty"`
	ExpirationDate Date          `json:"expirationDate"`
	Price          *float64      `json:"price,omitempty"`
	ArchivedDate   *Date         `json:"archivedDate,omitempty"`
	ArchiveReason  ArchiveReason `json:"archiveReason,omitempty"`
}

// Archived reports whether the product has left the inventory. A product is
// either fully active (neither archive field set) or fully archived (both set).
func (p Product) Archived() bool {
	return p.ArchivedDate != nil && p.ArchiveReason != ""
}

// PriceValue returns the price, treating an unset price as zero.
func (p Product) PriceValue() float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}
