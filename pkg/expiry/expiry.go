package expiry

import (
	"fmt"

	"freshtrack/entities"
)

// expiringThresholdDays is the remaining-day window classified as expiring.
const expiringThresholdDays = 3

// Info is the result of evaluating a product's shelf life against a reference
// day. It is a pure function of (purchaseDate, expirationDate, today).
type Info struct {
	Status        entities.Status
	TotalDays     int
	RemainingDays int
	ElapsedDays   int
	Progress      float64
}

// Evaluate computes the freshness classification and shelf-life progress for
// the given dates. When purchase is nil, today is the effective start of the
// shelf life. A backwards range yields TotalDays <= 0 and zero progress.
func Evaluate(purchase *entities.Date, expiration entities.Date, today entities.Date) Info {
	start := today
	if purchase != nil && !purchase.IsZero() {
		start = *purchase
	}

	totalDays := start.DaysUntil(expiration)
	remainingDays := today.DaysUntil(expiration)
	elapsedDays := start.DaysUntil(today)

	progress := 0.0
	if totalDays > 0 {
		progress = float64(elapsedDays) / float64(totalDays) * 100
		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}
	}

	return Info{
		Status:        statusFor(remainingDays),
		TotalDays:     totalDays,
		RemainingDays: remainingDays,
		ElapsedDays:   elapsedDays,
		Progress:      progress,
	}
}

// ForProduct evaluates an inventory product as of today.
func ForProduct(p entities.Product, today entities.Date) Info {
	return Evaluate(p.PurchaseDate, p.ExpirationDate, today)
}

// StatusOf is a shortcut when only the classification is needed.
func StatusOf(expiration entities.Date, today entities.Date) entities.Status {
	return statusFor(today.DaysUntil(expiration))
}

func statusFor(remainingDays int) entities.Status {
	switch {
	case remainingDays < 0:
		return entities.StatusExpired
	case remainingDays <= expiringThresholdDays:
		return entities.StatusExpiring
	default:
		return entities.StatusFresh
	}
}

// Label renders the remaining time as a human-readable hint. "Expires today"
// is a label variant of the expiring status, not a status of its own.
func (i Info) Label() string {
	switch {
	case i.RemainingDays < -1:
		return fmt.Sprintf("expired %d days ago", -i.RemainingDays)
	case i.RemainingDays == -1:
		return "expired yesterday"
	case i.RemainingDays == 0:
		return "expires today"
	case i.RemainingDays == 1:
		return "expires tomorrow"
	default:
		return fmt.Sprintf("expires in %d days", i.RemainingDays)
	}
}
