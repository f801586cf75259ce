package inventory

import (
	"sort"
	"strings"

	"freshtrack/entities"
	"freshtrack/pkg/expiry"
)

// Counts partitions the inventory by freshness status. Every product lands in
// exactly one bucket, so Fresh+Expiring+Expired equals the input length.
type Counts struct {
	Fresh    int
	Expiring int
	Expired  int
}

func (c Counts) Total() int {
	return c.Fresh + c.Expiring + c.Expired
}

// Classify counts products per status as of today.
func Classify(products []entities.Product, today entities.Date) Counts {
	var counts Counts
	for _, p := range products {
		switch expiry.StatusOf(p.ExpirationDate, today) {
		case entities.StatusExpired:
			counts.Expired++
		case entities.StatusExpiring:
			counts.Expiring++
		default:
			counts.Fresh++
		}
	}
	return counts
}

// FilterOptions combine with AND. Empty search matches everything; empty or
// "all" category/status are sentinels matching everything.
type FilterOptions struct {
	Search   string
	Category string
	Status   entities.Status
}

// Filter returns the products matching every predicate in opts.
func Filter(products []entities.Product, opts FilterOptions, today entities.Date) []entities.Product {
	search := strings.ToLower(opts.Search)

	matched := make([]entities.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if opts.Category != "" && opts.Category != entities.CategoryAll && p.Category != opts.Category {
			continue
		}
		if opts.Status != "" && opts.Status != entities.StatusAll &&
			expiry.StatusOf(p.ExpirationDate, today) != opts.Status {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

var statusPriority = map[entities.Status]int{
	entities.StatusExpired:  0,
	entities.StatusExpiring: 1,
	entities.StatusFresh:    2,
}

// SortByUrgency orders products most urgent first: expired, then expiring,
// then fresh, and within a status by expiration date ascending. The sort is
// stable so equal keys keep their insertion order.
func SortByUrgency(products []entities.Product, today entities.Date) []entities.Product {
	sorted := append([]entities.Product(nil), products...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		ap := statusPriority[expiry.StatusOf(a.ExpirationDate, today)]
		bp := statusPriority[expiry.StatusOf(b.ExpirationDate, today)]
		if ap != bp {
			return ap < bp
		}
		return a.ExpirationDate.Before(b.ExpirationDate.Time)
	})
	return sorted
}

// Upcoming returns the expiring and expired products closest to their
// expiration date, at most limit entries.
func Upcoming(products []entities.Product, limit int, today entities.Date) []entities.Product {
	urgent := make([]entities.Product, 0, len(products))
	for _, p := range products {
		status := expiry.StatusOf(p.ExpirationDate, today)
		if status == entities.StatusExpiring || status == entities.StatusExpired {
			urgent = append(urgent, p)
		}
	}

	sort.SliceStable(urgent, func(i, j int) bool {
		return urgent[i].ExpirationDate.Before(urgent[j].ExpirationDate.Time)
	})

	if limit >= 0 && len(urgent) > limit {
		urgent = urgent[:limit]
	}
	return urgent
}

// CategoryCounts groups products by category. Unknown category strings are
// counted as-is.
func CategoryCounts(products []entities.Product) map[string]int {
	counts := make(map[string]int, len(products))
	for _, p := range products {
		counts[p.Category]++
	}
	return counts
}
