package archive

import (
	"sort"
	"time"

	"freshtrack/entities"
)

// Stats partitions the archive by archive reason.
type Stats struct {
	Total   int
	Used    int
	Expired int
}

func ComputeStats(archived []entities.Product) Stats {
	stats := Stats{Total: len(archived)}
	for _, p := range archived {
		switch p.ArchiveReason {
		case entities.ReasonUsed:
			stats.Used++
		case entities.ReasonExpired:
			stats.Expired++
		}
	}
	return stats
}

// TrendPoint aggregates expired archive entries for one calendar month.
type TrendPoint struct {
	Month        entities.Date
	ExpiredCount int
	ExpiredCost  float64
}

// MonthlyExpiredTrend aggregates the most recent monthsBack calendar months,
// oldest first. Only entries archived as expired count; a missing price
// contributes zero cost.
func MonthlyExpiredTrend(archived []entities.Product, monthsBack int, today entities.Date) []TrendPoint {
	points := make([]TrendPoint, 0, monthsBack)
	for i := monthsBack - 1; i >= 0; i-- {
		// anchor on the first of the month so short months never overflow
		// into their neighbour (Aug 31 minus one month must be July, not
		// "July 31 normalized to August")
		month := entities.NewDate(today.Year(), today.Month()-time.Month(i), 1)
		count, cost := expiredInMonth(archived, month)
		points = append(points, TrendPoint{
			Month:        month,
			ExpiredCount: count,
			ExpiredCost:  cost,
		})
	}
	return points
}

// CurrentMonthExpired aggregates expired entries archived in today's month.
func CurrentMonthExpired(archived []entities.Product, today entities.Date) (count int, cost float64) {
	return expiredInMonth(archived, today)
}

func expiredInMonth(archived []entities.Product, month entities.Date) (count int, cost float64) {
	for _, p := range archived {
		if p.ArchiveReason != entities.ReasonExpired || p.ArchivedDate == nil {
			continue
		}
		if !p.ArchivedDate.SameMonth(month) {
			continue
		}
		count++
		cost += p.PriceValue()
	}
	return count, cost
}

// TotalExpiredCost sums the price of everything archived as expired.
func TotalExpiredCost(archived []entities.Product) float64 {
	var total float64
	for _, p := range archived {
		if p.ArchiveReason == entities.ReasonExpired {
			total += p.PriceValue()
		}
	}
	return total
}

// CategoryCount pairs a category with how many expired entries it holds.
type CategoryCount struct {
	Category string
	Count    int
}

// ExpiredByCategory ranks categories by how often their products expired,
// most frequent first, truncated to limit when limit >= 0.
func ExpiredByCategory(archived []entities.Product, limit int) []CategoryCount {
	byCategory := make(map[string]int)
	for _, p := range archived {
		if p.ArchiveReason == entities.ReasonExpired {
			byCategory[p.Category]++
		}
	}

	counts := make([]CategoryCount, 0, len(byCategory))
	for category, count := range byCategory {
		counts = append(counts, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Category < counts[j].Category
	})

	if limit >= 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}
