package archive

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshtrack/entities"
)

func archivedProduct(name, category string, reason entities.ArchiveReason, archivedOn entities.Date, price *float64) entities.Product {
	date := archivedOn
	return entities.Product{
		ID:             uuid.New(),
		Name:           name,
		Category:       category,
		ExpirationDate: archivedOn,
		Price:          price,
		ArchivedDate:   &date,
		ArchiveReason:  reason,
	}
}

func priceOf(v float64) *float64 { return &v }

func TestComputeStats(t *testing.T) {
	today := entities.NewDate(2026, time.March, 15)
	archived := []entities.Product{
		archivedProduct("Milk", "Dairy", entities.ReasonUsed, today, nil),
		archivedProduct("Bread", "Bakery", entities.ReasonExpired, today, nil),
		archivedProduct("Cheese", "Dairy", entities.ReasonExpired, today, nil),
	}

	stats := ComputeStats(archived)
	assert.Equal(t, Stats{Total: 3, Used: 1, Expired: 2}, stats)
}

func TestMonthlyExpiredTrend(t *testing.T) {
	today := entities.NewDate(2026, time.March, 15)
	archived := []entities.Product{
		archivedProduct("Old Milk", "Dairy", entities.ReasonExpired, entities.NewDate(2026, time.January, 10), priceOf(50)),
		archivedProduct("Old Bread", "Bakery", entities.ReasonExpired, entities.NewDate(2026, time.March, 2), priceOf(30)),
		archivedProduct("Newer Bread", "Bakery", entities.ReasonExpired, entities.NewDate(2026, time.March, 9), nil),
		archivedProduct("Eaten Cheese", "Dairy", entities.ReasonUsed, entities.NewDate(2026, time.March, 5), priceOf(99)),
	}

	points := MonthlyExpiredTrend(archived, 6, today)
	require.Len(t, points, 6)

	// oldest month first
	assert.Equal(t, entities.NewDate(2025, time.October, 1), points[0].Month)
	assert.Equal(t, entities.NewDate(2026, time.March, 1), points[5].Month)

	january := points[3]
	assert.Equal(t, 1, january.ExpiredCount)
	assert.InDelta(t, 50.0, january.ExpiredCost, 0.001)

	march := points[5]
	assert.Equal(t, 2, march.ExpiredCount)
	assert.InDelta(t, 30.0, march.ExpiredCost, 0.001)
}

func TestMonthlyExpiredTrendOnMonthEndDay(t *testing.T) {
	// the 31st must still yield six consecutive calendar months; naive
	// AddDate month math would skip April and June and count May and
	// July twice
	today := entities.NewDate(2026, time.August, 31)
	archived := []entities.Product{
		archivedProduct("April Milk", "Dairy", entities.ReasonExpired, entities.NewDate(2026, time.April, 15), priceOf(20)),
		archivedProduct("June Bread", "Bakery", entities.ReasonExpired, entities.NewDate(2026, time.June, 30), priceOf(40)),
	}

	points := MonthlyExpiredTrend(archived, 6, today)
	require.Len(t, points, 6)

	want := []entities.Date{
		entities.NewDate(2026, time.March, 1),
		entities.NewDate(2026, time.April, 1),
		entities.NewDate(2026, time.May, 1),
		entities.NewDate(2026, time.June, 1),
		entities.NewDate(2026, time.July, 1),
		entities.NewDate(2026, time.August, 1),
	}
	for i, point := range points {
		assert.Equal(t, want[i], point.Month)
	}

	assert.Equal(t, 1, points[1].ExpiredCount)
	assert.InDelta(t, 20.0, points[1].ExpiredCost, 0.001)
	assert.Equal(t, 1, points[3].ExpiredCount)
	assert.InDelta(t, 40.0, points[3].ExpiredCost, 0.001)
}

func TestMonthlyExpiredTrendAcrossYearBoundary(t *testing.T) {
	today := entities.NewDate(2026, time.January, 31)

	points := MonthlyExpiredTrend(nil, 6, today)
	require.Len(t, points, 6)
	assert.Equal(t, entities.NewDate(2025, time.August, 1), points[0].Month)
	assert.Equal(t, entities.NewDate(2025, time.December, 1), points[4].Month)
	assert.Equal(t, entities.NewDate(2026, time.January, 1), points[5].Month)
}

func TestCurrentMonthExpired(t *testing.T) {
	today := entities.NewDate(2026, time.March, 15)
	archived := []entities.Product{
		archivedProduct("Bread", "Bakery", entities.ReasonExpired, entities.NewDate(2026, time.March, 3), priceOf(10.50)),
		archivedProduct("Milk", "Dairy", entities.ReasonExpired, entities.NewDate(2026, time.March, 12), priceOf(5.00)),
		archivedProduct("Last Month", "Dairy", entities.ReasonExpired, entities.NewDate(2026, time.February, 20), priceOf(100)),
		archivedProduct("Used", "Dairy", entities.ReasonUsed, entities.NewDate(2026, time.March, 1), priceOf(40)),
	}

	count, cost := CurrentMonthExpired(archived, today)
	assert.Equal(t, 2, count)
	assert.InDelta(t, 15.50, cost, 0.001)
}

func TestTotalExpiredCost(t *testing.T) {
	today := entities.NewDate(2026, time.March, 15)
	archived := []entities.Product{
		archivedProduct("Bread", "Bakery", entities.ReasonExpired, today, priceOf(30)),
		archivedProduct("No Price", "Bakery", entities.ReasonExpired, today, nil),
		archivedProduct("Used", "Dairy", entities.ReasonUsed, today, priceOf(500)),
	}

	assert.InDelta(t, 30.0, TotalExpiredCost(archived), 0.001)
	assert.Equal(t, 0.0, TotalExpiredCost(nil))
}

func TestExpiredByCategory(t *testing.T) {
	today := entities.NewDate(2026, time.March, 15)
	archived := []entities.Product{
		archivedProduct("Milk", "Dairy", entities.ReasonExpired, today, nil),
		archivedProduct("Cheese", "Dairy", entities.ReasonExpired, today, nil),
		archivedProduct("Bread", "Bakery", entities.ReasonExpired, today, nil),
		archivedProduct("Apples", "Fruits", entities.ReasonExpired, today, nil),
		archivedProduct("Used Milk", "Dairy", entities.ReasonUsed, today, nil),
	}

	counts := ExpiredByCategory(archived, 2)
	require.Len(t, counts, 2)
	assert.Equal(t, CategoryCount{Category: "Dairy", Count: 2}, counts[0])
	// equal counts fall back to category name order
	assert.Equal(t, CategoryCount{Category: "Bakery", Count: 1}, counts[1])
}
