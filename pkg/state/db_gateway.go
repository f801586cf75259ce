package state

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freshtrack/entities"
)

// productRecord is the relational shape of a product snapshot. Dates are kept
// as YYYY-MM-DD strings to match the JSON contract; Position preserves
// insertion order across a round trip.
type productRecord struct {
	ID             string `gorm:"primaryKey"`
	Name           string
	Category       string
	PurchaseDate   *string
	ExpirationDate string
	Price          *float64
	ArchivedDate   *string
	ArchiveReason  string
	Archived       bool `gorm:"index"`
	Position       int
}

func (productRecord) TableName() string { return "products" }

type settingRecord struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (settingRecord) TableName() string { return "settings" }

const onboardingKey = "hasCompletedOnboarding"

// DatabaseGateway persists the state snapshot into a relational database
// through gorm. Each save replaces the whole snapshot in one transaction.
type DatabaseGateway struct {
	db *gorm.DB
}

func NewDatabaseGateway(db *gorm.DB) *DatabaseGateway {
	return &DatabaseGateway{db: db}
}

// Migrate creates the snapshot tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&productRecord{}); err != nil {
		return fmt.Errorf("migrating products table: %w", err)
	}
	if err := db.AutoMigrate(&settingRecord{}); err != nil {
		return fmt.Errorf("migrating settings table: %w", err)
	}
	return nil
}

func (g *DatabaseGateway) Load(ctx context.Context) (AppState, error) {
	var records []productRecord
	if err := g.db.WithContext(ctx).Order("position asc").Find(&records).Error; err != nil {
		return AppState{}, fmt.Errorf("loading products: %w", err)
	}

	var s AppState
	for _, rec := range records {
		p, err := recordToProduct(rec)
		if err != nil {
			return AppState{}, err
		}
		if rec.Archived {
			s.ArchivedProducts = append(s.ArchivedProducts, p)
		} else {
			s.Products = append(s.Products, p)
		}
	}

	var setting settingRecord
	err := g.db.WithContext(ctx).Where("key = ?", onboardingKey).First(&setting).Error
	switch {
	case err == nil:
		s.HasCompletedOnboarding, _ = strconv.ParseBool(setting.Value)
	case err == gorm.ErrRecordNotFound:
		// defaults to false
	default:
		return AppState{}, fmt.Errorf("loading settings: %w", err)
	}

	return s, nil
}

func (g *DatabaseGateway) Save(ctx context.Context, s AppState) error {
	records := make([]productRecord, 0, len(s.Products)+len(s.ArchivedProducts))
	for _, p := range s.Products {
		records = append(records, productToRecord(p, false, len(records)))
	}
	for _, p := range s.ArchivedProducts {
		records = append(records, productToRecord(p, true, len(records)))
	}

	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&productRecord{}).Error; err != nil {
			return fmt.Errorf("clearing products: %w", err)
		}
		if len(records) > 0 {
			if err := tx.Create(&records).Error; err != nil {
				return fmt.Errorf("saving products: %w", err)
			}
		}

		setting := settingRecord{Key: onboardingKey, Value: strconv.FormatBool(s.HasCompletedOnboarding)}
		if err := tx.Where("key = ?", onboardingKey).Delete(&settingRecord{}).Error; err != nil {
			return fmt.Errorf("clearing settings: %w", err)
		}
		if err := tx.Create(&setting).Error; err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		return nil
	})
}

func productToRecord(p entities.Product, archived bool, position int) productRecord {
	rec := productRecord{
		ID:             p.ID.String(),
		Name:           p.Name,
		Category:       p.Category,
		ExpirationDate: p.ExpirationDate.String(),
		Price:          p.Price,
		ArchiveReason:  string(p.ArchiveReason),
		Archived:       archived,
		Position:       position,
	}
	if p.PurchaseDate != nil {
		d := p.PurchaseDate.String()
		rec.PurchaseDate = &d
	}
	if p.ArchivedDate != nil {
		d := p.ArchivedDate.String()
		rec.ArchivedDate = &d
	}
	return rec
}

func recordToProduct(rec productRecord) (entities.Product, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return entities.Product{}, fmt.Errorf("product %s: %w", rec.ID, err)
	}

	expiration, err := entities.ParseDate(rec.ExpirationDate)
	if err != nil {
		return entities.Product{}, fmt.Errorf("product %s: %w", rec.ID, err)
	}

	p := entities.Product{
		ID:             id,
		Name:           rec.Name,
		Category:       rec.Category,
		ExpirationDate: expiration,
		Price:          rec.Price,
		ArchiveReason:  entities.ArchiveReason(rec.ArchiveReason),
	}

	if rec.PurchaseDate != nil && *rec.PurchaseDate != "" {
		d, err := entities.ParseDate(*rec.PurchaseDate)
		if err != nil {
			return entities.Product{}, fmt.Errorf("product %s: %w", rec.ID, err)
		}
		p.PurchaseDate = &d
	}
	if rec.ArchivedDate != nil && *rec.ArchivedDate != "" {
		d, err := entities.ParseDate(*rec.ArchivedDate)
		if err != nil {
			return entities.Product{}, fmt.Errorf("product %s: %w", rec.ID, err)
		}
		p.ArchivedDate = &d
	}
	return p, nil
}
