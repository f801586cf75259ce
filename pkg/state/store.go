package state

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"freshtrack/entities"
)

// Store is the single owner of the inventory, the archive and the onboarding
// flag. All mutations go through its methods and each mutation either fully
// applies or leaves the collections unchanged. Other components only ever see
// copies of the data.
type Store struct {
	mu        sync.RWMutex
	products  []entities.Product
	archived  []entities.Product
	onboarded bool

	gateway Gateway
	logger  zerolog.Logger
}

func NewStore(gateway Gateway, logger zerolog.Logger) *Store {
	return &Store{
		gateway: gateway,
		logger:  logger.With().Str("component", "state").Logger(),
	}
}

// Load hydrates the store from the gateway. A load failure is logged and the
// store starts from the empty state; it is never fatal.
func (s *Store) Load(ctx context.Context) {
	if s.gateway == nil {
		return
	}

	loaded, err := s.gateway.Load(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("could not load saved data, starting from empty state")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]entities.Product(nil), loaded.Products...)
	s.archived = append([]entities.Product(nil), loaded.ArchivedProducts...)
	s.onboarded = loaded.HasCompletedOnboarding
}

// Persist writes the current snapshot through the gateway. Failures are
// logged, never propagated: the in-memory state stays the source of truth
// and the next mutation retries the save.
func (s *Store) Persist(ctx context.Context) {
	if s.gateway == nil {
		return
	}

	if err := s.gateway.Save(ctx, s.Snapshot()); err != nil {
		s.logger.Error().Err(err).Msg("could not save data")
	}
}

// Snapshot returns a deep-enough copy of the persisted state.
func (s *Store) Snapshot() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return AppState{
		Products:               append([]entities.Product(nil), s.products...),
		ArchivedProducts:       append([]entities.Product(nil), s.archived...),
		HasCompletedOnboarding: s.onboarded,
	}
}

// Products returns a copy of the active inventory in insertion order.
func (s *Store) Products() []entities.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Product(nil), s.products...)
}

// Archived returns a copy of the archive in insertion order.
func (s *Store) Archived() []entities.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Product(nil), s.archived...)
}

func (s *Store) Onboarded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.onboarded
}

func (s *Store) CompleteOnboarding() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onboarded = true
}

// Append adds products to the end of the inventory.
func (s *Store) Append(products ...entities.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, products...)
}

// FindProduct looks up an active product by id.
func (s *Store) FindProduct(id uuid.UUID) (entities.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Product{}, false
}

// RemoveProduct deletes an active product without a trace.
func (s *Store) RemoveProduct(id uuid.UUID) (entities.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return p, true
		}
	}
	return entities.Product{}, false
}

// ArchiveProduct moves an active product to the archive, stamped with the
// given reason and date. Returns false when no active product matches.
func (s *Store) ArchiveProduct(id uuid.UUID, reason entities.ArchiveReason, date entities.Date) (entities.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			archivedDate := date
			p.ArchivedDate = &archivedDate
			p.ArchiveReason = reason
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.archived = append(s.archived, p)
			return p, true
		}
	}
	return entities.Product{}, false
}

// ReplaceProducts swaps the inventory wholesale, leaving the archive intact.
func (s *Store) ReplaceProducts(products []entities.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]entities.Product(nil), products...)
}

// ClearArchive empties the archive. The inventory is untouched.
func (s *Store) ClearArchive() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cleared := len(s.archived)
	s.archived = nil
	return cleared
}
