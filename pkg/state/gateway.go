package state

import (
	"context"

	"freshtrack/entities"
)

// AppState is the persisted snapshot: the three top-level keys the store
// owns between saves.
type AppState struct {
	Products               []entities.Product `json:"products"`
	ArchivedProducts       []entities.Product `json:"archivedProducts"`
	HasCompletedOnboarding bool               `json:"hasCompletedOnboarding"`
}

// Gateway persists the application state. Implementations must treat a
// missing backing store as the empty state, not an error.
type Gateway interface {
	Load(ctx context.Context) (AppState, error)
	Save(ctx context.Context, s AppState) error
}
