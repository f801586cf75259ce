package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:state_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestDatabaseGatewayRoundTrip(t *testing.T) {
	gateway := NewDatabaseGateway(setupTestDB(t))
	ctx := context.Background()

	saved := sampleState()
	require.NoError(t, gateway.Save(ctx, saved))

	loaded, err := gateway.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestDatabaseGatewayEmptyDatabase(t *testing.T) {
	gateway := NewDatabaseGateway(setupTestDB(t))

	loaded, err := gateway.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded.Products)
	assert.Empty(t, loaded.ArchivedProducts)
	assert.False(t, loaded.HasCompletedOnboarding)
}

func TestDatabaseGatewaySaveReplacesSnapshot(t *testing.T) {
	gateway := NewDatabaseGateway(setupTestDB(t))
	ctx := context.Background()

	first := sampleState()
	require.NoError(t, gateway.Save(ctx, first))

	second := sampleState()
	second.ArchivedProducts = nil
	second.HasCompletedOnboarding = false
	require.NoError(t, gateway.Save(ctx, second))

	loaded, err := gateway.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded.Products, 1)
	assert.Empty(t, loaded.ArchivedProducts)
	assert.False(t, loaded.HasCompletedOnboarding)
}

func TestDatabaseGatewayKeepsInsertionOrder(t *testing.T) {
	gateway := NewDatabaseGateway(setupTestDB(t))
	ctx := context.Background()

	s := sampleState()
	extra := s.Products[0]
	extra.ID = s.ArchivedProducts[0].ID
	extra.Name = "Second"
	s.Products = append(s.Products, extra)
	s.ArchivedProducts = nil
	require.NoError(t, gateway.Save(ctx, s))

	loaded, err := gateway.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Products, 2)
	assert.Equal(t, "Milk 3.2%", loaded.Products[0].Name)
	assert.Equal(t, "Second", loaded.Products[1].Name)
}
