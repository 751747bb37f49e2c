package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milkledger/server/internal/model"
)

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	store, err := New(path)
	require.NoError(t, err)

	ctx := context.Background()
	recorded := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	snap := model.Snapshot{
		Couriers: []model.Courier{
			{ID: "c1", Name: "Ali", CreatedAt: recorded},
		},
		Deliveries: []model.Delivery{
			{ID: "d1", CourierID: "c1", Year: 2024, Month: 3, Day: 1, Quantity: 10, UnitPrice: 75, RecordedAt: recorded},
		},
		Deposits: []model.Deposit{
			{ID: "v1", CourierID: "c1", Year: 2024, Month: 3, Day: 1, Amount: 200, Description: "Versement", CreatedAt: recorded},
		},
	}

	require.NoError(t, store.Save(ctx, snap))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)
}

func TestStore_LoadMissingFile(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Snapshot{}, snap)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := New(path)
	require.NoError(t, err)

	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Snapshot{}, snap)
}

func TestStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	store, err := New(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, model.Snapshot{
		Couriers: []model.Courier{{ID: "c1", Name: "Ali"}},
	}))
	require.NoError(t, store.Save(ctx, model.Snapshot{
		Couriers: []model.Courier{{ID: "c2", Name: "Bob"}},
	}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Couriers, 1)
	assert.Equal(t, "c2", loaded.Couriers[0].ID)
}
