package storage

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postgresTestStorage(t *testing.T) *PostgresStorage {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	store, err := NewPostgresStorage(ctx, db)
	require.NoError(t, err)
	return store
}

func TestPostgresStorage_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := postgresTestStorage(t)
	key := fmt.Sprintf("test-%d.json", time.Now().UnixNano())

	_, err := store.Load(ctx, key)
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	require.NoError(t, store.Save(ctx, key, []byte(`{"E1":{"2024-05-01":{"checkIn":"10:00:00","checkOut":null}}}`)))
	require.NoError(t, store.Save(ctx, key, []byte(`{"E1":{"2024-05-01":{"checkIn":"10:00:00","checkOut":"17:00:00"}}}`)))

	data, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"E1":{"2024-05-01":{"checkIn":"10:00:00","checkOut":"17:00:00"}}}`, string(data))
}
