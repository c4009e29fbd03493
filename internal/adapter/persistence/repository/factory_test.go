package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRecordStoreFromEnv(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "memory")
		store, err := NewRecordStoreFromEnv(ctx, nil)
		require.NoError(t, err)
		require.IsType(t, &RecordMemoryRepository{}, store)
	})

	t.Run("sqlite", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "SQLite")
		t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "intake.db"))
		store, err := NewRecordStoreFromEnv(ctx, nil)
		require.NoError(t, err)
		require.IsType(t, &RecordGormRepository{}, store)
	})

	t.Run("dynamodb builds a client without connecting", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "dynamodb")
		t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
		store, err := NewRecordStoreFromEnv(ctx, nil)
		require.NoError(t, err)
		require.IsType(t, &RecordDynamoRepository{}, store)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "cassandra")
		_, err := NewRecordStoreFromEnv(ctx, nil)
		require.Error(t, err)
	})
}
