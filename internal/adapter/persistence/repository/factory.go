package repository

import (
	"context"
	"fmt"
	"strings"

	"intake_dossier/internal/infrastructure/database"
	"intake_dossier/internal/usecase/interfaces"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Supported STORE_BACKEND values.
const (
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

// NewRecordStoreFromEnv selects and connects the record store named by
// STORE_BACKEND (default dynamodb).
func NewRecordStoreFromEnv(ctx context.Context, logger *zap.Logger) (interfaces.IRecordStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	backend := strings.ToLower(strings.TrimSpace(getenvDefault("STORE_BACKEND", BackendDynamoDB)))
	logger.Info("[store][factory] selecting backend", zap.String("backend", backend))

	switch backend {
	case BackendDynamoDB:
		client, err := database.ConnectDynamoDB(ctx, logger)
		if err != nil {
			return nil, err
		}
		return NewRecordDynamoRepository(client, logger), nil
	case BackendPostgres:
		db, err := database.ConnectPostgres(database.PostgresDSNFromEnv(), logger)
		if err != nil {
			return nil, err
		}
		return newGormStore(db, logger)
	case BackendSQLite:
		db, err := database.ConnectSQLite(getenvDefault("SQLITE_PATH", "intake.db"), logger)
		if err != nil {
			return nil, err
		}
		return newGormStore(db, logger)
	case BackendMemory:
		return NewRecordMemoryRepository(logger), nil
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}
}

func newGormStore(db *gorm.DB, logger *zap.Logger) (interfaces.IRecordStore, error) {
	repo, err := NewRecordGormRepository(db, logger)
	if err != nil {
		return nil, err
	}
	return repo, nil
}
