package database

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}
}

// PostgresDSNFromEnv returns POSTGRES_DSN when set, otherwise a DSN assembled
// from POSTGRES_HOST, POSTGRES_PORT, POSTGRES_USER, POSTGRES_PASSWORD and
// POSTGRES_NAME.
func PostgresDSNFromEnv() string {
	if dsn := os.Getenv("POSTGRES_DSN"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getenvDefault("POSTGRES_USER", "postgres"),
		os.Getenv("POSTGRES_PASSWORD"),
		getenvDefault("POSTGRES_HOST", "localhost"),
		getenvDefault("POSTGRES_PORT", "5432"),
		getenvDefault("POSTGRES_NAME", "intake"),
	)
}

func ConnectPostgres(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("[database][postgres] connecting")
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

// ConnectSQLite opens a sqlite database file, or an in-memory one for
// ":memory:" style DSNs.
func ConnectSQLite(path string, logger *zap.Logger) (*gorm.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("[database][sqlite] opening", zap.String("path", path))
	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return db, nil
}
