package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bullprompt-backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// SQLiteBackend stores every key as a row of the kv_entries table.
type SQLiteBackend struct {
	DB *gorm.DB
}

// OpenSQLite opens (creating if needed) the database file at path and
// migrates the schema. ":memory:" is accepted for tests.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	return NewSQLiteBackend(db)
}

// NewSQLiteBackend wraps an existing connection and migrates the schema.
func NewSQLiteBackend(db *gorm.DB) (*SQLiteBackend, error) {
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &SQLiteBackend{DB: db}, nil
}

func (s *SQLiteBackend) Get(ctx context.Context, keys ...string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	var entries []models.KVEntry
	if err := s.DB.WithContext(ctx).Where("entry_key IN ?", keys).Find(&entries).Error; err != nil {
		return nil, err
	}
	for _, e := range entries {
		out[e.Key] = []byte(e.Value)
	}
	return out, nil
}

func (s *SQLiteBackend) Set(ctx context.Context, items map[string][]byte) error {
	if len(items) == 0 {
		return nil
	}

	now := time.Now()
	entries := make([]models.KVEntry, 0, len(items))
	for k, v := range items {
		entries = append(entries, models.KVEntry{Key: k, Value: datatypes.JSON(v), UpdatedAt: now})
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&entries).Error
	})
}

func (s *SQLiteBackend) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
