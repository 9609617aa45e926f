// Package testutil opens migrated throwaway databases for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quiz-embed/pkg/database"
)

func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "quiz.db")
	db, err := database.NewSQLiteDB(path, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("NewSQLiteDB failed: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	if err := database.InitSchema(db); err != nil {
		t.Fatalf("InitSchema failed: %v", err)
	}
	return db
}
