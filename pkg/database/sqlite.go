package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewSQLiteDB opens a file-backed database for local runs and tests.
// Foreign keys are off by default in SQLite, and the cascades depend on them.
func NewSQLiteDB(path string, gormConfig *gorm.Config) (*gorm.DB, error) {
	if path == "" {
		return nil, ErrMissingURL
	}

	dsn := path
	if !strings.Contains(dsn, "_foreign_keys") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	return db, nil
}
