package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quiz-embed/config"
)

// Open connects to the configured driver. The returned pool is shared by
// every repository and must be closed with Close at shutdown.
func Open(cfg *config.DBConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{Logger: newLogger(cfg.LogLevel)}

	switch cfg.Driver {
	case "postgres", "postgresql", "":
		return NewPostgresDB(cfg.URL, cfg.SSLMode, gormConfig)
	case "sqlite", "sqlite3":
		return NewSQLiteDB(cfg.URL, gormConfig)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newLogger(level string) logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  parseLogLevel(level),
			IgnoreRecordNotFoundError: true,
		},
	)
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
