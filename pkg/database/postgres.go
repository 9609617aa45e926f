package database

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var ErrMissingURL = errors.New("DATABASE_URL is required")

// NewPostgresDB opens the shared pool for a postgres URL or keyword DSN.
// sslMode is applied only when the DSN does not already specify one.
func NewPostgresDB(dsn, sslMode string, gormConfig *gorm.Config) (*gorm.DB, error) {
	if dsn == "" {
		return nil, ErrMissingURL
	}

	withSSL, err := withSSLMode(dsn, sslMode)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(withSSL), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	return db, nil
}

func withSSLMode(dsn, sslMode string) (string, error) {
	if sslMode == "" {
		return dsn, nil
	}

	if strings.Contains(dsn, "://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("parse DATABASE_URL: %w", err)
		}
		q := u.Query()
		if q.Get("sslmode") == "" {
			q.Set("sslmode", sslMode)
			u.RawQuery = q.Encode()
		}
		return u.String(), nil
	}

	if strings.Contains(dsn, "sslmode=") {
		return dsn, nil
	}
	return dsn + " sslmode=" + sslMode, nil
}
