package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "DB_DRIVER", "DATABASE_URL", "DB_SSLMODE", "DB_LOG_LEVEL", "REDIS_ADDR", "REDIS_DB"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Server.Port != "3000" {
		t.Fatalf("port = %q, want 3000", cfg.Server.Port)
	}
	if cfg.Server.IsProduction() {
		t.Fatalf("expected development mode by default")
	}
	if cfg.DB.Driver != "postgres" {
		t.Fatalf("driver = %q, want postgres", cfg.DB.Driver)
	}
	if cfg.DB.SSLMode != "disable" {
		t.Fatalf("sslmode = %q, want disable", cfg.DB.SSLMode)
	}
	if cfg.Redis.Addr != "" || cfg.Redis.DB != 0 {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
}

func TestLoadProductionEnablesTLS(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_SSLMODE", "")

	cfg := Load()
	if !cfg.Server.IsProduction() {
		t.Fatalf("expected production mode")
	}
	if cfg.DB.SSLMode != "require" {
		t.Fatalf("sslmode = %q, want require", cfg.DB.SSLMode)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_SSLMODE", "verify-full")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := Load()
	if cfg.Server.Port != "8081" {
		t.Fatalf("port = %q", cfg.Server.Port)
	}
	if cfg.DB.Driver != "sqlite" {
		t.Fatalf("driver = %q, want sqlite", cfg.DB.Driver)
	}
	if cfg.DB.SSLMode != "verify-full" {
		t.Fatalf("sslmode = %q", cfg.DB.SSLMode)
	}
	if cfg.Redis.DB != 3 || cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("redis = %+v", cfg.Redis)
	}
}
