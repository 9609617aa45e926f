package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Driver   string
	URL      string
	SSLMode  string
	LogLevel string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func Load() *Config {
	env := getEnv("APP_ENV", "development")

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  env,
		},
		DB: DBConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			URL:      getEnv("DATABASE_URL", ""),
			SSLMode:  getEnv("DB_SSLMODE", defaultSSLMode(env)),
			LogLevel: getEnv("DB_LOG_LEVEL", "warn"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
	}
}

// IsProduction reports whether the process runs in production mode.
func (c *ServerConfig) IsProduction() bool {
	return c.Env == "production"
}

// Production databases are reached over TLS without certificate verification.
func defaultSSLMode(env string) string {
	if env == "production" {
		return "require"
	}
	return "disable"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
