package config

import (
	"fmt"
	"os"
	"strconv"
)

// DatabaseConfig holds the postgres connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// GetDSN builds the lib/pq connection string.
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// RedisConfig holds the redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LDAPConfig holds the directory connection settings.
type LDAPConfig struct {
	Addr         string // e.g. "ldaps://dc1.corp.example:636"
	BaseDN       string
	BindDN       string // service account used for the lookup bind
	BindPassword string
}

// Config is the full service configuration.
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	LDAP     LDAPConfig

	Import struct {
		MaxFileSize int64  // uploaded VCF size cap, bytes
		EventStream string // redis stream for aggregate import events
	}

	Books struct {
		CacheTTL int // accessible-books cache TTL, seconds
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load reads the configuration from environment variables, applying
// defaults for anything unset.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnvInt("DB_PORT", 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "contactsbook")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = getEnvInt("DB_MAX_CONNS", 10)
	cfg.Database.MaxIdle = getEnvInt("DB_MAX_IDLE", 5)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	cfg.LDAP.Addr = getEnv("LDAP_ADDR", "ldap://localhost:389")
	cfg.LDAP.BaseDN = getEnv("LDAP_BASE_DN", "")
	cfg.LDAP.BindDN = getEnv("LDAP_BIND_DN", "")
	cfg.LDAP.BindPassword = getEnv("LDAP_BIND_PASSWORD", "")

	cfg.Import.MaxFileSize = int64(getEnvInt("IMPORT_MAX_FILE_SIZE", 10*1024*1024))
	cfg.Import.EventStream = getEnv("IMPORT_EVENT_STREAM", "contacts:imports")

	cfg.Books.CacheTTL = getEnvInt("BOOKS_CACHE_TTL", 300)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}
