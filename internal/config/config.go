// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Database struct {
		Host            string        `json:"host"`
		Port            string        `json:"port"`
		User            string        `json:"user"`
		Password        string        `json:"password"`
		Name            string        `json:"name"`
		SSLMode         string        `json:"sslmode"`
		MaxOpenConns    int           `json:"max_open_conns"`
		MaxIdleConns    int           `json:"max_idle_conns"`
		ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`
	} `json:"database"`
	TenantPool struct {
		MaxConns         int           `json:"max_conns"`
		MinConns         int           `json:"min_conns"`
		StatementTimeout time.Duration `json:"statement_timeout"`
	} `json:"tenant_pool"`
	Resolver struct {
		Timeout time.Duration `json:"timeout"`
	} `json:"resolver"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
	}
	Sendgrid struct {
		APIKey string `json:"api_key"`
		From   string `json:"from"`
	} `json:"sendgrid"`
	SMTP map[string]SMTPConfig `json:"smtp"`
	MagicLinkTTL  time.Duration `json:"magic_link_ttl"`
	InvitationTTL time.Duration `json:"invitation_ttl"`
	BaseURL       string        `json:"base_url"`
}

type SMTPConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from"`
}

func Load() *Config {
	cfg := &Config{}

	// Database configuration
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "tessera")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 25)
	cfg.Database.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 25)
	cfg.Database.ConnMaxLifetime = time.Minute * time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 5))

	// Tenant session pool. Small on purpose: schema-per-tenant trades
	// connection-pool pressure for isolation, so the pool is the scaling
	// constraint to watch.
	cfg.TenantPool.MaxConns = getEnvInt("TENANT_POOL_MAX_CONNS", 10)
	cfg.TenantPool.MinConns = getEnvInt("TENANT_POOL_MIN_CONNS", 2)
	cfg.TenantPool.StatementTimeout = time.Second * time.Duration(getEnvInt("TENANT_POOL_STATEMENT_TIMEOUT_SECONDS", 30))

	// Tenant resolution deadline (org lookup + search_path pin)
	cfg.Resolver.Timeout = time.Second * 5

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "your-secret-key")
	cfg.JWT.ExpiryPeriod = time.Hour * 24

	// Sendgrid configuration
	cfg.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.Sendgrid.From = getEnv("SENDGRID_FROM", "")

	// SMTP fallback provider
	cfg.SMTP = map[string]SMTPConfig{
		"smtp": {
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
		},
	}

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15

	cfg.MagicLinkTTL = time.Minute * 15
	cfg.InvitationTTL = time.Hour * 24 * 7
	cfg.BaseURL = getEnv("BASE_URL", "http://localhost:3000")

	return cfg
}

// DSN builds the gorm/lib-pq style connection string for the public pool.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// TenantPoolURL builds the pgx pool URL for tenant sessions and provisioning.
func (c *Config) TenantPoolURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&pool_max_conns=%d&pool_min_conns=%d",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
		c.TenantPool.MaxConns,
		c.TenantPool.MinConns,
	)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
