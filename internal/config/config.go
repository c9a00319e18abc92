package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Seed      SeedConfig      `yaml:"seed"`
	Identity  IdentityConfig  `yaml:"identity"`
	Retention RetentionConfig `yaml:"retention"`
}

// newConfig pre-fills the settings whose zero value is meaningful. cleanenv
// would overwrite an explicit false or 0 from YAML with an env-default tag.
func newConfig() Config {
	return Config{
		Server:   ServerConfig{WriteRateLimit: 120},
		Database: DatabaseConfig{AutoMigrate: true},
		Seed:     SeedConfig{Enabled: true},
	}
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// WriteRateLimit caps mutating requests per client per minute. 0 disables the limit.
	WriteRateLimit int `yaml:"write_rate_per_minute" env:"SERVER_WRITE_RATE_PER_MINUTE"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SeedConfig controls first-start seeding.
type SeedConfig struct {
	Enabled       bool   `yaml:"enabled"        env:"SEED_ENABLED"`
	AdminUsername string `yaml:"admin_username" env:"SEED_ADMIN_USERNAME" env-default:"admin"`
	AdminPassword string `yaml:"admin_password" env:"SEED_ADMIN_PASSWORD" env-default:"admin123"`
	AdminRealName string `yaml:"admin_real_name" env:"SEED_ADMIN_REAL_NAME" env-default:"系统管理员"`
}

// IdentityConfig names the fixed account every request acts as.
type IdentityConfig struct {
	Username string `yaml:"username" env:"IDENTITY_USERNAME" env-default:"admin"`
}

// RetentionConfig controls hard deletion of soft-deleted records.
type RetentionConfig struct {
	PurgeAfterDays int `yaml:"purge_after_days" env:"RETENTION_PURGE_AFTER_DAYS" env-default:"90"`
}

// PurgeBefore returns the deletion time before which records are purged.
func (r RetentionConfig) PurgeBefore(now time.Time) time.Time {
	return now.AddDate(0, 0, -r.PurgeAfterDays)
}

// Origins splits AllowedOrigins into trimmed, non-empty entries.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
