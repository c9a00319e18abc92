package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// validConfig returns a config that passes Validate.
func validConfig() *Config {
	return &Config{
		Server:    ServerConfig{Host: "0.0.0.0", Port: 3000},
		Database:  DatabaseConfig{DSN: "postgres://u:p@localhost/db", MaxConns: 10, MinConns: 1},
		Log:       LogConfig{Level: "info", Format: "json"},
		Seed:      SeedConfig{Enabled: true, AdminUsername: "admin", AdminPassword: "admin123"},
		Identity:  IdentityConfig{Username: "admin"},
		Retention: RetentionConfig{PurgeAfterDays: 90},
	}
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2
  auto_migrate: false

log:
  level: "debug"
  format: "text"

seed:
  enabled: true
  admin_username: "root"
  admin_password: "secret-pass"
  admin_real_name: "管理员"

identity:
  username: "root"

retention:
  purge_after_days: 30
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("server.write_timeout = %v, want default 30s", cfg.Server.WriteTimeout)
	}
	if cfg.Server.WriteRateLimit != 120 {
		t.Errorf("server.write_rate_per_minute = %d, want default 120", cfg.Server.WriteRateLimit)
	}

	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}
	if cfg.Database.AutoMigrate {
		t.Error("database.auto_migrate should be false")
	}

	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}

	if cfg.Seed.AdminUsername != "root" || cfg.Seed.AdminRealName != "管理员" {
		t.Errorf("seed = %+v", cfg.Seed)
	}
	if cfg.Identity.Username != "root" {
		t.Errorf("identity.username = %q, want root", cfg.Identity.Username)
	}
	if cfg.Retention.PurgeAfterDays != 30 {
		t.Errorf("retention.purge_after_days = %d, want 30", cfg.Retention.PurgeAfterDays)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3001")
	t.Setenv("IDENTITY_USERNAME", "sales01")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3001 {
		t.Errorf("server.port = %d, want 3001 (ENV override)", cfg.Server.Port)
	}
	if cfg.Identity.Username != "sales01" {
		t.Errorf("identity.username = %q, want sales01 (ENV override)", cfg.Identity.Username)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (default)", cfg.Server.Port)
	}
	if !cfg.Database.AutoMigrate || !cfg.Seed.Enabled {
		t.Error("auto_migrate and seed.enabled should default to true")
	}
	if cfg.Identity.Username != "admin" {
		t.Errorf("identity.username = %q, want admin", cfg.Identity.Username)
	}
}

func TestLoad_YAMLKeepsFalseAndZero(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `
server:
  write_rate_per_minute: 0
database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  auto_migrate: false
seed:
  enabled: false
`)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.WriteRateLimit != 0 {
		t.Errorf("server.write_rate_per_minute = %d, want 0 (limit off)", cfg.Server.WriteRateLimit)
	}
	if cfg.Database.AutoMigrate {
		t.Error("database.auto_migrate should stay false")
	}
	if cfg.Seed.Enabled {
		t.Error("seed.enabled should stay false")
	}
}

func TestLoad_ENVReenablesYAMLFalse(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DATABASE_AUTO_MIGRATE", "true")
	t.Setenv("SERVER_WRITE_RATE_PER_MINUTE", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.Database.AutoMigrate {
		t.Error("database.auto_migrate should be true (ENV override)")
	}
	if cfg.Server.WriteRateLimit != 0 {
		t.Errorf("server.write_rate_per_minute = %d, want 0 (ENV override)", cfg.Server.WriteRateLimit)
	}
}

func TestLoad_MissingDSN(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "")

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing database dsn")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoadFile_OptionalMissingUsesEnv(t *testing.T) {
	validEnv(t)
	t.Setenv("IDENTITY_USERNAME", "  sales01 ")
	t.Setenv("LOG_FORMAT", "TEXT")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Identity.Username != "sales01" {
		t.Errorf("identity.username = %q, want trimmed sales01", cfg.Identity.Username)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want lower-cased text", cfg.Log.Format)
	}
}

func TestLoadFile_RequiredMissing(t *testing.T) {
	validEnv(t)

	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), true); err == nil {
		t.Fatal("expected error for missing required file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"negative write rate", func(c *Config) { c.Server.WriteRateLimit = -1 }, true},
		{"write rate disabled", func(c *Config) { c.Server.WriteRateLimit = 0 }, false},
		{"blank dsn", func(c *Config) { c.Database.DSN = "  " }, true},
		{"min conns above max", func(c *Config) { c.Database.MinConns = 20 }, true},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"short seed password", func(c *Config) { c.Seed.AdminPassword = "12345" }, true},
		{"short password ignored without seeding", func(c *Config) {
			c.Seed.Enabled = false
			c.Seed.AdminPassword = ""
		}, false},
		{"blank seed username", func(c *Config) { c.Seed.AdminUsername = " " }, true},
		{"blank identity", func(c *Config) { c.Identity.Username = "" }, true},
		{"zero retention", func(c *Config) { c.Retention.PurgeAfterDays = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRetentionConfig_PurgeBefore(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	got := RetentionConfig{PurgeAfterDays: 30}.PurgeBefore(now)

	if want := time.Date(2026, 9, 18, 12, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("PurgeBefore = %v, want %v", got, want)
	}
}

func TestCORSConfig_Origins(t *testing.T) {
	got := CORSConfig{AllowedOrigins: " http://a.example , ,http://b.example"}.Origins()

	if len(got) != 2 || got[0] != "http://a.example" || got[1] != "http://b.example" {
		t.Errorf("Origins() = %v", got)
	}
}
