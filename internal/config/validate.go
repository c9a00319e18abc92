package config

import (
	"fmt"
	"strings"
)

const minSeedPasswordLen = 6

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Server.WriteRateLimit < 0 {
		return fmt.Errorf("server.write_rate_per_minute must be >= 0 (got %d)", c.Server.WriteRateLimit)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Seed.Enabled {
		if strings.TrimSpace(c.Seed.AdminUsername) == "" {
			return fmt.Errorf("seed.admin_username is required when seeding is enabled")
		}
		if len(c.Seed.AdminPassword) < minSeedPasswordLen {
			return fmt.Errorf("seed.admin_password must be at least %d characters (got %d)", minSeedPasswordLen, len(c.Seed.AdminPassword))
		}
	}

	if strings.TrimSpace(c.Identity.Username) == "" {
		return fmt.Errorf("identity.username is required")
	}

	if c.Retention.PurgeAfterDays <= 0 {
		return fmt.Errorf("retention.purge_after_days must be > 0 (got %d)", c.Retention.PurgeAfterDays)
	}

	return nil
}
