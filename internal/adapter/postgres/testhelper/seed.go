package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique username and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		Username:     "testuser-" + suffix,
		PasswordHash: "x",
		RealName:     "Test User " + suffix,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, real_name)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		user.Username, user.PasswordHash, user.RealName,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedRecord inserts a row with the given name into a module table and
// returns its id. Other columns take their defaults.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, m domain.Module, name string) int64 {
	t.Helper()

	if !m.IsValid() {
		t.Fatalf("testhelper: SeedRecord: invalid module %q", m)
	}

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO `+m.Table()+` (name) VALUES ($1) RETURNING id`, name,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert %s: %v", m, err)
	}
	return id
}

// UniqueName returns name with a random suffix so parallel tests do not
// observe each other's rows.
func UniqueName(name string) string {
	return name + "-" + uniqueSuffix()
}
