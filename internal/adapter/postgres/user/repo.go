// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	postgres "github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const userColumns = `u.id, u.username, u.password_hash, u.real_name, u.role_id, u.department, u.created_at, u.updated_at`

const getByUsernameSQL = `SELECT ` + userColumns + ` FROM users u WHERE u.username = $1`

const getIdentitySQL = `
SELECT ` + userColumns + `,
    r.id, r.name, r.level, r.permissions, r.created_at
FROM users u
LEFT JOIN roles r ON r.id = u.role_id
WHERE u.id = $1`

const createSQL = `
INSERT INTO users (username, password_hash, real_name, role_id, department)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at, updated_at`

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByUsernameSQL, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.RealName, &u.RoleID, &u.Department, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user "+username, 0)
	}
	return &u, nil
}

// GetIdentity returns the user joined with its role. Role is nil when the
// user has none.
func (r *Repo) GetIdentity(ctx context.Context, userID int64) (*domain.Identity, error) {
	var (
		u           domain.User
		roleID      *int64
		roleName    *string
		roleLevel   *int32
		permissions []byte
		roleCreated *time.Time
	)
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getIdentitySQL, userID).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.RealName, &u.RoleID, &u.Department, &u.CreatedAt, &u.UpdatedAt,
		&roleID, &roleName, &roleLevel, &permissions, &roleCreated,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}

	identity := &domain.Identity{User: u}
	if roleID != nil {
		role := &domain.Role{ID: *roleID, Permissions: json.RawMessage(permissions)}
		if roleName != nil {
			role.Name = *roleName
		}
		if roleLevel != nil {
			role.Level = int(*roleLevel)
		}
		if roleCreated != nil {
			role.CreatedAt = *roleCreated
		}
		identity.Role = role
	}
	return identity, nil
}

// Create inserts a user and returns it with the generated fields filled in.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		u.Username, u.PasswordHash, u.RealName, u.RoleID, u.Department,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", postgres.MapError(err, "user "+u.Username, 0))
	}
	return &u, nil
}
