// Package comment implements the comment thread repository using PostgreSQL.
package comment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const listSQL = `
SELECT
    c.id, c.entity_type, c.entity_id, c.user_id,
    u.username, COALESCE(NULLIF(u.real_name, ''), u.username) AS display_name,
    c.content, c.parent_id, c.created_at
FROM comments c
LEFT JOIN users u ON u.id = c.user_id
WHERE c.entity_type = $1 AND c.entity_id = $2
ORDER BY c.created_at DESC, c.id DESC`

// The parent, when given, must belong to the same thread. The check and the
// insert are one statement.
const insertSQL = `
INSERT INTO comments (entity_type, entity_id, user_id, content, parent_id)
SELECT $1::text, $2::bigint, $3::bigint, $4::text, $5::bigint
WHERE $5::bigint IS NULL OR EXISTS (
    SELECT 1 FROM comments p
    WHERE p.id = $5::bigint AND p.entity_type = $1::text AND p.entity_id = $2::bigint
)
RETURNING id`

// ListFor returns the comments of one record, newest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListFor(ctx context.Context, entityType domain.Module, entityID int64) ([]domain.Comment, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listSQL, entityType.String(), entityID)
	if err != nil {
		return nil, postgres.MapError(err, "comments", entityID)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var (
			c          domain.Comment
			entityType string
			userID     *int64
		)
		if err := rows.Scan(
			&c.ID, &entityType, &c.EntityID, &userID,
			&c.Username, &c.DisplayName,
			&c.Content, &c.ParentID, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		c.EntityType = domain.Module(entityType)
		if userID != nil {
			c.UserID = *userID
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "comments", entityID)
	}

	return comments, nil
}

// Create appends a comment and returns its id. A parent outside the thread
// fails with a validation error on parent_id.
func (r *Repo) Create(ctx context.Context, c domain.Comment) (int64, error) {
	var id int64
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertSQL,
		c.EntityType.String(), c.EntityID, c.UserID, c.Content, c.ParentID,
	).Scan(&id)
	if err != nil {
		if c.ParentID != nil && errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.NewValidationError("parent_id", "must reference a comment on the same record")
		}
		return 0, postgres.MapError(err, "comments", 0)
	}
	return id, nil
}
