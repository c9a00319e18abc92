// Package followup implements the follow-up log repository using PostgreSQL.
package followup

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides follow-up persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new follow-up repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const listSQL = `
SELECT
    f.id, f.entity_type, f.entity_id, f.user_id,
    u.username, COALESCE(NULLIF(u.real_name, ''), u.username) AS display_name,
    f.method, f.content, f.next_follow_at, f.created_at
FROM follow_ups f
LEFT JOIN users u ON u.id = f.user_id
WHERE f.entity_type = $1 AND f.entity_id = $2
ORDER BY f.created_at DESC, f.id DESC`

// ListFor returns the follow-ups of one record, newest first.
func (r *Repo) ListFor(ctx context.Context, entityType domain.Module, entityID int64) ([]domain.FollowUp, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listSQL, entityType.String(), entityID)
	if err != nil {
		return nil, postgres.MapError(err, "follow_ups", entityID)
	}
	defer rows.Close()

	result := []domain.FollowUp{}
	for rows.Next() {
		var (
			f          domain.FollowUp
			entityType string
			method     string
			userID     *int64
		)
		if err := rows.Scan(
			&f.ID, &entityType, &f.EntityID, &userID,
			&f.Username, &f.DisplayName,
			&method, &f.Content, &f.NextFollowAt, &f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan follow-up: %w", err)
		}
		f.EntityType = domain.Module(entityType)
		f.Method = domain.FollowUpMethod(method)
		if userID != nil {
			f.UserID = *userID
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "follow_ups", entityID)
	}

	return result, nil
}

// Create appends a follow-up and returns its id.
func (r *Repo) Create(ctx context.Context, f domain.FollowUp) (int64, error) {
	sql, args, err := psql.Insert("follow_ups").
		Columns("entity_type", "entity_id", "user_id", "method", "content", "next_follow_at").
		Values(f.EntityType.String(), f.EntityID, f.UserID, f.Method.String(), f.Content, f.NextFollowAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert follow-up: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "follow_ups", 0)
	}
	return id, nil
}
