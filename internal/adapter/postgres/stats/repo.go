// Package stats implements read-only aggregate queries over module tables.
package stats

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides aggregate queries backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new stats repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// OpportunityStages groups live opportunities by stage in first-seen order.
// The amount sum is computed as NUMERIC and read as text so no precision is
// lost on the way to decimal.
func (r *Repo) OpportunityStages(ctx context.Context) ([]domain.StageSummary, error) {
	sql, args, err := psql.Select(
		"stage",
		"COUNT(*)",
		"COALESCE(SUM(amount::numeric), 0)::text",
	).
		From(domain.ModuleOpportunities.Table()).
		Where(sq.Eq{domain.ColIsDeleted: false}).
		GroupBy("stage").
		OrderBy("MIN(id)").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stage summary: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "opportunities", 0)
	}
	defer rows.Close()

	result := []domain.StageSummary{}
	for rows.Next() {
		var (
			s     domain.StageSummary
			total string
		)
		if err := rows.Scan(&s.Stage, &s.Count, &total); err != nil {
			return nil, fmt.Errorf("scan stage summary: %w", err)
		}
		s.TotalAmount, err = decimal.NewFromString(total)
		if err != nil {
			return nil, fmt.Errorf("parse total amount %q: %w", total, err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "opportunities", 0)
	}

	return result, nil
}
